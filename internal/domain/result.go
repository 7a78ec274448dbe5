// Package domain contains core business types and interfaces.
//
// This file defines the result types returned by the validation engine and
// the field-constraint calculator.
package domain

// =============================================================================
// Validation Result
// =============================================================================

// ValidationResult is the outcome of validating one complete specification.
//
// Suggested is present iff Valid is false; it is always a full
// specification, never a partial patch. Warnings never affect Valid.
type ValidationResult struct {
	Valid      bool           `json:"isValid"`
	Violations []Finding      `json:"violations"`
	Warnings   []Finding      `json:"warnings"`
	Suggested  *Specification `json:"suggestedSpecification,omitempty"`
}

// =============================================================================
// Field Constraints
// =============================================================================

// FieldConstraint is the currently legal range for one numeric field, derived
// from whatever subset of the specification is already known. It answers
// "what values are legal right now", not "is this value legal".
type FieldConstraint struct {
	Min         float64  `json:"min"`
	Max         float64  `json:"max"`
	Recommended *float64 `json:"recommended,omitempty"`
	Reason      string   `json:"reason"` // human-readable justification (localized)
}

// FieldConstraints maps canonical field names to their current constraint.
// Fields whose bounds cannot be derived yet are absent.
type FieldConstraints map[string]FieldConstraint
