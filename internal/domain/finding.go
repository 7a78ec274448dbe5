// Package domain contains core business types and interfaces.
//
// This file defines the Finding domain type: one rule outcome produced by a
// checker, classified as a violation or a warning by rule identifier.
package domain

// =============================================================================
// Rule Identifiers
// =============================================================================

// Rule identifiers are stable codes carried on every finding so callers can
// branch deterministically. They never change meaning between releases.
const (
	// Material rules (solid tops only).
	RuleMaterialMinThickness  = "MAT-01" // absolute minimum thickness per material
	RuleMaterialSpanThickness = "MAT-02" // raised minimum beyond the span threshold

	// Span rules.
	RuleSpanTiered   = "SPAN-01" // thickness-tiered span limit, 2/4/6 legs
	RuleSpanPedestal = "SPAN-02" // pedestal span limit with conservative fallback

	// Stability rules.
	RuleStabilityFootprint = "STAB-01" // footprint to height ratio
	RuleStabilityBase      = "STAB-02" // pedestal base diameter vs height
	RuleStabilityFoot      = "STAB-03" // stabilizing foot required on tall slim legs

	// Leg rules.
	RuleLegMetalProfile  = "LEG-01" // metal minimum size by material and profile
	RuleLegWoodProfile   = "LEG-02" // wood minimum size by height tier
	RuleLegSlenderness   = "LEG-03" // height over profile size limit
	RuleLegPedestalShape = "LEG-04" // pedestal requires round or square top
	RuleLegPlacement     = "LEG-05" // symmetric placement recommendation (warning)

	// Height rules.
	RuleHeightRange       = "HGT-01" // absolute total height bounds
	RuleHeightConsistency = "HGT-03" // total height vs leg height + thickness

	// Edge rule.
	RuleEdgeThickness = "EDGE-01" // minimum thickness for machined edges

	// Composite rules.
	RuleCompositeFace  = "COMP-01" // face panel minimum per material
	RuleCompositeCore  = "COMP-02" // derived core minimum
	RuleCompositeTotal = "COMP-03" // total vs 2*face + minimum core

	// Radial half-cylinder base rules.
	RuleRadialSpread = "RAD-01" // minimum spread radius vs height
	RuleRadialCount  = "RAD-02" // minimum half-cylinder count
	RuleRadialSize   = "RAD-03" // minimum half-cylinder diameter
)

// warningRules is the fixed set of rule identifiers classified as warnings.
// Everything else is a violation.
var warningRules = map[string]bool{
	RuleLegPlacement: true,
}

// IsWarningRule reports whether the rule identifier belongs to the warning
// class. Warnings never affect validity and are never repaired.
func IsWarningRule(rule string) bool {
	return warningRules[rule]
}

// =============================================================================
// Field Names
// =============================================================================

// Canonical field names reported on findings and keyed in field constraints.
// Multi-field rules still report exactly one canonical field so the UI keeps
// a 1:1 finding-to-editable-field mapping.
const (
	FieldThickness     = "top.thickness"
	FieldFaceThickness = "top.faceThickness"
	FieldLength        = "top.length"
	FieldWidth         = "top.width"
	FieldShape         = "top.shape"
	FieldEdge          = "top.edge"
	FieldLegCount      = "legs.count"
	FieldLegSize       = "legs.size"
	FieldLegHeight     = "legs.height"
	FieldFootBase      = "legs.footBase"
	FieldHalfCylinders = "legs.halfCylinders"
	FieldSpreadRadius  = "legs.spreadRadius"
	FieldTotalHeight   = "totalHeight"
)

// =============================================================================
// Finding
// =============================================================================

// Finding is one rule outcome.
//
// Message is intended for end-user display and is localized; Detail is the
// technical register for logs and diagnostics and is always English. Both
// are plain text; only Rule is machine-parseable.
type Finding struct {
	Rule    string `json:"rule"`    // stable rule identifier
	Field   string `json:"field"`   // canonical field the rule concerns
	Message string `json:"message"` // user-facing explanation (localized)
	Detail  string `json:"detail"`  // technical explanation (not localized)
}

// IsWarning reports whether this finding is warning-class.
func (f Finding) IsWarning() bool {
	return IsWarningRule(f.Rule)
}
