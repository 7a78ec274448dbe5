// Package validate contains the validation engine: the orchestrator that
// runs the rule checkers over a complete specification, classifies the
// findings, and produces a repair suggestion for invalid input.
package validate

import (
	"log/slog"

	"golang.org/x/text/language"

	"github.com/slabforge/tablecheck/internal/check"
	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/i18n"
	"github.com/slabforge/tablecheck/internal/rules"
)

// Engine runs the checkers in their fixed order and assembles the result.
// It is stateless apart from its immutable collaborators and safe for
// concurrent use.
type Engine struct {
	tables *rules.Tables
	logger *slog.Logger
}

// New creates an Engine over the given rule tables.
func New(tables *rules.Tables, logger *slog.Logger) *Engine {
	return &Engine{
		tables: tables,
		logger: logger,
	}
}

// Tables returns the rule tables the engine was built with.
func (e *Engine) Tables() *rules.Tables {
	return e.tables
}

// Validate classifies a complete specification with English user messages.
// It is deterministic: the same input yields the same result, field for
// field.
func (e *Engine) Validate(spec domain.Specification) domain.ValidationResult {
	return e.ValidateIn(spec, language.English)
}

// ValidateIn is Validate with user-facing messages in the given language.
// The technical detail register is unaffected by the language choice.
func (e *Engine) ValidateIn(spec domain.Specification, tag language.Tag) domain.ValidationResult {
	msgs := i18n.NewPrinter(tag)

	violations := []domain.Finding{}
	warnings := []domain.Finding{}
	for _, chk := range check.All() {
		for _, f := range chk(spec, e.tables, msgs) {
			if f.IsWarning() {
				warnings = append(warnings, f)
			} else {
				violations = append(violations, f)
			}
		}
	}

	result := domain.ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
		Warnings:   warnings,
	}

	if !result.Valid {
		suggested := Suggest(spec, violations, e.tables)
		result.Suggested = &suggested
	}

	e.logger.Debug("specification validated",
		"valid", result.Valid,
		"violations", len(violations),
		"warnings", len(warnings),
	)

	return result
}
