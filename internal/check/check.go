// Package check implements the rule checkers.
//
// Each checker is a total, pure function from a complete specification to
// zero or more findings. Checkers never fail for any value within the
// field's declared type, share no state, and do not depend on one another;
// the rule tables and the message printer are passed in as immutable
// collaborators.
package check

import (
	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/i18n"
	"github.com/slabforge/tablecheck/internal/rules"
)

// Checker is one independent rule module.
type Checker func(spec domain.Specification, t *rules.Tables, msgs *i18n.Printer) []domain.Finding

// All returns the checkers in their fixed evaluation order. The order only
// affects finding-list ordering, not correctness.
func All() []Checker {
	return []Checker{
		Material,
		Span,
		Stability,
		Legs,
		Height,
		Edge,
		Composite,
	}
}
