package check

import (
	"fmt"
	"math"

	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/i18n"
	"github.com/slabforge/tablecheck/internal/rules"
)

// Height checks the absolute total-height bounds (HGT-01, low and high
// emitted separately) and the consistency of the stated total height against
// leg height plus top thickness within the table tolerance (HGT-03).
func Height(spec domain.Specification, t *rules.Tables, msgs *i18n.Printer) []domain.Finding {
	var findings []domain.Finding

	switch {
	case spec.TotalHeight < t.Height.Min:
		findings = append(findings, domain.Finding{
			Rule:    domain.RuleHeightRange,
			Field:   domain.FieldTotalHeight,
			Message: msgs.T("rule.hgt01.low", spec.TotalHeight, t.Height.Min),
			Detail:  fmt.Sprintf("total height %.1f mm below minimum %.1f mm", spec.TotalHeight, t.Height.Min),
		})
	case spec.TotalHeight > t.Height.Max:
		findings = append(findings, domain.Finding{
			Rule:    domain.RuleHeightRange,
			Field:   domain.FieldTotalHeight,
			Message: msgs.T("rule.hgt01.high", spec.TotalHeight, t.Height.Max),
			Detail:  fmt.Sprintf("total height %.1f mm above maximum %.1f mm", spec.TotalHeight, t.Height.Max),
		})
	}

	sum := spec.LegHeight + spec.Thickness
	if math.Abs(spec.TotalHeight-sum) > t.Height.Tolerance {
		findings = append(findings, domain.Finding{
			Rule:    domain.RuleHeightConsistency,
			Field:   domain.FieldTotalHeight,
			Message: msgs.T("rule.hgt03"),
			Detail: fmt.Sprintf("total height %.1f mm differs from leg height %.1f mm + thickness %.1f mm by more than %.1f mm",
				spec.TotalHeight, spec.LegHeight, spec.Thickness, t.Height.Tolerance),
		})
	}

	return findings
}
