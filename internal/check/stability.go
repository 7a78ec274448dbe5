package check

import (
	"fmt"

	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/i18n"
	"github.com/slabforge/tablecheck/internal/rules"
)

// Stability checks tipping safety. The footprint is the doubled spread
// radius for radial bases, otherwise the top width.
//
// STAB-01 bounds the footprint against total height and reports on the leg
// height (the cheapest field to correct). STAB-02 applies only to
// pedestal/single-leg, non-radial bases and reports on the profile size.
// STAB-03 requires a stabilizing foot on tall, slim legs and reports on the
// foot-base field; radial bases are exempt from both STAB-02 and STAB-03.
func Stability(spec domain.Specification, t *rules.Tables, msgs *i18n.Printer) []domain.Finding {
	var findings []domain.Finding

	footprint := spec.Footprint()
	minFootprint := t.MinFootprint(spec.TotalHeight)
	if footprint < minFootprint {
		findings = append(findings, domain.Finding{
			Rule:    domain.RuleStabilityFootprint,
			Field:   domain.FieldLegHeight,
			Message: msgs.T("rule.stab01", minFootprint),
			Detail: fmt.Sprintf("footprint %.1f mm below %.1f mm (ratio %.2f of height %.1f mm)",
				footprint, minFootprint, t.Stability.MinFootprintRatio, spec.TotalHeight),
		})
	}

	if spec.IsRadial() {
		return findings
	}

	if spec.IsPedestal() {
		minBase := t.MinPedestalBase(spec.TotalHeight)
		if spec.LegSize < minBase {
			findings = append(findings, domain.Finding{
				Rule:    domain.RuleStabilityBase,
				Field:   domain.FieldLegSize,
				Message: msgs.T("rule.stab02", minBase),
				Detail: fmt.Sprintf("pedestal base %.1f mm below %.1f mm (ratio %.2f of height %.1f mm)",
					spec.LegSize, minBase, t.Stability.PedestalBaseRatio, spec.TotalHeight),
			})
		}
	}

	if spec.LegHeight > t.Stability.FootHeightThreshold &&
		spec.LegSize < t.FootMinProfile(spec.LegMaterial) &&
		!spec.FootBase {
		findings = append(findings, domain.Finding{
			Rule:    domain.RuleStabilityFoot,
			Field:   domain.FieldFootBase,
			Message: msgs.T("rule.stab03"),
			Detail: fmt.Sprintf("leg height %.1f mm over %.1f mm with profile %.1f mm under %.1f mm and no foot base",
				spec.LegHeight, t.Stability.FootHeightThreshold, spec.LegSize, t.FootMinProfile(spec.LegMaterial)),
		})
	}

	return findings
}
