package check

import (
	"fmt"

	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/i18n"
	"github.com/slabforge/tablecheck/internal/rules"
)

// Legs checks the leg geometry. Radial half-cylinder bases switch to their
// own rule set (RAD-01..03) and bypass every standard leg rule.
//
// Standard legs: metal legs are held to the material-by-profile minimum
// table (LEG-01), wood legs to the height-tiered minimum (LEG-02), both to
// the slenderness limit (LEG-03). Pedestal/single-leg configurations require
// a round or square top (LEG-04), and four or more legs under a curved top
// yield the sole warning-class finding (LEG-05).
func Legs(spec domain.Specification, t *rules.Tables, msgs *i18n.Printer) []domain.Finding {
	if spec.IsRadial() {
		return radialBase(spec, t, msgs)
	}

	var findings []domain.Finding

	switch {
	case spec.LegMaterial.IsMetal():
		if min, ok := t.MetalProfileMin(spec.LegMaterial, spec.LegProfile); ok && spec.LegSize < min {
			findings = append(findings, domain.Finding{
				Rule:    domain.RuleLegMetalProfile,
				Field:   domain.FieldLegSize,
				Message: msgs.T("rule.leg01", msgs.T("legmaterial."+spec.LegMaterial.String()), min),
				Detail: fmt.Sprintf("%s %s profile %.1f mm below minimum %.1f mm",
					spec.LegMaterial, spec.LegProfile, spec.LegSize, min),
			})
		}
	case spec.LegMaterial.IsWood():
		if min := t.WoodProfileMin(spec.LegHeight); spec.LegSize < min {
			findings = append(findings, domain.Finding{
				Rule:    domain.RuleLegWoodProfile,
				Field:   domain.FieldLegSize,
				Message: msgs.T("rule.leg02", min),
				Detail: fmt.Sprintf("wood profile %.1f mm below minimum %.1f mm at leg height %.1f mm",
					spec.LegSize, min, spec.LegHeight),
			})
		}
	}

	limit := t.SlendernessLimit(spec.LegMaterial)
	if spec.LegHeight > 0 && (spec.LegSize <= 0 || spec.LegHeight/spec.LegSize > limit) {
		minProfile := t.MinProfileForSlenderness(spec.LegMaterial, spec.LegHeight)
		findings = append(findings, domain.Finding{
			Rule:    domain.RuleLegSlenderness,
			Field:   domain.FieldLegSize,
			Message: msgs.T("rule.leg03", minProfile),
			Detail: fmt.Sprintf("slenderness %.1f/%.1f exceeds limit %.1f for %s",
				spec.LegHeight, spec.LegSize, limit, spec.LegMaterial),
		})
	}

	if spec.IsPedestal() && spec.Shape != domain.ShapeRound && spec.Shape != domain.ShapeSquare {
		findings = append(findings, domain.Finding{
			Rule:    domain.RuleLegPedestalShape,
			Field:   domain.FieldShape,
			Message: msgs.T("rule.leg04"),
			Detail:  fmt.Sprintf("pedestal support with %s top; only round or square is carried", spec.Shape),
		})
	}

	if (spec.Shape == domain.ShapeRound || spec.Shape == domain.ShapeOval) && spec.LegCount >= 4 {
		findings = append(findings, domain.Finding{
			Rule:    domain.RuleLegPlacement,
			Field:   domain.FieldLegCount,
			Message: msgs.T("rule.leg05"),
			Detail:  fmt.Sprintf("%d legs under a %s top; recommend symmetric placement", spec.LegCount, spec.Shape),
		})
	}

	return findings
}

// radialBase applies the independent radial half-cylinder rule set.
func radialBase(spec domain.Specification, t *rules.Tables, msgs *i18n.Printer) []domain.Finding {
	var findings []domain.Finding

	minSpread := t.MinSpreadRadius(spec.TotalHeight)
	if spec.SpreadRadius < minSpread {
		findings = append(findings, domain.Finding{
			Rule:    domain.RuleRadialSpread,
			Field:   domain.FieldSpreadRadius,
			Message: msgs.T("rule.rad01", minSpread),
			Detail: fmt.Sprintf("spread radius %.1f mm below %.1f mm (ratio %.2f of height %.1f mm)",
				spec.SpreadRadius, minSpread, t.Radial.MinSpreadRatio, spec.TotalHeight),
		})
	}

	if spec.HalfCylinders < t.Radial.MinCount {
		findings = append(findings, domain.Finding{
			Rule:    domain.RuleRadialCount,
			Field:   domain.FieldHalfCylinders,
			Message: msgs.T("rule.rad02", t.Radial.MinCount),
			Detail:  fmt.Sprintf("%d half-cylinders below minimum %d", spec.HalfCylinders, t.Radial.MinCount),
		})
	}

	if spec.LegSize < t.Radial.MinSize {
		findings = append(findings, domain.Finding{
			Rule:    domain.RuleRadialSize,
			Field:   domain.FieldLegSize,
			Message: msgs.T("rule.rad03", t.Radial.MinSize),
			Detail:  fmt.Sprintf("half-cylinder diameter %.1f mm below minimum %.1f mm", spec.LegSize, t.Radial.MinSize),
		})
	}

	return findings
}
