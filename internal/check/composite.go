package check

import (
	"fmt"

	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/i18n"
	"github.com/slabforge/tablecheck/internal/rules"
)

// Composite checks sandwich-construction tops; solid tops are skipped.
//
// COMP-01 holds the face panels to the material minimum, COMP-02 the derived
// core thickness to the absolute core minimum, and COMP-03 the total
// thickness to 2*face + minimum core. COMP-03 cannot fire unless COMP-02
// already does; it stays in as a defensive check on the total.
func Composite(spec domain.Specification, t *rules.Tables, msgs *i18n.Printer) []domain.Finding {
	if !spec.IsComposite() {
		return nil
	}

	var findings []domain.Finding

	if min, ok := t.MinFaceThickness(spec.Material); ok && spec.FaceThickness < min {
		findings = append(findings, domain.Finding{
			Rule:    domain.RuleCompositeFace,
			Field:   domain.FieldFaceThickness,
			Message: msgs.T("rule.comp01", msgs.T("material."+spec.Material.String()), min),
			Detail: fmt.Sprintf("face panel %.1f mm below minimum %.1f mm for %s",
				spec.FaceThickness, min, spec.Material),
		})
	}

	core := spec.CoreThickness()
	if core < t.Composite.MinCore {
		findings = append(findings, domain.Finding{
			Rule:    domain.RuleCompositeCore,
			Field:   domain.FieldThickness,
			Message: msgs.T("rule.comp02", t.Composite.MinCore),
			Detail: fmt.Sprintf("derived core %.1f mm below minimum %.1f mm (thickness %.1f mm, face %.1f mm)",
				core, t.Composite.MinCore, spec.Thickness, spec.FaceThickness),
		})
	}

	if minTotal := t.CompositeMinTotal(spec.FaceThickness); spec.Thickness < minTotal {
		findings = append(findings, domain.Finding{
			Rule:    domain.RuleCompositeTotal,
			Field:   domain.FieldThickness,
			Message: msgs.T("rule.comp03", minTotal),
			Detail: fmt.Sprintf("total thickness %.1f mm below %.1f mm (2x face %.1f mm + core minimum %.1f mm)",
				spec.Thickness, minTotal, spec.FaceThickness, t.Composite.MinCore),
		})
	}

	return findings
}
