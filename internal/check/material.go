package check

import (
	"fmt"

	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/i18n"
	"github.com/slabforge/tablecheck/internal/rules"
)

// Material enforces the per-material thickness minimums for solid tops:
// an absolute minimum (MAT-01) and a raised, span-triggered minimum once the
// top's long dimension exceeds the material's threshold (MAT-02).
//
// Composite tops are skipped entirely; the face-panel rules govern those.
func Material(spec domain.Specification, t *rules.Tables, msgs *i18n.Printer) []domain.Finding {
	if spec.IsComposite() {
		return nil
	}

	var findings []domain.Finding
	matName := msgs.T("material." + spec.Material.String())

	if min, ok := t.AbsoluteMinThickness(spec.Material); ok && spec.Thickness < min {
		findings = append(findings, domain.Finding{
			Rule:    domain.RuleMaterialMinThickness,
			Field:   domain.FieldThickness,
			Message: msgs.T("rule.mat01", matName, min),
			Detail: fmt.Sprintf("thickness %.1f mm below absolute minimum %.1f mm for %s",
				spec.Thickness, min, spec.Material),
		})
	}

	longDim := spec.LongDimension()
	if min, ok := t.SpanMinThickness(spec.Material, longDim); ok && spec.Thickness < min {
		limits := t.Materials[spec.Material]
		findings = append(findings, domain.Finding{
			Rule:    domain.RuleMaterialSpanThickness,
			Field:   domain.FieldThickness,
			Message: msgs.T("rule.mat02", matName, limits.SpanThreshold, min),
			Detail: fmt.Sprintf("long dimension %.0f mm exceeds %.0f mm threshold for %s; thickness %.1f mm below raised minimum %.1f mm",
				longDim, limits.SpanThreshold, spec.Material, spec.Thickness, min),
		})
	}

	return findings
}
