package check

import (
	"fmt"

	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/i18n"
	"github.com/slabforge/tablecheck/internal/rules"
)

// Edge checks that machined edge finishes (mitered, beveled) leave enough
// material. Composite tops are compared on the face-panel thickness, because
// the edge is machined into the face only; solid tops on the full thickness.
// The finding reports on the thickness field that would be edited.
func Edge(spec domain.Specification, t *rules.Tables, msgs *i18n.Printer) []domain.Finding {
	min, ok := t.EdgeMin(spec.Edge)
	if !ok {
		return nil
	}

	effective := spec.Thickness
	field := domain.FieldThickness
	if spec.IsComposite() {
		effective = spec.FaceThickness
		field = domain.FieldFaceThickness
	}

	if effective < min {
		return []domain.Finding{{
			Rule:    domain.RuleEdgeThickness,
			Field:   field,
			Message: msgs.T("rule.edge01", msgs.T("edge."+spec.Edge.String()), min),
			Detail: fmt.Sprintf("%s edge on %.1f mm of material, minimum %.1f mm (composite=%v)",
				spec.Edge, effective, min, spec.IsComposite()),
		}}
	}
	return nil
}
