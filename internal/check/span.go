package check

import (
	"fmt"
	"math"

	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/i18n"
	"github.com/slabforge/tablecheck/internal/rules"
)

// Span checks the top's unsupported span against the thickness-tiered span
// tables. Pedestal/single-leg tops use their own reverse-sorted tier table
// with a conservative fallback (SPAN-02) and receive no further span checks;
// 2/4/6-leg tops use the material-aware tier table (SPAN-01), where the
// absence of a matching tier means no limit is defined. Radial bases carry
// their own rule set and are not span-checked here.
func Span(spec domain.Specification, t *rules.Tables, msgs *i18n.Printer) []domain.Finding {
	if spec.IsRadial() {
		return nil
	}

	span := spec.EffectiveSpan()

	if spec.IsPedestal() {
		limit := t.PedestalSpanLimit(spec.Thickness)
		if span > limit {
			return []domain.Finding{{
				Rule:    domain.RuleSpanPedestal,
				Field:   domain.FieldThickness,
				Message: msgs.T("rule.span02", limit, math.Round(span)),
				Detail: fmt.Sprintf("pedestal span %.1f mm exceeds limit %.1f mm at thickness %.1f mm",
					span, limit, spec.Thickness),
			}}
		}
		return nil
	}

	limit, ok := t.SpanLimit(spec.Material, spec.Thickness, spec.IsComposite())
	if !ok {
		// No tier covers this material/thickness: no defined limit.
		return nil
	}
	if span > limit {
		return []domain.Finding{{
			Rule:    domain.RuleSpanTiered,
			Field:   domain.FieldThickness,
			Message: msgs.T("rule.span01", math.Round(span), limit),
			Detail: fmt.Sprintf("effective span %.1f mm exceeds limit %.1f mm for %s at thickness %.1f mm (composite=%v)",
				span, limit, spec.Material, spec.Thickness, spec.IsComposite()),
		}}
	}
	return nil
}
