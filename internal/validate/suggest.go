package validate

import (
	"math"

	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/rules"
)

// Suggest produces one candidate corrected specification from the original
// and its violations. Each violation gets one rule-specific local fix,
// applied to a private copy in violation-list order; afterwards the total
// height is unconditionally recomputed as leg height plus top thickness.
//
// This is a greedy, non-iterative repair heuristic, not a constraint solver:
// a fix may invalidate a field another rule depends on and the output is not
// re-validated. Each fix takes the cheapest direction for its rule, e.g.
// raising thickness over shrinking the top for span failures, or adding a
// foot base over re-engineering the leg for stability failures.
func Suggest(spec domain.Specification, violations []domain.Finding, t *rules.Tables) domain.Specification {
	fixed := spec
	for _, v := range violations {
		applyFix(&fixed, v.Rule, t)
	}
	fixed.TotalHeight = fixed.LegHeight + fixed.Thickness
	return fixed
}

// applyFix mutates the working copy for one rule identifier. Rules with no
// physically meaningful single-field fix are no-ops.
func applyFix(s *domain.Specification, rule string, t *rules.Tables) {
	switch rule {
	case domain.RuleMaterialMinThickness:
		if min, ok := t.AbsoluteMinThickness(s.Material); ok {
			s.Thickness = math.Max(s.Thickness, min)
		}

	case domain.RuleMaterialSpanThickness:
		if min, ok := t.SpanMinThickness(s.Material, s.LongDimension()); ok {
			s.Thickness = math.Max(s.Thickness, min)
		}

	case domain.RuleSpanTiered:
		if min, ok := t.ThicknessForSpan(s.Material, s.EffectiveSpan(), s.IsComposite()); ok {
			s.Thickness = math.Max(s.Thickness, min)
		}

	case domain.RuleSpanPedestal:
		if min, ok := t.PedestalThicknessForSpan(s.EffectiveSpan()); ok {
			s.Thickness = math.Max(s.Thickness, min)
		}

	case domain.RuleStabilityFootprint:
		// Lower the legs until the footprint carries the height again.
		maxTotal := t.MaxHeightForFootprint(s.Footprint())
		if legMax := maxTotal - s.Thickness; legMax < s.LegHeight {
			s.LegHeight = legMax
		}

	case domain.RuleStabilityBase:
		s.LegSize = math.Max(s.LegSize, t.MinPedestalBase(s.TotalHeight))

	case domain.RuleStabilityFoot:
		s.FootBase = true

	case domain.RuleLegMetalProfile:
		if min, ok := t.MetalProfileMin(s.LegMaterial, s.LegProfile); ok {
			s.LegSize = math.Max(s.LegSize, min)
		}

	case domain.RuleLegWoodProfile:
		s.LegSize = math.Max(s.LegSize, t.WoodProfileMin(s.LegHeight))

	case domain.RuleLegSlenderness:
		s.LegSize = math.Max(s.LegSize, t.MinProfileForSlenderness(s.LegMaterial, s.LegHeight))

	case domain.RuleLegPedestalShape:
		// Cheapest edit that keeps the shape coherent.
		s.Shape = domain.ShapeRound
		s.Width = s.Length

	case domain.RuleHeightRange:
		if s.TotalHeight < t.Height.Min {
			s.LegHeight = t.Height.Min - s.Thickness
		} else if s.TotalHeight > t.Height.Max {
			s.LegHeight = t.Height.Max - s.Thickness
		}

	case domain.RuleHeightConsistency:
		// Re-established by the final recompute.

	case domain.RuleEdgeThickness:
		if min, ok := t.EdgeMin(s.Edge); ok {
			if s.IsComposite() {
				s.FaceThickness = math.Max(s.FaceThickness, min)
			} else {
				s.Thickness = math.Max(s.Thickness, min)
			}
		}

	case domain.RuleCompositeFace:
		if min, ok := t.MinFaceThickness(s.Material); ok {
			s.FaceThickness = math.Max(s.FaceThickness, min)
		}

	case domain.RuleCompositeCore, domain.RuleCompositeTotal:
		s.Thickness = math.Max(s.Thickness, t.CompositeMinTotal(s.FaceThickness))

	case domain.RuleRadialSpread:
		s.SpreadRadius = math.Max(s.SpreadRadius, t.MinSpreadRadius(s.TotalHeight))

	case domain.RuleRadialCount:
		if s.HalfCylinders < t.Radial.MinCount {
			s.HalfCylinders = t.Radial.MinCount
		}

	case domain.RuleRadialSize:
		s.LegSize = math.Max(s.LegSize, t.Radial.MinSize)
	}
}
