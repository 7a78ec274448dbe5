package rules

import (
	"math"

	"github.com/slabforge/tablecheck/internal/domain"
)

// This file holds the threshold computations shared by the rule checkers and
// the field-constraint calculator. Each function answers one bound question
// for both call shapes: the checkers compare a complete specification against
// the bound, the calculator surfaces the bound itself for a partial one.

// =============================================================================
// Material thickness
// =============================================================================

// AbsoluteMinThickness returns the absolute minimum total thickness for a
// solid top of the given material.
func (t *Tables) AbsoluteMinThickness(mat domain.TopMaterial) (float64, bool) {
	m, ok := t.Materials[mat]
	if !ok {
		return 0, false
	}
	return m.MinThickness, true
}

// SpanMinThickness returns the raised minimum thickness that applies once the
// top's long dimension exceeds the material's span threshold. The second
// return is false when the threshold is not exceeded or the material is
// unknown.
func (t *Tables) SpanMinThickness(mat domain.TopMaterial, longDim float64) (float64, bool) {
	m, ok := t.Materials[mat]
	if !ok || longDim <= m.SpanThreshold {
		return 0, false
	}
	return m.MinThicknessAtSpan, true
}

// MinFaceThickness returns the minimum composite face-panel thickness for the
// given material.
func (t *Tables) MinFaceThickness(mat domain.TopMaterial) (float64, bool) {
	m, ok := t.Materials[mat]
	if !ok {
		return 0, false
	}
	return m.MinFaceThickness, true
}

// =============================================================================
// Multi-leg span
// =============================================================================

func (st SpanTier) includes(mat domain.TopMaterial) bool {
	for _, m := range st.Materials {
		if m == mat {
			return true
		}
	}
	return false
}

// SpanLimit returns the maximum allowed effective span for a 2/4/6-leg top of
// the given material and thickness. Tier selection picks the row with the
// highest minimum-thickness requirement the actual thickness still satisfies;
// composite tops get the sandwich-stiffness multiplier on the returned limit.
// The second return is false when no tier matches, in which case no span
// limit is defined (the absence of a rule is not a failure).
func (t *Tables) SpanLimit(mat domain.TopMaterial, thickness float64, composite bool) (float64, bool) {
	best := -1
	for i, tier := range t.SpanTiers {
		if !tier.includes(mat) || thickness < tier.MinThickness {
			continue
		}
		if best < 0 || tier.MinThickness > t.SpanTiers[best].MinThickness {
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	limit := t.SpanTiers[best].MaxSpan
	if composite {
		limit *= t.CompositeSpanFactor
	}
	return limit, true
}

// ThicknessForSpan returns the smallest tier thickness that permits the given
// effective span for the material, honoring the composite multiplier. The
// second return is false when no tier can carry the span.
func (t *Tables) ThicknessForSpan(mat domain.TopMaterial, span float64, composite bool) (float64, bool) {
	best := math.Inf(1)
	found := false
	for _, tier := range t.SpanTiers {
		if !tier.includes(mat) {
			continue
		}
		limit := tier.MaxSpan
		if composite {
			limit *= t.CompositeSpanFactor
		}
		if limit >= span && tier.MinThickness < best {
			best = tier.MinThickness
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return best, true
}

// =============================================================================
// Pedestal span
// =============================================================================

// PedestalSpanLimit returns the maximum allowed effective span for a
// pedestal/single-leg top of the given thickness. Tiers are consulted in
// reverse thickness order; when none matches, the conservative fallback
// limit applies.
func (t *Tables) PedestalSpanLimit(thickness float64) float64 {
	for _, tier := range t.PedestalTiers {
		if thickness >= tier.MinThickness {
			return tier.MaxSpan
		}
	}
	return t.PedestalFallbackSpan
}

// PedestalThicknessForSpan returns the smallest tier thickness whose pedestal
// span limit covers the given span. The second return is false when even the
// strongest tier cannot carry it.
func (t *Tables) PedestalThicknessForSpan(span float64) (float64, bool) {
	best := math.Inf(1)
	found := false
	for _, tier := range t.PedestalTiers {
		if tier.MaxSpan >= span && tier.MinThickness < best {
			best = tier.MinThickness
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return best, true
}

// =============================================================================
// Stability
// =============================================================================

// MinFootprint returns the minimum footprint for the given total height.
func (t *Tables) MinFootprint(totalHeight float64) float64 {
	return t.Stability.MinFootprintRatio * totalHeight
}

// MaxHeightForFootprint returns the maximum total height the given footprint
// supports.
func (t *Tables) MaxHeightForFootprint(footprint float64) float64 {
	if t.Stability.MinFootprintRatio <= 0 {
		return math.Inf(1)
	}
	return footprint / t.Stability.MinFootprintRatio
}

// MinPedestalBase returns the minimum pedestal base diameter for the given
// total height.
func (t *Tables) MinPedestalBase(totalHeight float64) float64 {
	return t.Stability.PedestalBaseRatio * totalHeight
}

// FootMinProfile returns the profile size at or above which a leg of the
// given material class needs no stabilizing foot.
func (t *Tables) FootMinProfile(mat domain.LegMaterial) float64 {
	if mat.IsWood() {
		return t.Stability.FootMinProfileWood
	}
	return t.Stability.FootMinProfileMetal
}

// =============================================================================
// Legs
// =============================================================================

// MetalProfileMin returns the minimum profile size for a metal leg of the
// given material and profile type. The second return is false when the table
// has no entry for the combination.
func (t *Tables) MetalProfileMin(mat domain.LegMaterial, profile domain.LegProfile) (float64, bool) {
	byProfile, ok := t.Legs.MetalMin[mat]
	if !ok {
		return 0, false
	}
	min, ok := byProfile[profile]
	return min, ok
}

// WoodProfileMin returns the height-tiered minimum profile size for wood legs.
func (t *Tables) WoodProfileMin(legHeight float64) float64 {
	if legHeight > t.Legs.WoodTierHeight {
		return t.Legs.WoodMinAbove
	}
	return t.Legs.WoodMinBelow
}

// SlendernessLimit returns the maximum height / profile-size ratio for the
// leg material's class.
func (t *Tables) SlendernessLimit(mat domain.LegMaterial) float64 {
	if mat.IsWood() {
		return t.Legs.MaxSlendernessWood
	}
	return t.Legs.MaxSlendernessMetal
}

// MinProfileForSlenderness returns the smallest profile size that keeps a leg
// of the given height within the material's slenderness limit.
func (t *Tables) MinProfileForSlenderness(mat domain.LegMaterial, legHeight float64) float64 {
	limit := t.SlendernessLimit(mat)
	if limit <= 0 {
		return 0
	}
	return legHeight / limit
}

// =============================================================================
// Radial base
// =============================================================================

// MinSpreadRadius returns the minimum radial spread for the given total
// height.
func (t *Tables) MinSpreadRadius(totalHeight float64) float64 {
	return t.Radial.MinSpreadRatio * totalHeight
}

// =============================================================================
// Edge and composite
// =============================================================================

// EdgeMin returns the minimum thickness required by the given edge finish.
// The second return is false for finishes without a thickness constraint.
func (t *Tables) EdgeMin(edge domain.EdgeFinish) (float64, bool) {
	min, ok := t.EdgeMinThickness[edge]
	return min, ok
}

// CompositeMinTotal returns the minimum total thickness for a composite top
// with the given face-panel thickness.
func (t *Tables) CompositeMinTotal(faceThickness float64) float64 {
	return 2*faceThickness + t.Composite.MinCore
}
