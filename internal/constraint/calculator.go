// Package constraint implements the field-constraint calculator used for
// live input bounding in the configurator UI.
//
// Given a partial specification it derives, per numeric field, the currently
// legal range, an optional recommended value, and a human-readable reason.
// Fields not yet chosen contribute no restriction: missing context is always
// treated permissively. The calculator shares the rule tables' threshold
// helpers with the checkers, so both query shapes compute each bound from a
// single source.
package constraint

import (
	"math"

	"golang.org/x/text/language"

	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/i18n"
	"github.com/slabforge/tablecheck/internal/rules"
)

// Calculator derives per-field bounds from the rule tables. It is stateless
// and safe for concurrent use.
type Calculator struct {
	tables *rules.Tables
}

// New creates a Calculator over the given rule tables.
func New(tables *rules.Tables) *Calculator {
	return &Calculator{tables: tables}
}

// FieldConstraints derives bounds with English reasons.
func (c *Calculator) FieldConstraints(p domain.PartialSpecification) domain.FieldConstraints {
	return c.FieldConstraintsIn(p, language.English)
}

// FieldConstraintsIn derives bounds with reasons in the given language.
func (c *Calculator) FieldConstraintsIn(p domain.PartialSpecification, tag language.Tag) domain.FieldConstraints {
	msgs := i18n.NewPrinter(tag)
	fc := domain.FieldConstraints{}

	fc[domain.FieldThickness] = c.thickness(p, msgs)
	fc[domain.FieldLength] = c.length(p, msgs)
	fc[domain.FieldWidth] = c.width(p, msgs)
	fc[domain.FieldLegSize] = c.legSize(p, msgs)
	fc[domain.FieldLegHeight] = c.legHeight(p, msgs)
	fc[domain.FieldTotalHeight] = c.totalHeight(p, msgs)
	fc[domain.FieldLegCount] = domain.FieldConstraint{
		Min:    1,
		Max:    6,
		Reason: msgs.T("reason.leg_count"),
	}

	if p.IsComposite() {
		fc[domain.FieldFaceThickness] = c.faceThickness(p, msgs)
	}
	if p.IsRadial() {
		fc[domain.FieldSpreadRadius] = c.spreadRadius(p, msgs)
		fc[domain.FieldHalfCylinders] = domain.FieldConstraint{
			Min:    float64(c.tables.Radial.MinCount),
			Max:    8,
			Reason: msgs.T("reason.radial_count"),
		}
	}

	return fc
}

// bounds accumulates a [min,max] range and remembers which constraint set
// the binding edge, so the reason names the rule that actually bites.
type bounds struct {
	min, max float64
	reason   string
}

func (b *bounds) raiseMin(v float64, reason string) {
	if v > b.min {
		b.min = v
		b.reason = reason
	}
}

func (b *bounds) lowerMax(v float64, reason string) {
	if v < b.max {
		b.max = v
		b.reason = reason
	}
}

func (b *bounds) constraint(recommended *float64) domain.FieldConstraint {
	return domain.FieldConstraint{
		Min:         b.min,
		Max:         b.max,
		Recommended: recommended,
		Reason:      b.reason,
	}
}

// isPedestal reports single-column support as far as it is known.
func isPedestal(p domain.PartialSpecification) bool {
	if p.LegProfile != nil && *p.LegProfile == domain.ProfilePedestal {
		return true
	}
	return p.LegCount != nil && *p.LegCount == 1
}

// partialSpan derives the effective span when enough geometry is known.
func partialSpan(p domain.PartialSpecification) (float64, bool) {
	if p.Shape != nil && *p.Shape == domain.ShapeRound {
		if p.Length != nil {
			return *p.Length, true
		}
		return 0, false
	}
	if p.Length != nil && p.Width != nil {
		return math.Hypot(*p.Length, *p.Width), true
	}
	return 0, false
}

func (c *Calculator) thickness(p domain.PartialSpecification, msgs *i18n.Printer) domain.FieldConstraint {
	t := c.tables
	b := bounds{min: t.Production.ThicknessMin, max: t.Production.ThicknessMax, reason: msgs.T("reason.dimension")}
	solid := p.Construction == nil || *p.Construction == domain.ConstructionSolid

	if p.Material != nil {
		matName := msgs.T("material." + p.Material.String())
		if solid {
			if min, ok := t.AbsoluteMinThickness(*p.Material); ok {
				b.raiseMin(min, msgs.T("reason.material_min", matName))
			}
			if p.Length != nil || p.Width != nil {
				longDim := 0.0
				if p.Length != nil {
					longDim = *p.Length
				}
				if p.Width != nil {
					longDim = math.Max(longDim, *p.Width)
				}
				if min, ok := t.SpanMinThickness(*p.Material, longDim); ok {
					b.raiseMin(min, msgs.T("reason.material_min", matName))
				}
			}
		}
	}

	if p.IsComposite() && p.FaceThickness != nil {
		b.raiseMin(t.CompositeMinTotal(*p.FaceThickness), msgs.T("reason.core_min"))
	}

	if solid && p.Edge != nil {
		if min, ok := t.EdgeMin(*p.Edge); ok {
			b.raiseMin(min, msgs.T("reason.edge_min", msgs.T("edge."+p.Edge.String())))
		}
	}

	if span, ok := partialSpan(p); ok && !p.IsRadial() {
		if isPedestal(p) {
			if min, ok := t.PedestalThicknessForSpan(span); ok {
				b.raiseMin(min, msgs.T("reason.pedestal_span"))
			}
		} else if p.Material != nil {
			if min, ok := t.ThicknessForSpan(*p.Material, span, p.IsComposite()); ok {
				b.raiseMin(min, msgs.T("reason.span"))
			}
		}
	}

	rec := b.min
	return b.constraint(&rec)
}

func (c *Calculator) faceThickness(p domain.PartialSpecification, msgs *i18n.Printer) domain.FieldConstraint {
	t := c.tables
	b := bounds{min: t.Production.FaceMin, max: t.Production.FaceMax, reason: msgs.T("reason.dimension")}

	if p.Material != nil {
		if min, ok := t.MinFaceThickness(*p.Material); ok {
			b.raiseMin(min, msgs.T("reason.face_min", msgs.T("material."+p.Material.String())))
		}
	}
	if p.Edge != nil {
		if min, ok := t.EdgeMin(*p.Edge); ok {
			b.raiseMin(min, msgs.T("reason.edge_min", msgs.T("edge."+p.Edge.String())))
		}
	}
	if p.Thickness != nil {
		b.lowerMax((*p.Thickness-t.Composite.MinCore)/2, msgs.T("reason.core_min"))
	}

	return b.constraint(nil)
}

// spanLimitFor returns the currently applicable span limit, when derivable.
func (c *Calculator) spanLimitFor(p domain.PartialSpecification) (float64, bool) {
	if p.Thickness == nil || p.IsRadial() {
		return 0, false
	}
	if isPedestal(p) {
		return c.tables.PedestalSpanLimit(*p.Thickness), true
	}
	if p.Material == nil {
		return 0, false
	}
	return c.tables.SpanLimit(*p.Material, *p.Thickness, p.IsComposite())
}

func (c *Calculator) length(p domain.PartialSpecification, msgs *i18n.Printer) domain.FieldConstraint {
	t := c.tables
	b := bounds{min: t.Production.LengthMin, max: t.Production.LengthMax, reason: msgs.T("reason.dimension")}

	spanReason := msgs.T("reason.span")
	if isPedestal(p) {
		spanReason = msgs.T("reason.pedestal_span")
	}

	if limit, ok := c.spanLimitFor(p); ok {
		if p.Shape != nil && *p.Shape == domain.ShapeRound {
			b.lowerMax(limit, spanReason)
		} else if p.Width != nil && limit > *p.Width {
			b.lowerMax(math.Sqrt(limit*limit-*p.Width**p.Width), spanReason)
		}
	}

	// Below the raised minimum a thin solid top may not cross the material's
	// span threshold.
	if p.Material != nil && p.Thickness != nil && !p.IsComposite() {
		if m, ok := t.Materials[*p.Material]; ok && *p.Thickness < m.MinThicknessAtSpan {
			b.lowerMax(m.SpanThreshold, msgs.T("reason.material_min", msgs.T("material."+p.Material.String())))
		}
	}

	return b.constraint(nil)
}

func (c *Calculator) width(p domain.PartialSpecification, msgs *i18n.Printer) domain.FieldConstraint {
	t := c.tables
	b := bounds{min: t.Production.WidthMin, max: t.Production.WidthMax, reason: msgs.T("reason.dimension")}

	if p.TotalHeight != nil && !p.IsRadial() {
		b.raiseMin(t.MinFootprint(*p.TotalHeight), msgs.T("reason.stability"))
	}

	if limit, ok := c.spanLimitFor(p); ok && p.Length != nil && limit > *p.Length {
		if p.Shape == nil || *p.Shape != domain.ShapeRound {
			b.lowerMax(math.Sqrt(limit*limit-*p.Length**p.Length), msgs.T("reason.span"))
		}
	}

	return b.constraint(nil)
}

func (c *Calculator) legSize(p domain.PartialSpecification, msgs *i18n.Printer) domain.FieldConstraint {
	t := c.tables
	b := bounds{min: t.Production.LegSizeMin, max: t.Production.LegSizeMax, reason: msgs.T("reason.dimension")}

	// Radial bases skip the standard profile rules.
	if p.IsRadial() {
		b.raiseMin(t.Radial.MinSize, msgs.T("reason.profile_min"))
		return b.constraint(nil)
	}

	if p.LegMaterial != nil {
		if p.LegMaterial.IsMetal() && p.LegProfile != nil {
			if min, ok := t.MetalProfileMin(*p.LegMaterial, *p.LegProfile); ok {
				b.raiseMin(min, msgs.T("reason.profile_min"))
			}
		}
		if p.LegMaterial.IsWood() && p.LegHeight != nil {
			b.raiseMin(t.WoodProfileMin(*p.LegHeight), msgs.T("reason.profile_min"))
		}
		if p.LegHeight != nil {
			b.raiseMin(t.MinProfileForSlenderness(*p.LegMaterial, *p.LegHeight), msgs.T("reason.slenderness"))
		}
	}

	if isPedestal(p) && p.TotalHeight != nil {
		b.raiseMin(t.MinPedestalBase(*p.TotalHeight), msgs.T("reason.stability"))
	}

	return b.constraint(nil)
}

func (c *Calculator) legHeight(p domain.PartialSpecification, msgs *i18n.Printer) domain.FieldConstraint {
	t := c.tables
	b := bounds{min: t.Production.LegHeightMin, max: t.Production.LegHeightMax, reason: msgs.T("reason.dimension")}

	thickness := t.Production.ThicknessMin
	if p.Thickness != nil {
		thickness = *p.Thickness
		b.raiseMin(t.Height.Min-thickness, msgs.T("reason.height_range"))
	}
	b.lowerMax(t.Height.Max-thickness, msgs.T("reason.height_range"))

	if p.LegMaterial != nil && p.LegSize != nil {
		b.lowerMax(*p.LegSize*t.SlendernessLimit(*p.LegMaterial), msgs.T("reason.slenderness"))
	}

	footprint, ok := partialFootprint(p)
	if ok {
		b.lowerMax(t.MaxHeightForFootprint(footprint)-thickness, msgs.T("reason.stability"))
	}

	return b.constraint(nil)
}

func (c *Calculator) totalHeight(p domain.PartialSpecification, msgs *i18n.Printer) domain.FieldConstraint {
	t := c.tables
	b := bounds{min: t.Height.Min, max: t.Height.Max, reason: msgs.T("reason.height_range")}

	if footprint, ok := partialFootprint(p); ok {
		b.lowerMax(t.MaxHeightForFootprint(footprint), msgs.T("reason.stability"))
	}
	if p.IsRadial() && p.SpreadRadius != nil && t.Radial.MinSpreadRatio > 0 {
		b.lowerMax(*p.SpreadRadius/t.Radial.MinSpreadRatio, msgs.T("reason.radial_spread"))
	}

	rec := math.Min(math.Max(740, b.min), b.max)
	return b.constraint(&rec)
}

func (c *Calculator) spreadRadius(p domain.PartialSpecification, msgs *i18n.Printer) domain.FieldConstraint {
	t := c.tables
	b := bounds{min: t.Production.SpreadMin, max: t.Production.SpreadMax, reason: msgs.T("reason.dimension")}

	if p.TotalHeight != nil {
		b.raiseMin(t.MinSpreadRadius(*p.TotalHeight), msgs.T("reason.radial_spread"))
	}

	rec := b.min
	return b.constraint(&rec)
}

// partialFootprint derives the stability footprint when enough is known:
// the doubled spread radius for radial bases, otherwise the top width.
func partialFootprint(p domain.PartialSpecification) (float64, bool) {
	if p.IsRadial() {
		if p.SpreadRadius != nil {
			return 2 * *p.SpreadRadius, true
		}
		return 0, false
	}
	if p.Width != nil {
		return *p.Width, true
	}
	return 0, false
}
