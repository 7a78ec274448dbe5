// Package domain contains core business types and interfaces.
//
// This file defines the Specification domain type describing a configured
// stone-top table: the top slab, its legs, and the overall height. All
// dimensions are millimetres.
package domain

import "math"

// =============================================================================
// Top Material
// =============================================================================

// TopMaterial identifies the slab material of the table top.
type TopMaterial string

const (
	// MaterialGranite is natural granite.
	MaterialGranite TopMaterial = "granite"

	// MaterialMarble is natural marble.
	MaterialMarble TopMaterial = "marble"

	// MaterialQuartz is engineered quartz composite.
	MaterialQuartz TopMaterial = "quartz"

	// MaterialSintered is sintered stone (ceramic slab).
	MaterialSintered TopMaterial = "sintered"
)

// String returns the string representation of the material.
func (m TopMaterial) String() string {
	return string(m)
}

// IsValid returns true if the material is a recognized value.
func (m TopMaterial) IsValid() bool {
	switch m {
	case MaterialGranite, MaterialMarble, MaterialQuartz, MaterialSintered:
		return true
	}
	return false
}

// =============================================================================
// Construction
// =============================================================================

// Construction distinguishes a solid slab top from a composite (sandwich) top.
type Construction string

const (
	// ConstructionSolid is a single full-thickness slab.
	ConstructionSolid Construction = "solid"

	// ConstructionComposite is two thin face panels around a core.
	ConstructionComposite Construction = "composite"
)

// String returns the string representation of the construction mode.
func (c Construction) String() string {
	return string(c)
}

// IsValid returns true if the construction mode is a recognized value.
func (c Construction) IsValid() bool {
	switch c {
	case ConstructionSolid, ConstructionComposite:
		return true
	}
	return false
}

// =============================================================================
// Top Shape
// =============================================================================

// TopShape identifies the outline of the table top.
type TopShape string

const (
	ShapeRectangle TopShape = "rectangle"
	ShapeSquare    TopShape = "square"
	ShapeOval      TopShape = "oval"
	ShapeRound     TopShape = "round"
	ShapeCustom    TopShape = "custom"
)

// String returns the string representation of the shape.
func (s TopShape) String() string {
	return string(s)
}

// IsValid returns true if the shape is a recognized value.
func (s TopShape) IsValid() bool {
	switch s {
	case ShapeRectangle, ShapeSquare, ShapeOval, ShapeRound, ShapeCustom:
		return true
	}
	return false
}

// =============================================================================
// Edge Finish
// =============================================================================

// EdgeFinish identifies the machined profile of the top's edge.
type EdgeFinish string

const (
	EdgeStraight EdgeFinish = "straight"
	EdgeBeveled  EdgeFinish = "beveled"
	EdgeRounded  EdgeFinish = "rounded"
	EdgeMitered  EdgeFinish = "mitered"
)

// String returns the string representation of the edge finish.
func (e EdgeFinish) String() string {
	return string(e)
}

// IsValid returns true if the edge finish is a recognized value.
func (e EdgeFinish) IsValid() bool {
	switch e {
	case EdgeStraight, EdgeBeveled, EdgeRounded, EdgeMitered:
		return true
	}
	return false
}

// =============================================================================
// Leg Material
// =============================================================================

// LegMaterial identifies the material of the legs.
type LegMaterial string

const (
	LegSteel     LegMaterial = "steel"
	LegStainless LegMaterial = "stainless"
	LegAluminum  LegMaterial = "aluminum"
	LegOak       LegMaterial = "oak"
	LegBeech     LegMaterial = "beech"
)

// String returns the string representation of the leg material.
func (m LegMaterial) String() string {
	return string(m)
}

// IsValid returns true if the leg material is a recognized value.
func (m LegMaterial) IsValid() bool {
	switch m {
	case LegSteel, LegStainless, LegAluminum, LegOak, LegBeech:
		return true
	}
	return false
}

// IsMetal returns true for the metal leg materials.
func (m LegMaterial) IsMetal() bool {
	switch m {
	case LegSteel, LegStainless, LegAluminum:
		return true
	}
	return false
}

// IsWood returns true for the wood leg materials.
func (m LegMaterial) IsWood() bool {
	switch m {
	case LegOak, LegBeech:
		return true
	}
	return false
}

// =============================================================================
// Leg Profile
// =============================================================================

// LegProfile identifies the cross-section or construction type of the legs.
type LegProfile string

const (
	ProfileRound       LegProfile = "round"
	ProfileSquare      LegProfile = "square"
	ProfileRectangular LegProfile = "rectangular"
	ProfileTrestle     LegProfile = "trestle"
	ProfilePedestal    LegProfile = "pedestal"

	// ProfileRadial is a pedestal-like base of curved half-cylinder
	// segments arranged around a center. It carries its own rule set.
	ProfileRadial LegProfile = "radial-halfcylinder"
)

// String returns the string representation of the leg profile.
func (p LegProfile) String() string {
	return string(p)
}

// IsValid returns true if the leg profile is a recognized value.
func (p LegProfile) IsValid() bool {
	switch p {
	case ProfileRound, ProfileSquare, ProfileRectangular,
		ProfileTrestle, ProfilePedestal, ProfileRadial:
		return true
	}
	return false
}

// =============================================================================
// Specification
// =============================================================================

// Specification is the full set of user-chosen table parameters submitted
// for validation. It is immutable input to the checkers; the suggestion
// engine works on its own copy.
type Specification struct {
	// Top
	Material      TopMaterial  `json:"material"`
	Construction  Construction `json:"construction"`
	Thickness     float64      `json:"thickness"`               // total top thickness
	FaceThickness float64      `json:"faceThickness,omitempty"` // composite only
	Shape         TopShape     `json:"shape"`
	Length        float64      `json:"length"` // diameter for round tops
	Width         float64      `json:"width"`
	Edge          EdgeFinish   `json:"edge"`

	// Legs
	LegCount      int         `json:"legCount"` // 1-6
	LegMaterial   LegMaterial `json:"legMaterial"`
	LegProfile    LegProfile  `json:"legProfile"`
	LegSize       float64     `json:"legSize"`                // profile size (diameter / side / base diameter)
	LegWidth      float64     `json:"legWidth,omitempty"`     // rectangular profile only
	LegHeight     float64     `json:"legHeight"`
	FootBase      bool        `json:"footBase"`               // stabilizing foot base present
	HalfCylinders int         `json:"halfCylinders,omitempty"` // radial base only
	SpreadRadius  float64     `json:"spreadRadius,omitempty"`  // radial base only

	// Whole table
	TotalHeight float64 `json:"totalHeight"`
}

// IsComposite returns true for composite (sandwich) tops.
func (s *Specification) IsComposite() bool {
	return s.Construction == ConstructionComposite
}

// CoreThickness returns the derived core thickness of a composite top.
// For solid tops it returns the full thickness.
func (s *Specification) CoreThickness() float64 {
	if !s.IsComposite() {
		return s.Thickness
	}
	return s.Thickness - 2*s.FaceThickness
}

// IsPedestal returns true for single-column support: either an explicit
// pedestal profile or a single leg of any profile.
func (s *Specification) IsPedestal() bool {
	return s.LegProfile == ProfilePedestal || s.LegCount == 1
}

// IsRadial returns true for the radial half-cylinder base.
func (s *Specification) IsRadial() bool {
	return s.LegProfile == ProfileRadial
}

// EffectiveSpan returns the worst-case unsupported distance of the top:
// the diameter for round tops, otherwise the diagonal of length and width.
func (s *Specification) EffectiveSpan() float64 {
	if s.Shape == ShapeRound {
		return s.Length
	}
	return math.Hypot(s.Length, s.Width)
}

// LongDimension returns the larger of length and width.
func (s *Specification) LongDimension() float64 {
	return math.Max(s.Length, s.Width)
}

// Footprint returns the dimension used for tipping-stability checks: the
// doubled spread radius for radial bases, otherwise the top width (the
// conservative, narrower dimension).
func (s *Specification) Footprint() float64 {
	if s.IsRadial() {
		return 2 * s.SpreadRadius
	}
	return s.Width
}

// =============================================================================
// Partial Specification
// =============================================================================

// PartialSpecification is an in-progress specification: any subset of the
// fields may be populated. It feeds the field-constraint calculator, which
// treats every nil field permissively.
type PartialSpecification struct {
	Material      *TopMaterial  `json:"material,omitempty"`
	Construction  *Construction `json:"construction,omitempty"`
	Thickness     *float64      `json:"thickness,omitempty"`
	FaceThickness *float64      `json:"faceThickness,omitempty"`
	Shape         *TopShape     `json:"shape,omitempty"`
	Length        *float64      `json:"length,omitempty"`
	Width         *float64      `json:"width,omitempty"`
	Edge          *EdgeFinish   `json:"edge,omitempty"`

	LegCount      *int         `json:"legCount,omitempty"`
	LegMaterial   *LegMaterial `json:"legMaterial,omitempty"`
	LegProfile    *LegProfile  `json:"legProfile,omitempty"`
	LegSize       *float64     `json:"legSize,omitempty"`
	LegHeight     *float64     `json:"legHeight,omitempty"`
	FootBase      *bool        `json:"footBase,omitempty"`
	HalfCylinders *int         `json:"halfCylinders,omitempty"`
	SpreadRadius  *float64     `json:"spreadRadius,omitempty"`

	TotalHeight *float64 `json:"totalHeight,omitempty"`
}

// IsRadial returns true when the chosen leg profile is the radial base.
func (p *PartialSpecification) IsRadial() bool {
	return p.LegProfile != nil && *p.LegProfile == ProfileRadial
}

// IsComposite returns true when the chosen construction is composite.
func (p *PartialSpecification) IsComposite() bool {
	return p.Construction != nil && *p.Construction == ConstructionComposite
}
