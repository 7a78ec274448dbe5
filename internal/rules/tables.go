// Package rules holds the threshold tables consulted by every checker and
// by the field-constraint calculator. The tables are loaded once at process
// start and treated as immutable; alternate tables can be injected in tests
// or loaded from a YAML override file.
package rules

import (
	"github.com/slabforge/tablecheck/internal/domain"
)

// MaterialLimits holds the per-material thickness thresholds for solid tops
// and the face-panel minimum for composite tops.
type MaterialLimits struct {
	// MinThickness is the absolute minimum total thickness.
	MinThickness float64 `yaml:"minThickness"`

	// SpanThreshold is the long-dimension length beyond which the raised
	// minimum applies.
	SpanThreshold float64 `yaml:"spanThreshold"`

	// MinThicknessAtSpan is the minimum total thickness once the top's long
	// dimension exceeds SpanThreshold.
	MinThicknessAtSpan float64 `yaml:"minThicknessAtSpan"`

	// MinFaceThickness is the minimum face-panel thickness for composite
	// construction.
	MinFaceThickness float64 `yaml:"minFaceThickness"`
}

// SpanTier is one row of the multi-leg span table: tops of the listed
// materials with at least MinThickness may span up to MaxSpan.
type SpanTier struct {
	MinThickness float64              `yaml:"minThickness"`
	MaxSpan      float64              `yaml:"maxSpan"`
	Materials    []domain.TopMaterial `yaml:"materials"`
}

// PedestalTier is one row of the pedestal span table, keyed by thickness.
type PedestalTier struct {
	MinThickness float64 `yaml:"minThickness"`
	MaxSpan      float64 `yaml:"maxSpan"`
}

// StabilityLimits holds the tipping-stability thresholds.
type StabilityLimits struct {
	// MinFootprintRatio is the minimum footprint / total height ratio.
	MinFootprintRatio float64 `yaml:"minFootprintRatio"`

	// PedestalBaseRatio is the minimum pedestal base diameter as a fraction
	// of total height.
	PedestalBaseRatio float64 `yaml:"pedestalBaseRatio"`

	// FootHeightThreshold is the leg height beyond which a slim leg needs a
	// stabilizing foot base.
	FootHeightThreshold float64 `yaml:"footHeightThreshold"`

	// FootMinProfileMetal and FootMinProfileWood are the profile sizes at or
	// above which no foot base is required.
	FootMinProfileMetal float64 `yaml:"footMinProfileMetal"`
	FootMinProfileWood  float64 `yaml:"footMinProfileWood"`
}

// LegLimits holds the standard (non-radial) leg thresholds.
type LegLimits struct {
	// MetalMin is the minimum profile size by metal material and profile type.
	MetalMin map[domain.LegMaterial]map[domain.LegProfile]float64 `yaml:"metalMin"`

	// Wood legs use two height tiers split at WoodTierHeight.
	WoodTierHeight float64 `yaml:"woodTierHeight"`
	WoodMinBelow   float64 `yaml:"woodMinBelow"`
	WoodMinAbove   float64 `yaml:"woodMinAbove"`

	// Slenderness (height / profile size) maxima per material class. Wood is
	// stricter than metal.
	MaxSlendernessMetal float64 `yaml:"maxSlendernessMetal"`
	MaxSlendernessWood  float64 `yaml:"maxSlendernessWood"`
}

// RadialLimits holds the independent rule set for radial half-cylinder bases.
type RadialLimits struct {
	// MinSpreadRatio is the minimum spread radius as a fraction of total height.
	MinSpreadRatio float64 `yaml:"minSpreadRatio"`

	// MinCount is the minimum number of half-cylinder segments.
	MinCount int `yaml:"minCount"`

	// MinSize is the minimum half-cylinder diameter.
	MinSize float64 `yaml:"minSize"`
}

// HeightLimits holds the absolute height bounds and the consistency tolerance.
type HeightLimits struct {
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
	Tolerance float64 `yaml:"tolerance"`
}

// CompositeLimits holds the sandwich-construction thresholds shared across
// materials.
type CompositeLimits struct {
	// MinCore is the minimum derived core thickness.
	MinCore float64 `yaml:"minCore"`
}

// ProductionLimits holds the producible outer ranges per numeric field.
// They are the permissive starting bounds the constraint calculator tightens
// with rule-derived thresholds.
type ProductionLimits struct {
	ThicknessMin float64 `yaml:"thicknessMin"`
	ThicknessMax float64 `yaml:"thicknessMax"`
	FaceMin      float64 `yaml:"faceMin"`
	FaceMax      float64 `yaml:"faceMax"`
	LengthMin    float64 `yaml:"lengthMin"`
	LengthMax    float64 `yaml:"lengthMax"`
	WidthMin     float64 `yaml:"widthMin"`
	WidthMax     float64 `yaml:"widthMax"`
	LegSizeMin   float64 `yaml:"legSizeMin"`
	LegSizeMax   float64 `yaml:"legSizeMax"`
	LegHeightMin float64 `yaml:"legHeightMin"`
	LegHeightMax float64 `yaml:"legHeightMax"`
	SpreadMin    float64 `yaml:"spreadMin"`
	SpreadMax    float64 `yaml:"spreadMax"`
}

// Tables is the complete immutable rule data set.
type Tables struct {
	Materials map[domain.TopMaterial]MaterialLimits `yaml:"materials"`

	// SpanTiers is the multi-leg span table. Tier selection picks the row
	// with the highest satisfied MinThickness among rows listing the top's
	// material.
	SpanTiers []SpanTier `yaml:"spanTiers"`

	// PedestalTiers is consulted for pedestal/single-leg tops, sorted by
	// MinThickness descending. PedestalFallbackSpan applies when no tier
	// matches the given thickness.
	PedestalTiers        []PedestalTier `yaml:"pedestalTiers"`
	PedestalFallbackSpan float64        `yaml:"pedestalFallbackSpan"`

	// CompositeSpanFactor is the span-limit multiplier for composite tops,
	// modeling the stiffness of the sandwich structure. Applied only on the
	// span comparison, never stored.
	CompositeSpanFactor float64 `yaml:"compositeSpanFactor"`

	Stability StabilityLimits `yaml:"stability"`
	Legs      LegLimits       `yaml:"legs"`
	Radial    RadialLimits    `yaml:"radial"`
	Height    HeightLimits    `yaml:"height"`

	// EdgeMinThickness applies to machined edge finishes; finishes without
	// an entry carry no thickness constraint.
	EdgeMinThickness map[domain.EdgeFinish]float64 `yaml:"edgeMinThickness"`

	Composite CompositeLimits `yaml:"composite"`

	Production ProductionLimits `yaml:"production"`
}

// Default returns the built-in rule tables.
func Default() *Tables {
	return &Tables{
		Materials: map[domain.TopMaterial]MaterialLimits{
			domain.MaterialGranite:  {MinThickness: 18, SpanThreshold: 1800, MinThicknessAtSpan: 30, MinFaceThickness: 12},
			domain.MaterialMarble:   {MinThickness: 18, SpanThreshold: 1500, MinThicknessAtSpan: 30, MinFaceThickness: 12},
			domain.MaterialQuartz:   {MinThickness: 12, SpanThreshold: 2000, MinThicknessAtSpan: 20, MinFaceThickness: 12},
			domain.MaterialSintered: {MinThickness: 9, SpanThreshold: 2400, MinThicknessAtSpan: 20, MinFaceThickness: 6},
		},
		SpanTiers: []SpanTier{
			{MinThickness: 30, MaxSpan: 3000, Materials: []domain.TopMaterial{
				domain.MaterialGranite, domain.MaterialMarble, domain.MaterialQuartz, domain.MaterialSintered,
			}},
			{MinThickness: 20, MaxSpan: 2400, Materials: []domain.TopMaterial{
				domain.MaterialQuartz, domain.MaterialSintered,
			}},
			{MinThickness: 20, MaxSpan: 2000, Materials: []domain.TopMaterial{
				domain.MaterialGranite, domain.MaterialMarble,
			}},
			{MinThickness: 18, MaxSpan: 1500, Materials: []domain.TopMaterial{
				domain.MaterialGranite, domain.MaterialMarble,
			}},
			{MinThickness: 12, MaxSpan: 1800, Materials: []domain.TopMaterial{
				domain.MaterialQuartz, domain.MaterialSintered,
			}},
			{MinThickness: 9, MaxSpan: 1200, Materials: []domain.TopMaterial{
				domain.MaterialSintered,
			}},
		},
		PedestalTiers: []PedestalTier{
			{MinThickness: 30, MaxSpan: 1400},
			{MinThickness: 20, MaxSpan: 1200},
			{MinThickness: 12, MaxSpan: 900},
		},
		PedestalFallbackSpan: 700,
		CompositeSpanFactor:  1.4,
		Stability: StabilityLimits{
			MinFootprintRatio:   0.5,
			PedestalBaseRatio:   0.1,
			FootHeightThreshold: 600,
			FootMinProfileMetal: 50,
			FootMinProfileWood:  70,
		},
		Legs: LegLimits{
			MetalMin: map[domain.LegMaterial]map[domain.LegProfile]float64{
				domain.LegSteel: {
					domain.ProfileRound:       30,
					domain.ProfileSquare:      25,
					domain.ProfileRectangular: 25,
					domain.ProfileTrestle:     40,
					domain.ProfilePedestal:    60,
				},
				domain.LegStainless: {
					domain.ProfileRound:       30,
					domain.ProfileSquare:      25,
					domain.ProfileRectangular: 25,
					domain.ProfileTrestle:     40,
					domain.ProfilePedestal:    60,
				},
				domain.LegAluminum: {
					domain.ProfileRound:       40,
					domain.ProfileSquare:      35,
					domain.ProfileRectangular: 35,
					domain.ProfileTrestle:     50,
					domain.ProfilePedestal:    80,
				},
			},
			WoodTierHeight:      600,
			WoodMinBelow:        45,
			WoodMinAbove:        60,
			MaxSlendernessMetal: 18,
			MaxSlendernessWood:  12,
		},
		Radial: RadialLimits{
			MinSpreadRatio: 0.4,
			MinCount:       3,
			MinSize:        80,
		},
		Height: HeightLimits{
			Min:       350,
			Max:       1100,
			Tolerance: 2,
		},
		EdgeMinThickness: map[domain.EdgeFinish]float64{
			domain.EdgeMitered: 20,
			domain.EdgeBeveled: 12,
		},
		Composite: CompositeLimits{
			MinCore: 10,
		},
		Production: ProductionLimits{
			ThicknessMin: 6,
			ThicknessMax: 60,
			FaceMin:      3,
			FaceMax:      20,
			LengthMin:    400,
			LengthMax:    3200,
			WidthMin:     300,
			WidthMax:     1600,
			LegSizeMin:   20,
			LegSizeMax:   150,
			LegHeightMin: 250,
			LegHeightMax: 1060,
			SpreadMin:    100,
			SpreadMax:    800,
		},
	}
}
