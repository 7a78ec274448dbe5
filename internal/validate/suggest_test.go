package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/rules"
)

func violation(rule string) domain.Finding {
	return domain.Finding{Rule: rule}
}

func TestSuggestDoesNotMutateInput(t *testing.T) {
	spec := fourLegSintered()
	spec.Thickness = 12
	original := spec

	Suggest(spec, []domain.Finding{violation(domain.RuleMaterialMinThickness)}, rules.Default())

	assert.Equal(t, original, spec)
}

func TestSuggestRestoresHeightInvariant(t *testing.T) {
	// Whatever the fixes touched, the output satisfies
	// totalHeight = legHeight + thickness exactly.
	specs := []domain.Specification{}

	s := fourLegSintered()
	s.Thickness = 12
	s.Length = 1600
	specs = append(specs, s)

	s = fourLegSintered()
	s.TotalHeight = 990 // inconsistent only
	specs = append(specs, s)

	s = fourLegSintered()
	s.LegHeight = 1090
	s.TotalHeight = 1110 // over the maximum
	specs = append(specs, s)

	engine := testEngine()
	for i, spec := range specs {
		result := engine.Validate(spec)
		require.NotNil(t, result.Suggested, "case %d", i)
		assert.InDelta(t, result.Suggested.LegHeight+result.Suggested.Thickness,
			result.Suggested.TotalHeight, 1e-9, "case %d", i)
	}
}

func TestSuggestPerRuleFixes(t *testing.T) {
	tables := rules.Default()

	tests := []struct {
		name   string
		mutate func(*domain.Specification)
		rule   string
		check  func(*testing.T, domain.Specification)
	}{
		{
			name: "raises thickness to the material minimum",
			mutate: func(s *domain.Specification) {
				s.Material = domain.MaterialGranite
				s.Thickness = 12
			},
			rule: domain.RuleMaterialMinThickness,
			check: func(t *testing.T, s domain.Specification) {
				assert.InDelta(t, 18.0, s.Thickness, 1e-9)
			},
		},
		{
			name: "raises thickness to the span-triggered minimum",
			mutate: func(s *domain.Specification) {
				s.Material = domain.MaterialMarble
				s.Thickness = 20
				s.Length = 1600
			},
			rule: domain.RuleMaterialSpanThickness,
			check: func(t *testing.T, s domain.Specification) {
				assert.InDelta(t, 30.0, s.Thickness, 1e-9)
			},
		},
		{
			name: "raises thickness for a pedestal span",
			mutate: func(s *domain.Specification) {
				s.LegCount = 1
				s.LegProfile = domain.ProfilePedestal
				s.Shape = domain.ShapeRound
				s.Thickness = 12
				s.Length = 1000 // the 12mm tier carries 900, 20mm carries 1200
			},
			rule: domain.RuleSpanPedestal,
			check: func(t *testing.T, s domain.Specification) {
				assert.InDelta(t, 20.0, s.Thickness, 1e-9)
			},
		},
		{
			name: "lowers the legs when the footprint is too narrow",
			mutate: func(s *domain.Specification) {
				s.Width = 330 // carries at most 660 total
			},
			rule: domain.RuleStabilityFootprint,
			check: func(t *testing.T, s domain.Specification) {
				assert.InDelta(t, 640.0, s.LegHeight, 1e-9) // 660 - 20
				assert.InDelta(t, 660.0, s.TotalHeight, 1e-9)
			},
		},
		{
			name: "widens the pedestal base",
			mutate: func(s *domain.Specification) {
				s.LegCount = 1
				s.LegProfile = domain.ProfilePedestal
				s.Shape = domain.ShapeRound
				s.Length = 900
				s.LegSize = 65
			},
			rule: domain.RuleStabilityBase,
			check: func(t *testing.T, s domain.Specification) {
				assert.InDelta(t, 72.0, s.LegSize, 1e-9) // 0.1 * 720
			},
		},
		{
			name: "adds a foot base",
			mutate: func(s *domain.Specification) {
				s.LegSize = 45
			},
			rule: domain.RuleStabilityFoot,
			check: func(t *testing.T, s domain.Specification) {
				assert.True(t, s.FootBase)
			},
		},
		{
			name: "grows an undersized metal profile",
			mutate: func(s *domain.Specification) {
				s.LegMaterial = domain.LegAluminum
				s.LegSize = 35 // aluminum round needs 40
			},
			rule: domain.RuleLegMetalProfile,
			check: func(t *testing.T, s domain.Specification) {
				assert.InDelta(t, 40.0, s.LegSize, 1e-9)
			},
		},
		{
			name: "grows an undersized wood profile",
			mutate: func(s *domain.Specification) {
				s.LegMaterial = domain.LegOak
				s.LegProfile = domain.ProfileSquare
				s.LegSize = 50
			},
			rule: domain.RuleLegWoodProfile,
			check: func(t *testing.T, s domain.Specification) {
				assert.InDelta(t, 60.0, s.LegSize, 1e-9) // legs over 600mm
			},
		},
		{
			name: "grows the profile out of the slenderness limit",
			mutate: func(s *domain.Specification) {
				s.LegSize = 30
			},
			rule: domain.RuleLegSlenderness,
			check: func(t *testing.T, s domain.Specification) {
				assert.InDelta(t, 700.0/18.0, s.LegSize, 1e-9)
			},
		},
		{
			name: "rounds the top for a pedestal",
			mutate: func(s *domain.Specification) {
				s.LegCount = 1
				s.LegProfile = domain.ProfilePedestal
				s.Shape = domain.ShapeRectangle
				s.Length = 1000
				s.Width = 700
			},
			rule: domain.RuleLegPedestalShape,
			check: func(t *testing.T, s domain.Specification) {
				assert.Equal(t, domain.ShapeRound, s.Shape)
				assert.InDelta(t, s.Length, s.Width, 1e-9)
			},
		},
		{
			name: "raises the legs to the minimum table height",
			mutate: func(s *domain.Specification) {
				s.LegHeight = 320
				s.TotalHeight = 340
			},
			rule: domain.RuleHeightRange,
			check: func(t *testing.T, s domain.Specification) {
				assert.InDelta(t, 350.0, s.TotalHeight, 1e-9)
			},
		},
		{
			name: "lowers the legs to the maximum table height",
			mutate: func(s *domain.Specification) {
				s.LegHeight = 1100
				s.TotalHeight = 1120
			},
			rule: domain.RuleHeightRange,
			check: func(t *testing.T, s domain.Specification) {
				assert.InDelta(t, 1100.0, s.TotalHeight, 1e-9)
			},
		},
		{
			name: "recomputes an inconsistent total height",
			mutate: func(s *domain.Specification) {
				s.TotalHeight = 990
			},
			rule: domain.RuleHeightConsistency,
			check: func(t *testing.T, s domain.Specification) {
				assert.InDelta(t, 720.0, s.TotalHeight, 1e-9)
			},
		},
		{
			name: "thickens a solid top for its edge finish",
			mutate: func(s *domain.Specification) {
				s.Edge = domain.EdgeMitered
				s.Thickness = 15
			},
			rule: domain.RuleEdgeThickness,
			check: func(t *testing.T, s domain.Specification) {
				assert.InDelta(t, 20.0, s.Thickness, 1e-9)
			},
		},
		{
			name: "thickens composite faces for the edge finish",
			mutate: func(s *domain.Specification) {
				s.Construction = domain.ConstructionComposite
				s.Edge = domain.EdgeBeveled
				s.Thickness = 40
				s.FaceThickness = 8
			},
			rule: domain.RuleEdgeThickness,
			check: func(t *testing.T, s domain.Specification) {
				assert.InDelta(t, 12.0, s.FaceThickness, 1e-9)
			},
		},
		{
			name: "thickens the total for a thin core",
			mutate: func(s *domain.Specification) {
				s.Construction = domain.ConstructionComposite
				s.Material = domain.MaterialQuartz
				s.Thickness = 30
				s.FaceThickness = 12
			},
			rule: domain.RuleCompositeCore,
			check: func(t *testing.T, s domain.Specification) {
				assert.InDelta(t, 34.0, s.Thickness, 1e-9) // 2*12 + 10
			},
		},
		{
			name: "adds half-cylinder segments",
			mutate: func(s *domain.Specification) {
				s.LegProfile = domain.ProfileRadial
				s.HalfCylinders = 1
				s.SpreadRadius = 320
			},
			rule: domain.RuleRadialCount,
			check: func(t *testing.T, s domain.Specification) {
				assert.Equal(t, 3, s.HalfCylinders)
			},
		},
		{
			name: "grows half-cylinder segments",
			mutate: func(s *domain.Specification) {
				s.LegProfile = domain.ProfileRadial
				s.LegSize = 50
				s.HalfCylinders = 4
				s.SpreadRadius = 320
			},
			rule: domain.RuleRadialSize,
			check: func(t *testing.T, s domain.Specification) {
				assert.InDelta(t, 80.0, s.LegSize, 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := fourLegSintered()
			tt.mutate(&spec)

			fixed := Suggest(spec, []domain.Finding{violation(tt.rule)}, tables)

			tt.check(t, fixed)
			assert.InDelta(t, fixed.LegHeight+fixed.Thickness, fixed.TotalHeight, 1e-9)
		})
	}
}

func TestSuggestIsGreedyNotASolver(t *testing.T) {
	// The face fix on a thin-faced composite can push the derived core below
	// its minimum; the suggestion is one greedy pass and is not re-validated.
	spec := fourLegSintered()
	spec.Material = domain.MaterialQuartz
	spec.Construction = domain.ConstructionComposite
	spec.Thickness = 30
	spec.FaceThickness = 4
	spec.Length = 1400
	spec.Width = 800
	spec.TotalHeight = 730

	engine := testEngine()
	result := engine.Validate(spec)
	require.NotNil(t, result.Suggested)
	assert.InDelta(t, 12.0, result.Suggested.FaceThickness, 1e-9)

	// The repaired spec now has a 6mm core; a second validation round picks
	// that up as its own violation.
	second := engine.Validate(*result.Suggested)
	assert.Contains(t, rulesOf(second.Violations), domain.RuleCompositeCore)
}
