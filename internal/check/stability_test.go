package check

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slabforge/tablecheck/internal/domain"
)

func TestStability(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Specification)
		want   []string
	}{
		{
			name:   "stable table passes",
			mutate: func(s *domain.Specification) {},
			want:   nil,
		},
		{
			name: "narrow and tall tips",
			mutate: func(s *domain.Specification) {
				s.Width = 340 // minimum is 0.5 * 720
			},
			want: []string{domain.RuleStabilityFootprint},
		},
		{
			name: "radial footprint is the doubled spread",
			mutate: func(s *domain.Specification) {
				s.LegProfile = domain.ProfileRadial
				s.SpreadRadius = 170 // footprint 340 < 360
				s.HalfCylinders = 4
				s.Width = 900
			},
			want: []string{domain.RuleStabilityFootprint},
		},
		{
			name: "small pedestal base",
			mutate: func(s *domain.Specification) {
				s.LegCount = 1
				s.LegProfile = domain.ProfilePedestal
				s.Shape = domain.ShapeRound
				s.Length = 900
				s.LegSize = 65 // minimum is 0.1 * 720
			},
			want: []string{domain.RuleStabilityBase},
		},
		{
			name: "base rule skips multi-leg tables",
			mutate: func(s *domain.Specification) {
				s.LegSize = 65
			},
			want: nil,
		},
		{
			name: "tall slim legs need a foot base",
			mutate: func(s *domain.Specification) {
				s.LegSize = 40 // under 50 for metal, height 700 over 600
			},
			want: []string{domain.RuleStabilityFoot},
		},
		{
			name: "foot base present satisfies the rule",
			mutate: func(s *domain.Specification) {
				s.LegSize = 40
				s.FootBase = true
			},
			want: nil,
		},
		{
			name: "short legs need no foot base",
			mutate: func(s *domain.Specification) {
				s.LegSize = 40
				s.LegHeight = 580
				s.TotalHeight = 600
			},
			want: nil,
		},
		{
			name: "wood uses its own foot profile threshold",
			mutate: func(s *domain.Specification) {
				s.LegMaterial = domain.LegOak
				s.LegProfile = domain.ProfileSquare
				s.LegSize = 60 // over 50 but under the 70 wood threshold
			},
			want: []string{domain.RuleStabilityFoot},
		},
		{
			name: "radial base skips the foot and base rules",
			mutate: func(s *domain.Specification) {
				s.LegProfile = domain.ProfileRadial
				s.SpreadRadius = 320
				s.HalfCylinders = 4
				s.LegSize = 10
				s.LegCount = 1
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := baseSpec()
			tt.mutate(&spec)

			var got []string
			for _, f := range run(t, Stability, spec) {
				got = append(got, f.Rule)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStabilityFields(t *testing.T) {
	spec := baseSpec()
	spec.Width = 300

	findings := run(t, Stability, spec)
	assert.Len(t, findings, 1)
	assert.Equal(t, domain.FieldLegHeight, findings[0].Field, "footprint failures report on the leg height")
}
