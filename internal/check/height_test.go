package check

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slabforge/tablecheck/internal/domain"
)

func TestHeight(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Specification)
		want   []string
	}{
		{
			name:   "consistent height in range passes",
			mutate: func(s *domain.Specification) {},
			want:   nil,
		},
		{
			name: "below the minimum",
			mutate: func(s *domain.Specification) {
				s.LegHeight = 320
				s.TotalHeight = 340
			},
			want: []string{domain.RuleHeightRange},
		},
		{
			name: "above the maximum",
			mutate: func(s *domain.Specification) {
				s.LegHeight = 1090
				s.TotalHeight = 1110
			},
			want: []string{domain.RuleHeightRange},
		},
		{
			name: "inconsistent with leg height plus thickness",
			mutate: func(s *domain.Specification) {
				s.TotalHeight = 740 // legs 700 + top 20 = 720
			},
			want: []string{domain.RuleHeightConsistency},
		},
		{
			name: "within tolerance is consistent",
			mutate: func(s *domain.Specification) {
				s.TotalHeight = 722
			},
			want: nil,
		},
		{
			name: "just past tolerance is not",
			mutate: func(s *domain.Specification) {
				s.TotalHeight = 722.5
			},
			want: []string{domain.RuleHeightConsistency},
		},
		{
			name: "out of range and inconsistent reports both",
			mutate: func(s *domain.Specification) {
				s.TotalHeight = 1200
			},
			want: []string{domain.RuleHeightRange, domain.RuleHeightConsistency},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := baseSpec()
			tt.mutate(&spec)

			var got []string
			for _, f := range run(t, Height, spec) {
				got = append(got, f.Rule)
				assert.Equal(t, domain.FieldTotalHeight, f.Field)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
