package check

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slabforge/tablecheck/internal/domain"
)

func compositeSpec() domain.Specification {
	s := baseSpec()
	s.Construction = domain.ConstructionComposite
	s.Material = domain.MaterialQuartz
	s.Thickness = 40
	s.FaceThickness = 12
	return s
}

func TestComposite(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Specification)
		want   []string
	}{
		{
			name:   "valid sandwich passes",
			mutate: func(s *domain.Specification) {},
			want:   nil,
		},
		{
			name: "face panel under the material minimum",
			mutate: func(s *domain.Specification) {
				s.FaceThickness = 4 // quartz needs 12
			},
			want: []string{domain.RuleCompositeFace},
		},
		{
			name: "sintered allows thinner faces",
			mutate: func(s *domain.Specification) {
				s.Material = domain.MaterialSintered
				s.FaceThickness = 6
			},
			want: nil,
		},
		{
			name: "thin core fires the core and total rules together",
			mutate: func(s *domain.Specification) {
				s.Thickness = 30 // core 30 - 24 = 6 < 10, total below 2*12+10
			},
			want: []string{domain.RuleCompositeCore, domain.RuleCompositeTotal},
		},
		{
			name:   "solid top is not checked",
			mutate: func(s *domain.Specification) { s.Construction = domain.ConstructionSolid },
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := compositeSpec()
			tt.mutate(&spec)

			var got []string
			for _, f := range run(t, Composite, spec) {
				got = append(got, f.Rule)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
