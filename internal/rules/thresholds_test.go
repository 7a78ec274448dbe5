package rules

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slabforge/tablecheck/internal/domain"
)

func TestSpanLimit(t *testing.T) {
	tables := Default()

	tests := []struct {
		name      string
		material  domain.TopMaterial
		thickness float64
		composite bool
		want      float64
		found     bool
	}{
		{
			name:      "sintered at 20 picks the 20mm tier",
			material:  domain.MaterialSintered,
			thickness: 20,
			want:      2400,
			found:     true,
		},
		{
			name:      "sintered at 12 picks the 12mm tier",
			material:  domain.MaterialSintered,
			thickness: 12,
			want:      1800,
			found:     true,
		},
		{
			name:      "thickness between tiers keeps the lower tier",
			material:  domain.MaterialSintered,
			thickness: 15,
			want:      1800,
			found:     true,
		},
		{
			name:      "granite at 30 picks the top tier",
			material:  domain.MaterialGranite,
			thickness: 30,
			want:      3000,
			found:     true,
		},
		{
			name:      "granite at 18 picks its 18mm tier",
			material:  domain.MaterialGranite,
			thickness: 18,
			want:      1500,
			found:     true,
		},
		{
			name:      "composite multiplies the limit",
			material:  domain.MaterialQuartz,
			thickness: 20,
			composite: true,
			want:      2400 * 1.4,
			found:     true,
		},
		{
			name:      "below every tier has no defined limit",
			material:  domain.MaterialGranite,
			thickness: 10,
			found:     false,
		},
		{
			name:      "unknown material has no defined limit",
			material:  domain.TopMaterial("obsidian"),
			thickness: 30,
			found:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, ok := tables.SpanLimit(tt.material, tt.thickness, tt.composite)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.InDelta(t, tt.want, limit, 1e-9)
			}
		})
	}
}

func TestThicknessForSpan(t *testing.T) {
	tables := Default()

	tests := []struct {
		name      string
		material  domain.TopMaterial
		span      float64
		composite bool
		want      float64
		found     bool
	}{
		{
			name:     "small span takes the thinnest sintered tier",
			material: domain.MaterialSintered,
			span:     1000,
			want:     9,
			found:    true,
		},
		{
			name:     "span past the 12mm tier needs 20",
			material: domain.MaterialSintered,
			span:     1836,
			want:     20,
			found:    true,
		},
		{
			name:     "span past every tier cannot be carried",
			material: domain.MaterialGranite,
			span:     3500,
			found:    false,
		},
		{
			name:      "composite stretch keeps a thinner tier sufficient",
			material:  domain.MaterialQuartz,
			span:      2500, // 12mm tier carries 1800*1.4 = 2520
			composite: true,
			want:      12,
			found:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, ok := tables.ThicknessForSpan(tt.material, tt.span, tt.composite)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.InDelta(t, tt.want, min, 1e-9)
			}
		})
	}
}

func TestSpanRoundTrip(t *testing.T) {
	// The thickness suggested for a span must actually carry that span.
	tables := Default()

	for _, mat := range []domain.TopMaterial{
		domain.MaterialGranite, domain.MaterialMarble, domain.MaterialQuartz, domain.MaterialSintered,
	} {
		for _, span := range []float64{800, 1300, 1836, 2100, 2900} {
			min, ok := tables.ThicknessForSpan(mat, span, false)
			if !ok {
				continue
			}
			limit, ok := tables.SpanLimit(mat, min, false)
			assert.True(t, ok, "%s at %.0f", mat, span)
			assert.GreaterOrEqual(t, limit, span, "%s at %.0f", mat, span)
		}
	}
}

func TestPedestalSpanLimit(t *testing.T) {
	tables := Default()

	tests := []struct {
		thickness float64
		want      float64
	}{
		{thickness: 30, want: 1400},
		{thickness: 40, want: 1400},
		{thickness: 20, want: 1200},
		{thickness: 25, want: 1200},
		{thickness: 12, want: 900},
		{thickness: 10, want: 700}, // fallback below every tier
		{thickness: 6, want: 700},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, tables.PedestalSpanLimit(tt.thickness), 1e-9, "thickness %.0f", tt.thickness)
	}
}

func TestPedestalThicknessForSpan(t *testing.T) {
	tables := Default()

	min, ok := tables.PedestalThicknessForSpan(1000)
	assert.True(t, ok)
	assert.InDelta(t, 20.0, min, 1e-9)

	min, ok = tables.PedestalThicknessForSpan(1400)
	assert.True(t, ok)
	assert.InDelta(t, 30.0, min, 1e-9)

	_, ok = tables.PedestalThicknessForSpan(1500)
	assert.False(t, ok, "no pedestal tier carries 1500mm")
}

func TestStabilityBounds(t *testing.T) {
	tables := Default()

	assert.InDelta(t, 375.0, tables.MinFootprint(750), 1e-9)
	assert.InDelta(t, 1500.0, tables.MaxHeightForFootprint(750), 1e-9)
	assert.InDelta(t, 75.0, tables.MinPedestalBase(750), 1e-9)

	assert.InDelta(t, 50.0, tables.FootMinProfile(domain.LegSteel), 1e-9)
	assert.InDelta(t, 70.0, tables.FootMinProfile(domain.LegOak), 1e-9)
}

func TestLegBounds(t *testing.T) {
	tables := Default()

	min, ok := tables.MetalProfileMin(domain.LegSteel, domain.ProfileRound)
	assert.True(t, ok)
	assert.InDelta(t, 30.0, min, 1e-9)

	min, ok = tables.MetalProfileMin(domain.LegAluminum, domain.ProfilePedestal)
	assert.True(t, ok)
	assert.InDelta(t, 80.0, min, 1e-9)

	_, ok = tables.MetalProfileMin(domain.LegOak, domain.ProfileRound)
	assert.False(t, ok, "wood has no entry in the metal table")

	assert.InDelta(t, 45.0, tables.WoodProfileMin(600), 1e-9)
	assert.InDelta(t, 60.0, tables.WoodProfileMin(601), 1e-9)

	assert.InDelta(t, 18.0, tables.SlendernessLimit(domain.LegStainless), 1e-9)
	assert.InDelta(t, 12.0, tables.SlendernessLimit(domain.LegBeech), 1e-9)
	assert.InDelta(t, 720.0/18.0, tables.MinProfileForSlenderness(domain.LegSteel, 720), 1e-9)
}

func TestEdgeAndCompositeBounds(t *testing.T) {
	tables := Default()

	min, ok := tables.EdgeMin(domain.EdgeMitered)
	assert.True(t, ok)
	assert.InDelta(t, 20.0, min, 1e-9)

	min, ok = tables.EdgeMin(domain.EdgeBeveled)
	assert.True(t, ok)
	assert.InDelta(t, 12.0, min, 1e-9)

	_, ok = tables.EdgeMin(domain.EdgeStraight)
	assert.False(t, ok, "straight edges carry no thickness constraint")
	_, ok = tables.EdgeMin(domain.EdgeRounded)
	assert.False(t, ok, "rounded edges carry no thickness constraint")

	assert.InDelta(t, 34.0, tables.CompositeMinTotal(12), 1e-9)
	assert.InDelta(t, 300.0, tables.MinSpreadRadius(750), 1e-9)
}

func TestSpanMinThickness(t *testing.T) {
	tables := Default()

	min, ok := tables.SpanMinThickness(domain.MaterialMarble, 1501)
	assert.True(t, ok)
	assert.InDelta(t, 30.0, min, 1e-9)

	_, ok = tables.SpanMinThickness(domain.MaterialMarble, 1500)
	assert.False(t, ok, "threshold itself does not trigger the raised minimum")

	_, ok = tables.SpanMinThickness(domain.TopMaterial("obsidian"), 5000)
	assert.False(t, ok)
}

func TestMaxHeightForFootprintGuardsZeroRatio(t *testing.T) {
	tables := Default()
	tables.Stability.MinFootprintRatio = 0
	assert.True(t, math.IsInf(tables.MaxHeightForFootprint(500), 1))
}
