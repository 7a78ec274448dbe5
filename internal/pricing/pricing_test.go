package pricing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slabforge/tablecheck/internal/domain"
)

const sampleCSV = `material,thickness_mm,price_per_sqm
granite,20,240
granite,30,310
marble,20,380
sintered,12,190
sintered,9,150
`

func load(t *testing.T) *PriceList {
	t.Helper()
	list, err := parse(strings.NewReader(sampleCSV), "pricing.test")
	require.NoError(t, err)
	return list
}

func TestPricePerArea(t *testing.T) {
	list := load(t)

	tests := []struct {
		name      string
		material  domain.TopMaterial
		thickness float64
		want      float64
		wantErr   bool
	}{
		{name: "exact match", material: domain.MaterialGranite, thickness: 20, want: 240},
		{name: "rounds up to the next thicker slab", material: domain.MaterialGranite, thickness: 22, want: 310},
		{name: "thinner than the thinnest row", material: domain.MaterialGranite, thickness: 12, want: 240},
		{name: "rows are sorted regardless of file order", material: domain.MaterialSintered, thickness: 10, want: 190},
		{name: "beyond the thickest row", material: domain.MaterialGranite, thickness: 40, wantErr: true},
		{name: "unlisted material", material: domain.MaterialQuartz, thickness: 20, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := list.PricePerArea(tt.material, tt.thickness)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, price, 1e-9)
		})
	}
}

func TestMaterials(t *testing.T) {
	list := load(t)
	assert.Equal(t, []domain.TopMaterial{
		domain.MaterialGranite, domain.MaterialMarble, domain.MaterialSintered,
	}, list.Materials())
}

func TestParseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{name: "empty file", csv: ""},
		{name: "unknown material", csv: "material,thickness_mm,price_per_sqm\nobsidian,20,100\n"},
		{name: "bad thickness", csv: "material,thickness_mm,price_per_sqm\ngranite,thick,100\n"},
		{name: "bad price", csv: "material,thickness_mm,price_per_sqm\ngranite,20,cheap\n"},
		{name: "wrong column count", csv: "material,thickness_mm,price_per_sqm\ngranite,20\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(strings.NewReader(tt.csv), "pricing.test")
			require.Error(t, err)
			assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
		})
	}
}
