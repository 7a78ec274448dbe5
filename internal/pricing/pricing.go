// Package pricing provides the material price list, loaded once from a CSV
// file at startup. The validation core has no dependency on it; it only
// serves the price endpoint and the CLI lookup.
package pricing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/slabforge/tablecheck/internal/domain"
)

// priceRow is one thickness/price entry for a material.
type priceRow struct {
	thickness float64
	price     float64 // per square metre
}

// PriceList is an immutable material price lookup.
type PriceList struct {
	rows map[domain.TopMaterial][]priceRow // sorted by thickness ascending
}

// LoadCSV reads a price list from a CSV file with the header
// material,thickness_mm,price_per_sqm.
func LoadCSV(path string) (*PriceList, error) {
	const op = "pricing.load"

	f, err := os.Open(path)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to open price file")
	}
	defer f.Close()

	return parse(f, op)
}

// ParseCSV reads a price list from an already open reader. Same format as
// LoadCSV.
func ParseCSV(r io.Reader) (*PriceList, error) {
	return parse(r, "pricing.parse")
}

func parse(r io.Reader, op string) (*PriceList, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, domain.Invalid(op, "malformed price CSV: "+err.Error())
	}
	if len(records) == 0 {
		return nil, domain.Invalid(op, "price CSV is empty")
	}

	list := &PriceList{rows: make(map[domain.TopMaterial][]priceRow)}
	for i, rec := range records {
		if i == 0 {
			// header row
			continue
		}
		if len(rec) != 3 {
			return nil, domain.Invalid(op, fmt.Sprintf("line %d: expected 3 columns, got %d", i+1, len(rec)))
		}
		mat := domain.TopMaterial(rec[0])
		if !mat.IsValid() {
			return nil, domain.Invalid(op, fmt.Sprintf("line %d: unknown material %q", i+1, rec[0]))
		}
		thickness, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, domain.Invalid(op, fmt.Sprintf("line %d: bad thickness %q", i+1, rec[1]))
		}
		price, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, domain.Invalid(op, fmt.Sprintf("line %d: bad price %q", i+1, rec[2]))
		}
		list.rows[mat] = append(list.rows[mat], priceRow{thickness: thickness, price: price})
	}

	for mat := range list.rows {
		rows := list.rows[mat]
		sort.Slice(rows, func(a, b int) bool { return rows[a].thickness < rows[b].thickness })
	}
	return list, nil
}

// PricePerArea returns the price per square metre for the material at the
// given thickness. An exact thickness match wins; otherwise the next thicker
// listed slab is quoted. Materials or thicknesses beyond the list return a
// not-found error.
func (p *PriceList) PricePerArea(mat domain.TopMaterial, thickness float64) (float64, error) {
	const op = "pricing.lookup"

	rows, ok := p.rows[mat]
	if !ok {
		return 0, domain.NotFound(op, "price for material", mat.String())
	}
	for _, row := range rows {
		if row.thickness >= thickness {
			return row.price, nil
		}
	}
	return 0, domain.NotFound(op, "price at thickness", fmt.Sprintf("%s/%g mm", mat, thickness))
}

// Materials returns the materials present in the list, sorted.
func (p *PriceList) Materials() []domain.TopMaterial {
	mats := make([]domain.TopMaterial, 0, len(p.rows))
	for mat := range p.rows {
		mats = append(mats, mat)
	}
	sort.Slice(mats, func(a, b int) bool { return mats[a] < mats[b] })
	return mats
}
