package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func getPrice(t *testing.T, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/v1/price"+query, nil)
	rec := httptest.NewRecorder()
	testMux(t).ServeHTTP(rec, req)
	return rec
}

func TestPriceEndpointExactMatch(t *testing.T) {
	rec := getPrice(t, "?material=granite&thickness=20")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Material    string  `json:"material"`
		Thickness   float64 `json:"thickness"`
		PricePerSqm float64 `json:"pricePerSqm"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.PricePerSqm != 240 {
		t.Errorf("price = %g, want 240", resp.PricePerSqm)
	}
}

func TestPriceEndpointNextThickerSlab(t *testing.T) {
	rec := getPrice(t, "?material=granite&thickness=25")

	var resp struct {
		PricePerSqm float64 `json:"pricePerSqm"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.PricePerSqm != 310 {
		t.Errorf("price = %g, want the 30mm slab at 310", resp.PricePerSqm)
	}
}

func TestPriceEndpointUnlistedThickness(t *testing.T) {
	rec := getPrice(t, "?material=granite&thickness=45")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestPriceEndpointBadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "missing material", query: "?thickness=20"},
		{name: "unknown material", query: "?material=obsidian&thickness=20"},
		{name: "missing thickness", query: "?material=granite"},
		{name: "negative thickness", query: "?material=granite&thickness=-5"},
		{name: "non-numeric thickness", query: "?material=granite&thickness=thick"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := getPrice(t, tt.query)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}
