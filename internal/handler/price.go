package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/metrics"
	"github.com/slabforge/tablecheck/internal/pricing"
)

// PriceHandler serves material price lookups from the CSV price list.
type PriceHandler struct {
	prices *pricing.PriceList
	logger *slog.Logger
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(prices *pricing.PriceList, logger *slog.Logger) *PriceHandler {
	return &PriceHandler{
		prices: prices,
		logger: logger,
	}
}

// RegisterRoutes registers the price routes on the mux.
func (h *PriceHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/price", h.Price)
}

// Price looks up the price per square metre for ?material=&thickness=.
func (h *PriceHandler) Price(w http.ResponseWriter, r *http.Request) {
	const op = "pricing.lookup"

	mat := domain.TopMaterial(r.URL.Query().Get("material"))
	if !mat.IsValid() {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "unknown or missing material"))
		return
	}
	thickness, err := strconv.ParseFloat(r.URL.Query().Get("thickness"), 64)
	if err != nil || thickness <= 0 {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "thickness must be a positive number"))
		return
	}

	price, err := h.prices.PricePerArea(mat, thickness)
	if err != nil {
		metrics.PriceLookupsTotal.WithLabelValues("miss").Inc()
		ErrorResponse(w, r, h.logger, err)
		return
	}
	metrics.PriceLookupsTotal.WithLabelValues("hit").Inc()

	writeJSON(w, http.StatusOK, map[string]any{
		"material":    mat,
		"thickness":   thickness,
		"pricePerSqm": price,
	})
}
