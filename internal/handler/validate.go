package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/i18n"
	"github.com/slabforge/tablecheck/internal/metrics"
	"github.com/slabforge/tablecheck/internal/validate"
)

// ValidateHandler serves the batch validation endpoint.
type ValidateHandler struct {
	engine *validate.Engine
	logger *slog.Logger
}

// NewValidateHandler creates a new ValidateHandler.
func NewValidateHandler(engine *validate.Engine, logger *slog.Logger) *ValidateHandler {
	return &ValidateHandler{
		engine: engine,
		logger: logger,
	}
}

// RegisterRoutes registers the validation routes on the mux.
func (h *ValidateHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/validate", h.Validate)
}

// Validate decodes a complete specification, fails fast on shape errors, and
// returns the validation result. User-facing messages follow Accept-Language.
func (h *ValidateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	const op = "spec.validate"

	var spec domain.Specification
	if err := decodeJSON(r, &spec); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "malformed request body: "+err.Error()))
		return
	}

	if err := checkShape(op, &spec); err != nil {
		ValidationErrorResponse(w, r, h.logger, err)
		return
	}

	tag := i18n.Match(r.Header.Get("Accept-Language"))
	result := h.engine.ValidateIn(spec, tag)

	outcome := "valid"
	if !result.Valid {
		outcome = "invalid"
		metrics.SuggestionsTotal.Inc()
	}
	metrics.ValidationsTotal.WithLabelValues(outcome).Inc()
	for _, v := range result.Violations {
		metrics.ViolationsTotal.WithLabelValues(v.Rule).Inc()
	}

	writeJSON(w, http.StatusOK, result)
}

// checkShape rejects specifications the engine cannot meaningfully process:
// out-of-domain enumerations, non-positive dimensions, and missing
// conditional fields. It accumulates every problem so the caller sees the
// full list at once.
func checkShape(op string, spec *domain.Specification) error {
	var err error

	add := func(field, message string) {
		if err == nil {
			err = domain.NewValidationError(op, field, message)
		} else {
			err = domain.AddFieldError(err, field, message)
		}
	}

	if !spec.Material.IsValid() {
		add("material", fmt.Sprintf("unknown material %q", spec.Material))
	}
	if !spec.Construction.IsValid() {
		add("construction", fmt.Sprintf("unknown construction %q", spec.Construction))
	}
	if !spec.Shape.IsValid() {
		add("shape", fmt.Sprintf("unknown shape %q", spec.Shape))
	}
	if !spec.Edge.IsValid() {
		add("edge", fmt.Sprintf("unknown edge finish %q", spec.Edge))
	}
	if !spec.LegMaterial.IsValid() {
		add("legMaterial", fmt.Sprintf("unknown leg material %q", spec.LegMaterial))
	}
	if !spec.LegProfile.IsValid() {
		add("legProfile", fmt.Sprintf("unknown leg profile %q", spec.LegProfile))
	}
	if spec.LegCount < 1 || spec.LegCount > 6 {
		add("legCount", "leg count must be between 1 and 6")
	}

	positive := []struct {
		field string
		value float64
	}{
		{"thickness", spec.Thickness},
		{"length", spec.Length},
		{"width", spec.Width},
		{"legSize", spec.LegSize},
		{"legHeight", spec.LegHeight},
		{"totalHeight", spec.TotalHeight},
	}
	for _, p := range positive {
		if p.value <= 0 {
			add(p.field, "must be positive")
		}
	}

	if spec.IsComposite() && spec.FaceThickness <= 0 {
		add("faceThickness", "required for composite construction")
	}
	if spec.IsRadial() {
		if spec.HalfCylinders < 1 {
			add("halfCylinders", "required for a radial base")
		}
		if spec.SpreadRadius <= 0 {
			add("spreadRadius", "required for a radial base")
		}
	}

	return err
}
