package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/slabforge/tablecheck/internal/constraint"
	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/i18n"
	"github.com/slabforge/tablecheck/internal/metrics"
)

// ConstraintsHandler serves the live field-bounding endpoint.
type ConstraintsHandler struct {
	calculator *constraint.Calculator
	logger     *slog.Logger
}

// NewConstraintsHandler creates a new ConstraintsHandler.
func NewConstraintsHandler(calculator *constraint.Calculator, logger *slog.Logger) *ConstraintsHandler {
	return &ConstraintsHandler{
		calculator: calculator,
		logger:     logger,
	}
}

// RegisterRoutes registers the constraint routes on the mux.
func (h *ConstraintsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/constraints", h.Constraints)
}

// Constraints decodes a partial specification and returns the per-field
// legal ranges. Missing fields are permissive by design; only out-of-domain
// enumeration values are rejected.
func (h *ConstraintsHandler) Constraints(w http.ResponseWriter, r *http.Request) {
	const op = "spec.constraints"

	var partial domain.PartialSpecification
	if err := decodeJSON(r, &partial); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "malformed request body: "+err.Error()))
		return
	}

	if err := checkPartialShape(op, &partial); err != nil {
		ValidationErrorResponse(w, r, h.logger, err)
		return
	}

	tag := i18n.Match(r.Header.Get("Accept-Language"))
	fc := h.calculator.FieldConstraintsIn(partial, tag)
	metrics.ConstraintQueriesTotal.Inc()

	writeJSON(w, http.StatusOK, fc)
}

// checkPartialShape rejects enumeration values outside the domain. Absent
// fields are fine; that is the whole point of the partial path.
func checkPartialShape(op string, p *domain.PartialSpecification) error {
	var err error

	add := func(field, message string) {
		if err == nil {
			err = domain.NewValidationError(op, field, message)
		} else {
			err = domain.AddFieldError(err, field, message)
		}
	}

	if p.Material != nil && !p.Material.IsValid() {
		add("material", fmt.Sprintf("unknown material %q", *p.Material))
	}
	if p.Construction != nil && !p.Construction.IsValid() {
		add("construction", fmt.Sprintf("unknown construction %q", *p.Construction))
	}
	if p.Shape != nil && !p.Shape.IsValid() {
		add("shape", fmt.Sprintf("unknown shape %q", *p.Shape))
	}
	if p.Edge != nil && !p.Edge.IsValid() {
		add("edge", fmt.Sprintf("unknown edge finish %q", *p.Edge))
	}
	if p.LegMaterial != nil && !p.LegMaterial.IsValid() {
		add("legMaterial", fmt.Sprintf("unknown leg material %q", *p.LegMaterial))
	}
	if p.LegProfile != nil && !p.LegProfile.IsValid() {
		add("legProfile", fmt.Sprintf("unknown leg profile %q", *p.LegProfile))
	}

	return err
}
