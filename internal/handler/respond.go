// Package handler contains the HTTP layer: request decoding, shape
// validation, and JSON responses. The physical rules live below in the
// validation engine; this layer only rejects requests the engine cannot
// meaningfully process.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes a request body into v, rejecting unknown fields so a
// misspelled field fails loudly instead of validating a half-empty
// specification.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// logError logs a handler error with request context.
func logError(logger *slog.Logger, r *http.Request, err error, status int) {
	logger.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err,
	)
}
