package http

import (
	"encoding/json"
	"net/http"

	"github.com/feira-digital/mercado-api/internal/logger"
	"github.com/feira-digital/mercado-api/models"
)

// writeJSON serializes v as the response body with the given status code.
// Encoding happens after the header is written, so a marshalling failure can
// only be logged, not reported to the client.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding response body")
	}
}

// respondError converts err into the {status:"error", message} body with the
// status code chosen by the error mapper. Internal faults get a generic
// message; the details stay in the log.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = "internal server error"
	}

	writeJSON(w, r, status, models.Error(message))
}
