// Package http implements the HTTP transport layer of mercado-api.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authorization, logging, tracing, compression, CORS, and
// security-header concerns are all handled at this layer before requests are
// forwarded to the service layer.
package http

import (
	"net/http"

	"github.com/feira-digital/mercado-api/internal/logger"
	"github.com/feira-digital/mercado-api/models"
)

// apiKeyHeader is the request header carrying the shared secret.
const apiKeyHeader = "ApiKey"

// auth is an HTTP middleware that enforces the shared-secret authorization
// check every route requires.
//
// It compares the incoming "ApiKey" header against the key held in process
// configuration. A missing header or a mismatched value rejects the request
// with HTTP 401 and the fixed {status:"error", message:"Unauthorized."}
// body, and the handler chain is never invoked. This is a plain equality
// check against a low-value internal secret, not a credential verification:
// there is no per-caller identity behind it.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(apiKeyHeader)
		if key == "" || key != h.cfg.APIKey {
			logger.FromRequest(r).Warn().Msg("rejected request with missing or wrong ApiKey header")
			writeJSON(w, r, http.StatusUnauthorized, models.Error("Unauthorized."))
			return
		}

		next.ServeHTTP(w, r)
	})
}
