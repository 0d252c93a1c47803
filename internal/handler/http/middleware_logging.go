package http

import (
	"net/http"
	"time"

	"github.com/feira-digital/mercado-api/internal/logger"
)

// withLogging emits one structured access-log entry per request: method,
// URI, remote address, response status, body size, and wall-clock duration.
// The trace id arrives for free through the context-scoped logger installed
// by withTraceID.
//
// The response passes through the responseWriter recorder, so the entry
// reflects the status and size that were actually sent.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()

		recorder := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(recorder, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote", r.RemoteAddr).
			Int("status", recorder.status).
			Int("size", recorder.size).
			Dur("duration", time.Since(started)).
			Msg("request handled")
	})
}
