package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request trace identifier in both directions.
const traceIDHeader = "X-Trace-ID"

// withTraceID assigns every request a trace identifier and scopes the
// request logger to it.
//
// An identifier supplied by the caller in X-Trace-ID is reused so a trace can
// span services; otherwise a fresh uuid is generated. The id is echoed back
// on the response (error responses included, since the header is set before
// the chain runs) and stamped as the "trace_id" field of the child logger
// placed into the request context, where [logger.FromRequest] and
// [logger.FromContext] pick it up all the way down to the repositories.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		scoped := h.logger.GetChildLogger()
		scoped.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(scoped.WithContext(r.Context())))
	})
}
