package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates the caller's X-Request-ID or assigns a new UUID, and
// attaches a logger tagged with it to the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := logging.ContextWithRequestID(r.Context(), id)
		ctx = logging.ContextWithLogger(ctx, logging.Logger().With().Str("request_id", id).Logger())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
