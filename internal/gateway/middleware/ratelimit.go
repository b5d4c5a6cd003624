package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/juliocloud/s206-projeto-final/internal/shared/apperror"
	"github.com/juliocloud/s206-projeto-final/internal/shared/utils"
)

// ErrRateLimited is written when a client exceeds its request budget.
var ErrRateLimited = apperror.TooManyRequests("too many requests")

// RateLimitByIP allows requests per window for each client IP. A
// non-positive requests value disables limiting.
func RateLimitByIP(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.WriteAppError(w, r, ErrRateLimited)
		}),
	)
}
