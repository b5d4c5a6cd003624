package middleware

import (
	"net/http"
	"time"

	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
	"github.com/rs/zerolog"
)

// AccessLog writes one line per request. Server errors log at error level,
// client errors at warn.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newStatusRecorder(w)

		next.ServeHTTP(rw, r)

		level := zerolog.InfoLevel
		switch {
		case rw.status >= 500:
			level = zerolog.ErrorLevel
		case rw.status >= 400:
			level = zerolog.WarnLevel
		}

		logging.Ctx(r.Context()).WithLevel(level).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("route", routePattern(r)).
			Int("status", rw.status).
			Dur("duration", time.Since(start)).
			Str("remote", r.RemoteAddr).
			Msg("request")
	})
}
