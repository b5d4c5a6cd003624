package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
	"github.com/juliocloud/s206-projeto-final/internal/shared/utils"
)

const healthTimeout = 2 * time.Second

// HealthCheck probes one dependency. Only critical failures turn the
// response into 503.
type HealthCheck struct {
	Name     string
	Check    func(ctx context.Context) error
	Critical bool
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func healthHandler(checks []HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		status := http.StatusOK

		for _, c := range checks {
			if err := c.Check(ctx); err != nil {
				logging.Ctx(r.Context()).Warn().Err(err).Str("check", c.Name).Msg("health check failed")
				resp.Checks[c.Name] = "down"
				if c.Critical {
					resp.Status = "unavailable"
					status = http.StatusServiceUnavailable
				}
				continue
			}
			resp.Checks[c.Name] = "ok"
		}

		utils.WriteJSON(w, status, resp)
	}
}
