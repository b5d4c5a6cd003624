package gateway

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/juliocloud/s206-projeto-final/internal/gateway/middleware"
	analytics_http "github.com/juliocloud/s206-projeto-final/internal/modules/analytics/interfaces/http"
	auth_http "github.com/juliocloud/s206-projeto-final/internal/modules/auth/interfaces/http"
	catalog_http "github.com/juliocloud/s206-projeto-final/internal/modules/catalog/interfaces/http"
	label_http "github.com/juliocloud/s206-projeto-final/internal/modules/label/interfaces/http"
	notification_http "github.com/juliocloud/s206-projeto-final/internal/modules/notification/interfaces/http"
	"github.com/juliocloud/s206-projeto-final/internal/shared/apperror"
	"github.com/juliocloud/s206-projeto-final/internal/shared/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var errRouteNotFound = apperror.NotFound("not found")

// RouterConfig holds all the handlers and middleware needed for routing
type RouterConfig struct {
	AuthHandler    *auth_http.AuthHandler
	AuthMiddleware *middleware.AuthMiddleWare
	CatalogHandler *catalog_http.CatalogHandler
	LabelHandler   *label_http.LabelHandler
	EventHandler   *notification_http.EventHandler
	StatsHandler   *analytics_http.StatsHandler

	AllowedOrigins []string
	// AuthRateLimit caps /auth requests per client IP per minute.
	AuthRateLimit int
	HealthChecks  []HealthCheck

	// UploadsDir, when set, is served under UploadsPath.
	UploadsDir  string
	UploadsPath string
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMiddleware)
	r.Use(middleware.CORSMiddleware(config.AllowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteAppError(w, r, errRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", healthHandler(config.HealthChecks))
	r.Handle("/metrics", promhttp.Handler())

	requireAuth := config.AuthMiddleware.RequireAuth

	r.Route("/auth", func(r chi.Router) {
		r.Use(middleware.RateLimitByIP(config.AuthRateLimit, time.Minute))
		r.Post("/register", config.AuthHandler.Register)
		r.Post("/login", config.AuthHandler.Login)
		r.With(requireAuth).Get("/me", config.AuthHandler.Me)
	})

	catalog := config.CatalogHandler
	r.Route("/artists", func(r chi.Router) {
		r.Get("/", catalog.ListArtists)
		r.With(requireAuth).Post("/", catalog.CreateArtist)
		r.Get("/{id}", catalog.GetArtist)
		r.With(requireAuth).Delete("/{id}", catalog.DeleteArtist)
		r.Get("/{id}/albums", catalog.ListArtistAlbums)
	})
	r.Route("/albums", func(r chi.Router) {
		r.With(requireAuth).Post("/", catalog.CreateAlbum)
		r.Get("/{id}", catalog.GetAlbum)
		r.With(requireAuth).Post("/{id}/cover", catalog.UploadCover)
	})
	r.Route("/tracks", func(r chi.Router) {
		r.With(requireAuth).Post("/", catalog.CreateTrack)
		r.Get("/{id}", catalog.GetTrack)
	})

	labels := config.LabelHandler
	r.Route("/labels", func(r chi.Router) {
		r.Get("/", labels.List)
		r.Get("/{id}", labels.Get)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", labels.Create)
			r.Put("/{id}", labels.Update)
			r.Delete("/{id}", labels.Delete)
		})
	})

	r.Get("/stats", config.StatsHandler.Overview)
	r.Get("/events", config.EventHandler.List)
	r.Get("/ws/catalog", config.EventHandler.Subscribe)

	if config.UploadsDir != "" && config.UploadsPath != "" {
		fs := http.StripPrefix(config.UploadsPath, http.FileServer(http.Dir(config.UploadsDir)))
		r.Get(config.UploadsPath+"/*", fs.ServeHTTP)
	}

	return r
}
