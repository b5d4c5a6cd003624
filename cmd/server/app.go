package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/juliocloud/s206-projeto-final/internal/gateway"
	"github.com/juliocloud/s206-projeto-final/internal/gateway/middleware"
	"github.com/juliocloud/s206-projeto-final/internal/modules/analytics"
	"github.com/juliocloud/s206-projeto-final/internal/modules/auth"
	"github.com/juliocloud/s206-projeto-final/internal/modules/auth/application"
	"github.com/juliocloud/s206-projeto-final/internal/modules/auth/infrastructure/throttle"
	"github.com/juliocloud/s206-projeto-final/internal/modules/catalog"
	"github.com/juliocloud/s206-projeto-final/internal/modules/filestorage"
	"github.com/juliocloud/s206-projeto-final/internal/modules/label"
	"github.com/juliocloud/s206-projeto-final/internal/modules/lyrics"
	lyricsapp "github.com/juliocloud/s206-projeto-final/internal/modules/lyrics/application"
	"github.com/juliocloud/s206-projeto-final/internal/modules/notification"
	"github.com/juliocloud/s206-projeto-final/internal/shared/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

type app struct {
	handler http.Handler
	events  *notification.Module
}

// newApp wires every module into one HTTP handler. redisClient may be nil.
func newApp(ctx context.Context, cfg config.Config, db *sqlx.DB, redisClient *redis.Client) (*app, error) {
	var loginThrottle application.LoginThrottle
	if redisClient != nil {
		loginThrottle = throttle.NewRedisThrottle(redisClient, cfg.Auth.MaxLoginAttempts, cfg.Auth.LoginWindow)
	}

	authModule, err := auth.NewModule(db, cfg.JWT.Secret, cfg.JWT.Expiry, loginThrottle)
	if err != nil {
		return nil, fmt.Errorf("auth module: %w", err)
	}

	events := notification.NewModule(db)

	storage, err := filestorage.NewModule(ctx, cfg.FileStorage, cfg.Server.PublicURL)
	if err != nil {
		events.Stop()
		return nil, err
	}

	lyricsModule := lyrics.NewModule(lyrics.Config{
		Enabled: cfg.Lyrics.Enabled,
		BaseURL: cfg.Lyrics.BaseURL,
		Config: lyricsapp.Config{
			Timeout:         cfg.Lyrics.Timeout,
			RatePerSecond:   cfg.Lyrics.RatePerSecond,
			Burst:           cfg.Lyrics.Burst,
			BreakerFailures: cfg.Lyrics.BreakerFailures,
			BreakerTimeout:  cfg.Lyrics.BreakerTimeout,
		},
	})

	catalogModule := catalog.NewModule(db, catalog.Dependencies{
		Lyrics:        lyricsModule.Provider(),
		Covers:        storage.Covers(),
		Publisher:     events.Publisher(),
		MaxCoverBytes: cfg.FileStorage.MaxCoverBytes,
	})
	labelModule := label.NewModule(db, events.Publisher())
	stats := analytics.NewModule(db)

	routes := gateway.RouterConfig{
		AuthHandler:    authModule.HTTPHandler(),
		AuthMiddleware: middleware.NewAuthMiddleware(cfg.JWT.Secret),
		CatalogHandler: catalogModule.HTTPHandler(),
		LabelHandler:   labelModule.HTTPHandler(),
		EventHandler:   events.HTTPHandler(),
		StatsHandler:   stats.HTTPHandler(),
		AllowedOrigins: cfg.Server.Origins(),
		AuthRateLimit:  cfg.Auth.RateLimit,
		HealthChecks:   healthChecks(db, redisClient),
	}
	if dir, ok := storage.LocalDir(); ok {
		routes.UploadsDir = dir
		routes.UploadsPath = filestorage.UploadsPath
	}

	return &app{handler: gateway.SetupRoutes(routes), events: events}, nil
}

func healthChecks(db *sqlx.DB, redisClient *redis.Client) []gateway.HealthCheck {
	checks := []gateway.HealthCheck{{
		Name:     "database",
		Critical: true,
		Check:    db.PingContext,
	}}
	if redisClient != nil {
		checks = append(checks, gateway.HealthCheck{
			Name: "redis",
			Check: func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			},
		})
	}
	return checks
}
