package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/juliocloud/s206-projeto-final/internal/gateway"
	"github.com/juliocloud/s206-projeto-final/internal/shared/infrastructure/config"
	"github.com/juliocloud/s206-projeto-final/internal/shared/infrastructure/database"
	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
	"github.com/juliocloud/s206-projeto-final/pkg/migration"
	"github.com/redis/go-redis/v9"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	logging.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("database connected")

	if cfg.Migrations.Auto {
		if err := migration.AutoMigrate(cfg.Database.URL(), cfg.Migrations.Path, nil); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = database.NewRedis(cfg.Redis)
		if err != nil {
			logging.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
		} else {
			defer redisClient.Close()
		}
	}

	app, err := newApp(context.Background(), cfg, db, redisClient)
	if err != nil {
		return err
	}

	server := gateway.NewServer(cfg.Server.Port, app.handler, cfg.Server.ShutdownTimeout)
	server.OnShutdown(app.events.Stop)
	return server.Start()
}
