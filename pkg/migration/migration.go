package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
	_ "github.com/lib/pq"
)

// Config holds migration configuration
type Config struct {
	MigrationsPath string
	DatabaseURL    string
	Logger         *slog.Logger
}

// Runner applies the SQL files under MigrationsPath to the catalog database.
type Runner struct {
	config *Config
	logger *slog.Logger
}

// NewRunner creates a new migration runner. A nil Logger logs through the
// shared zerolog logger.
func NewRunner(config *Config) *Runner {
	logger := config.Logger
	if logger == nil {
		logger = logging.NewSlog()
	}

	return &Runner{
		config: config,
		logger: logger.With("component", "migration"),
	}
}

// Up runs all pending migrations
func (r *Runner) Up() error {
	r.logger.Info("applying pending migrations", "path", r.config.MigrationsPath)

	m, err := r.open()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("schema already up to date")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	r.logger.Info("migrations applied")
	return nil
}

// Down rolls back the last migration
func (r *Runner) Down() error {
	r.logger.Info("rolling back last migration")

	m, err := r.open()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-1); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("nothing to roll back")
			return nil
		}
		return fmt.Errorf("failed to rollback migration: %w", err)
	}

	r.logger.Info("migration rolled back")
	return nil
}

// Force sets the migration version without running migrations.
// Only for repairing a dirty state.
func (r *Runner) Force(version int) error {
	r.logger.Warn("forcing migration version", "version", version)

	m, err := r.open()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Force(version); err != nil {
		return fmt.Errorf("failed to force version: %w", err)
	}
	return nil
}

// Version returns the current migration version and dirty flag. A database
// with no migrations applied reports version 0.
func (r *Runner) Version() (uint, bool, error) {
	m, err := r.open()
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get version: %w", err)
	}

	return version, dirty, nil
}

func (r *Runner) open() (*migrate.Migrate, error) {
	db, err := sql.Open("postgres", r.config.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize migrate: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize migrate: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+r.config.MigrationsPath, "postgres", driver)
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("failed to initialize migrate: %w", err)
	}

	return m, nil
}

// AutoMigrate brings the schema up to date at startup. It refuses to run on a
// dirty database.
func AutoMigrate(dbURL, migrationsPath string, logger *slog.Logger) error {
	runner := NewRunner(&Config{
		MigrationsPath: migrationsPath,
		DatabaseURL:    dbURL,
		Logger:         logger,
	})

	version, dirty, err := runner.Version()
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("database in dirty state at version %d, run catalogctl migrate force", version)
	}

	if err := runner.Up(); err != nil {
		return err
	}

	newVersion, _, err := runner.Version()
	if err != nil {
		return err
	}

	runner.logger.Info("schema ready", "from_version", version, "to_version", newVersion)
	return nil
}
