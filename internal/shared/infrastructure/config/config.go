package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/juliocloud/s206-projeto-final/internal/shared/infrastructure/database"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar names the optional YAML file layered between defaults and env.
const ConfigPathEnvVar = "CONFIG_PATH"

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig            `koanf:"server"`
	Database    database.PostgresConfig `koanf:"database"`
	Redis       database.RedisConfig    `koanf:"redis"`
	JWT         JWTConfig               `koanf:"jwt"`
	Auth        AuthConfig              `koanf:"auth"`
	Lyrics      LyricsConfig            `koanf:"lyrics"`
	FileStorage FileStorageConfig       `koanf:"storage"`
	Logging     LoggingConfig           `koanf:"logging"`
	Migrations  MigrationsConfig        `koanf:"migrations"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `koanf:"port"`
	AllowedOrigins  string        `koanf:"allowed_origins"`
	PublicURL       string        `koanf:"public_url"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Origins splits AllowedOrigins on commas.
func (s ServerConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(s.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string        `koanf:"secret"`
	Expiry time.Duration `koanf:"expiry"`
}

// AuthConfig holds login throttling settings.
type AuthConfig struct {
	MaxLoginAttempts int           `koanf:"max_login_attempts"`
	LoginWindow      time.Duration `koanf:"login_window"`
	RateLimit        int           `koanf:"rate_limit"`
}

// LyricsConfig holds settings for the external lyrics provider.
type LyricsConfig struct {
	Enabled         bool          `koanf:"enabled"`
	BaseURL         string        `koanf:"base_url"`
	Timeout         time.Duration `koanf:"timeout"`
	RatePerSecond   float64       `koanf:"rate"`
	Burst           int           `koanf:"burst"`
	BreakerFailures uint32        `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`
}

// FileStorageConfig holds file storage configuration
type FileStorageConfig struct {
	UseS3            bool   `koanf:"use_s3"`
	S3Region         string `koanf:"s3_region"`
	S3Endpoint       string `koanf:"s3_endpoint"`
	S3PublicEndpoint string `koanf:"s3_public_endpoint"`
	S3AccessKey      string `koanf:"s3_access_key"`
	S3SecretKey      string `koanf:"s3_secret_key"`
	S3BucketName     string `koanf:"s3_bucket"`
	S3UseSSL         bool   `koanf:"s3_use_ssl"`
	LocalPath        string `koanf:"local_path"`
	MaxCoverBytes    int64  `koanf:"max_cover_bytes"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// MigrationsConfig holds schema migration settings.
type MigrationsConfig struct {
	Path string `koanf:"path"`
	Auto bool   `koanf:"auto"`
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8080",
			AllowedOrigins:  "*",
			PublicURL:       "http://localhost:8080",
			ShutdownTimeout: 20 * time.Second,
		},
		Database: database.PostgresConfig{
			Host:            "localhost",
			Port:            "5432",
			User:            "postgres",
			DBName:          "catalog",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Redis: database.RedisConfig{
			Port: "6379",
		},
		JWT: JWTConfig{
			Expiry: time.Hour,
		},
		Auth: AuthConfig{
			MaxLoginAttempts: 5,
			LoginWindow:      15 * time.Minute,
			RateLimit:        30,
		},
		Lyrics: LyricsConfig{
			Enabled:         true,
			BaseURL:         "http://localhost:3000",
			Timeout:         2 * time.Second,
			RatePerSecond:   10,
			Burst:           20,
			BreakerFailures: 5,
			BreakerTimeout:  30 * time.Second,
		},
		FileStorage: FileStorageConfig{
			S3Region:      "us-east-1",
			S3UseSSL:      true,
			LocalPath:     "./uploads",
			MaxCoverBytes: 10 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Migrations: MigrationsConfig{
			Path: "db/migrations",
			Auto: true,
		},
	}
}

// envMappings maps environment variable names to koanf paths. Variables not
// listed here are ignored.
var envMappings = map[string]string{
	"PORT":             "server.port",
	"ALLOWED_ORIGINS":  "server.allowed_origins",
	"PUBLIC_URL":       "server.public_url",
	"SHUTDOWN_TIMEOUT": "server.shutdown_timeout",

	"DB_HOST":              "database.host",
	"DB_PORT":              "database.port",
	"DB_USER":              "database.user",
	"DB_PASSWORD":          "database.password",
	"DB_NAME":              "database.name",
	"DB_SSLMODE":           "database.sslmode",
	"DB_MAX_OPEN_CONNS":    "database.max_open_conns",
	"DB_MAX_IDLE_CONNS":    "database.max_idle_conns",
	"DB_CONN_MAX_LIFETIME": "database.conn_max_lifetime",

	"REDIS_HOST":     "redis.host",
	"REDIS_PORT":     "redis.port",
	"REDIS_PASSWORD": "redis.password",
	"REDIS_DB":       "redis.db",

	"JWT_SECRET":     "jwt.secret",
	"JWT_EXPIRATION": "jwt.expiry",

	"AUTH_MAX_LOGIN_ATTEMPTS": "auth.max_login_attempts",
	"AUTH_LOGIN_WINDOW":       "auth.login_window",
	"AUTH_RATE_LIMIT":         "auth.rate_limit",

	"LYRICS_ENABLED":          "lyrics.enabled",
	"LYRICS_BASE_URL":         "lyrics.base_url",
	"LYRICS_TIMEOUT":          "lyrics.timeout",
	"LYRICS_RATE":             "lyrics.rate",
	"LYRICS_BURST":            "lyrics.burst",
	"LYRICS_BREAKER_FAILURES": "lyrics.breaker_failures",
	"LYRICS_BREAKER_TIMEOUT":  "lyrics.breaker_timeout",

	"STORAGE_USE_S3":     "storage.use_s3",
	"S3_REGION":          "storage.s3_region",
	"S3_ENDPOINT":        "storage.s3_endpoint",
	"S3_PUBLIC_ENDPOINT": "storage.s3_public_endpoint",
	"S3_ACCESS_KEY":      "storage.s3_access_key",
	"S3_SECRET_KEY":      "storage.s3_secret_key",
	"S3_BUCKET":          "storage.s3_bucket",
	"S3_USE_SSL":         "storage.s3_use_ssl",
	"LOCAL_STORAGE_PATH": "storage.local_path",
	"COVER_MAX_BYTES":    "storage.max_cover_bytes",

	"LOG_LEVEL":  "logging.level",
	"LOG_FORMAT": "logging.format",

	"MIGRATIONS_PATH": "migrations.path",
	"AUTO_MIGRATE":    "migrations.auto",
}

// Load builds the configuration from defaults, the optional YAML file named by
// CONFIG_PATH, and environment variables, in increasing precedence.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func envKey(name string) string {
	return envMappings[name]
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret (JWT_SECRET) is required"))
	}
	if c.JWT.Expiry <= 0 {
		errs = append(errs, errors.New("jwt.expiry must be positive"))
	}
	if c.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if c.Lyrics.Enabled && c.Lyrics.Timeout <= 0 {
		errs = append(errs, errors.New("lyrics.timeout must be positive"))
	}
	if c.FileStorage.UseS3 && c.FileStorage.S3BucketName == "" {
		errs = append(errs, errors.New("storage.s3_bucket is required when S3 is enabled"))
	}
	return errors.Join(errs...)
}
