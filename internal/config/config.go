// Package config loads server configuration: built-in defaults, then an
// optional YAML file, then CHARBUILDER_ environment overrides.
package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/redis"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "CHARBUILDER_"

// Storage drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the complete server configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" envPrefix:"SERVER_"`
	Redis     redis.Options   `yaml:"redis" envPrefix:"REDIS_"`
	Storage   StorageConfig   `yaml:"storage" envPrefix:"STORAGE_"`
	Reference ReferenceConfig `yaml:"reference" envPrefix:"REFERENCE_"`
	Drafts    DraftsConfig    `yaml:"drafts" envPrefix:"DRAFTS_"`
	Dice      DiceConfig      `yaml:"dice" envPrefix:"DICE_"`
	Tracing   TracingConfig   `yaml:"tracing" envPrefix:"TRACING_"`
}

// ServerConfig configures the gRPC listener and logging
type ServerConfig struct {
	Port            int           `yaml:"port" env:"PORT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
	LogLevel        string        `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat       string        `yaml:"log_format" env:"LOG_FORMAT"`
}

// StorageConfig selects the character store
type StorageConfig struct {
	Driver         string `yaml:"driver" env:"DRIVER"`
	PostgresDSN    string `yaml:"postgres_dsn" env:"POSTGRES_DSN"`
	SQLitePath     string `yaml:"sqlite_path" env:"SQLITE_PATH"`
	MigrateOnStart bool   `yaml:"migrate_on_start" env:"MIGRATE_ON_START"`
}

// ReferenceConfig configures the dnd5e-api client
type ReferenceConfig struct {
	BaseURL     string        `yaml:"base_url" env:"BASE_URL"`
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"HTTP_TIMEOUT"`
	CacheTTL    time.Duration `yaml:"cache_ttl" env:"CACHE_TTL"`
	// Offline serves only the built-in tables
	Offline bool `yaml:"offline" env:"OFFLINE"`
}

// DraftsConfig configures character drafts
type DraftsConfig struct {
	TTL time.Duration `yaml:"ttl" env:"TTL"`
}

// DiceConfig configures dice sessions
type DiceConfig struct {
	SessionTTL time.Duration `yaml:"session_ttl" env:"SESSION_TTL"`
}

// TracingConfig configures OpenTelemetry export
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled" env:"ENABLED"`
	Endpoint    string  `yaml:"endpoint" env:"ENDPOINT"`
	Insecure    bool    `yaml:"insecure" env:"INSECURE"`
	SampleRatio float64 `yaml:"sample_ratio" env:"SAMPLE_RATIO"`
	ServiceName string  `yaml:"service_name" env:"SERVICE_NAME"`
}

// Default returns a configuration suitable for local development
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            50051,
			ShutdownTimeout: 30 * time.Second,
			LogLevel:        "info",
			LogFormat:       "text",
		},
		Redis: redis.Options{
			Mode:      redis.ModeStandalone,
			Endpoints: []string{"localhost:6379"},
			PoolSize:  10,
		},
		Storage: StorageConfig{
			Driver:         DriverSQLite,
			SQLitePath:     "charbuilder.db",
			MigrateOnStart: true,
		},
		Reference: ReferenceConfig{
			BaseURL:     "https://www.dnd5eapi.co/api/2014/",
			HTTPTimeout: 10 * time.Second,
			CacheTTL:    24 * time.Hour,
		},
		Drafts: DraftsConfig{TTL: 24 * time.Hour},
		Dice:   DiceConfig{SessionTTL: 15 * time.Minute},
		Tracing: TracingConfig{
			Endpoint:    "localhost:4318",
			Insecure:    true,
			SampleRatio: 1,
			ServiceName: "rpg-charbuilder",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (a
// missing file or empty path is skipped) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config "+path)
			}
		case os.IsNotExist(err):
		default:
			return cfg, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	return cfg, nil
}

// Validate checks every section
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	if c.Server.ShutdownTimeout <= 0 {
		vb.Field("server.shutdown_timeout", "must be positive")
	}
	errors.ValidateEnum("server.log_level", c.Server.LogLevel, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("server.log_format", c.Server.LogFormat, []string{"text", "json"}, vb)

	errors.ValidateEnum("storage.driver", c.Storage.Driver, []string{DriverPostgres, DriverSQLite}, vb)
	switch c.Storage.Driver {
	case DriverPostgres:
		errors.ValidateRequired("storage.postgres_dsn", c.Storage.PostgresDSN, vb)
	case DriverSQLite:
		errors.ValidateRequired("storage.sqlite_path", c.Storage.SQLitePath, vb)
	}

	if !c.Reference.Offline {
		errors.ValidateRequired("reference.base_url", c.Reference.BaseURL, vb)
		if c.Reference.HTTPTimeout <= 0 {
			vb.Field("reference.http_timeout", "must be positive")
		}
	}
	if c.Reference.CacheTTL < 0 {
		vb.Field("reference.cache_ttl", "must not be negative")
	}

	if c.Drafts.TTL <= 0 {
		vb.Field("drafts.ttl", "must be positive")
	}
	if c.Dice.SessionTTL <= 0 {
		vb.Field("dice.session_ttl", "must be positive")
	}

	if c.Tracing.Enabled {
		errors.ValidateRequired("tracing.endpoint", c.Tracing.Endpoint, vb)
		if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
			vb.Field("tracing.sample_ratio", "must be between 0 and 1")
		}
	}

	if err := vb.Build(); err != nil {
		return err
	}

	return c.Redis.Validate()
}
