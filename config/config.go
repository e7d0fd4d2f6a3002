package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Storage  StorageConfig
	Postgres PostgresConfig

	// Edge
	CORS      CORSConfig
	RateLimit RateLimitConfig

	// Observability
	Metrics MetricsConfig
	Sentry  SentryConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StorageConfig struct {
	Driver string
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type MetricsConfig struct {
	Enabled bool
}

type SentryConfig struct {
	DSN         string
	Environment string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/.
// A non-empty path overrides the search.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.RequestTimeout = v.GetDuration("http_server.request_timeout")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	cfg.Postgres.DSN = v.GetString("postgres.dsn")
	if dsn := v.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = v.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = v.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = v.GetDuration("postgres.conn_max_lifetime")
	cfg.Postgres.AutoMigrate = v.GetBool("postgres.auto_migrate")

	// Edge
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Observability
	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")
	cfg.Sentry.DSN = v.GetString("sentry.dsn")
	cfg.Sentry.Environment = v.GetString("sentry.environment")
	if cfg.Sentry.Environment == "" {
		cfg.Sentry.Environment = cfg.Environment.Name
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}

	switch cfg.Storage.Driver {
	case StorageDriverPostgres:
		if cfg.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn is required when storage.driver is %q", StorageDriverPostgres)
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}

	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.request_timeout", "10s")
	v.SetDefault("http_server.shutdown_timeout", "15s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("storage.driver", StorageDriverPostgres)
	v.SetDefault("postgres.max_open_conns", 10)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.conn_max_lifetime", "30m")
	v.SetDefault("postgres.auto_migrate", true)
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 600)
	v.SetDefault("metrics.enabled", true)
}

// splitList splits a comma-separated value since viper might not parse arrays from env.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
