// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"lucky-draw"`
	Version     string `env:"VERSION" envDefault:"dev"`

	// HTTP
	APIKey          string        `env:"API_KEY"`
	TrustedProxies  []string      `env:"TRUSTED_PROXIES" envSeparator:","`
	MaxImportBytes  int64         `env:"MAX_IMPORT_BYTES" envDefault:"10485760"`
	RateLimit       int           `env:"RATE_LIMIT_REQUESTS" envDefault:"1000"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"5m"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	EnableSwagger   bool          `env:"ENABLE_SWAGGER" envDefault:"true"`

	// Storage
	DBDriver          string        `env:"DB_DRIVER" envDefault:"postgres"`
	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"luckydraw"`
	DBSSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxConnIdle     time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`
	SQLitePath        string        `env:"SQLITE_PATH" envDefault:"data/luckydraw.db"`

	// Draws
	DrawFetchTimeout   time.Duration `env:"DRAW_FETCH_TIMEOUT" envDefault:"5s"`
	DrawPersistTimeout time.Duration `env:"DRAW_PERSIST_TIMEOUT" envDefault:"10s"`

	// Category cache
	CategoryCacheSize int           `env:"CATEGORY_CACHE_SIZE" envDefault:"1000"`
	CategoryCacheTTL  time.Duration `env:"CATEGORY_CACHE_TTL" envDefault:"5m"`

	// Optional JSON schema that participant extra info must satisfy
	ExtraInfoSchema string `env:"EXTRA_INFO_SCHEMA"`
}

// Load reads .env when present, then the process environment, and validates
// the result. Real environment variables win over .env entries.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf(ErrFmtInvalidPort, c.Port))
	}
	switch c.DBDriver {
	case DriverPostgres:
		if c.DBMaxConns <= 0 {
			errs = append(errs, fmt.Errorf(ErrFmtNotPositive, "DB_MAX_CONNS"))
		}
	case DriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			errs = append(errs, errors.New(ErrMsgSQLitePathMissing))
		}
	default:
		errs = append(errs, fmt.Errorf(ErrFmtInvalidDriver, DriverPostgres, DriverSQLite, c.DBDriver))
	}
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		errs = append(errs, fmt.Errorf(ErrFmtInvalidLogFormat, LogFormatText, LogFormatJSON, c.LogFormat))
	}

	positive := []struct {
		name string
		ok   bool
	}{
		{"MAX_IMPORT_BYTES", c.MaxImportBytes > 0},
		{"DRAW_FETCH_TIMEOUT", c.DrawFetchTimeout > 0},
		{"DRAW_PERSIST_TIMEOUT", c.DrawPersistTimeout > 0},
		{"CATEGORY_CACHE_SIZE", c.CategoryCacheSize > 0},
		{"CATEGORY_CACHE_TTL", c.CategoryCacheTTL > 0},
		{"RATE_LIMIT_REQUESTS", c.RateLimit > 0},
		{"RATE_LIMIT_WINDOW", c.RateLimitWindow > 0},
	}
	for _, p := range positive {
		if !p.ok {
			errs = append(errs, fmt.Errorf(ErrFmtNotPositive, p.name))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	return nil
}

// Warnings lists settings that are valid but unsafe outside development
func (c *Config) Warnings() []string {
	var warnings []string
	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.APIKey == "" && c.IsProduction() {
		warnings = append(warnings, "API_KEY is empty - the API is unauthenticated")
	}
	return warnings
}

// IsProduction reports whether ENVIRONMENT names a production deployment
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Environment)
	return env == "prod" || env == "production"
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}
