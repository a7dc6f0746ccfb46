package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// DefaultJWTSecret is the fallback signing key used when JWT_SECRET is not
// set. Matching the upstream behavior it is deliberately kept rather than
// made fatal, but main logs a loud warning when it is in use.
const DefaultJWTSecret = "default_secret"

type Config struct {
	Env  string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`
	Port string `env:"PORT" envDefault:"8080" validate:"required"`

	DatabaseURL string `env:"DATABASE_URL,required" validate:"required"`

	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	JWTSecret     string `env:"JWT_SECRET" envDefault:"default_secret"`
	TokenTTLHours int    `env:"TOKEN_TTL_HOURS" envDefault:"24" validate:"min=1,max=168"`

	SweepSchedule string `env:"SESSION_SWEEP_SCHEDULE" envDefault:"@hourly"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// SecureCookie reports whether the token cookie should carry the Secure
// flag. Only local dev runs without TLS.
func (c *Config) SecureCookie() bool {
	return c.Env != "local"
}
