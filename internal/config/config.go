package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultAddr            = ":8080"
	DefaultLogFormat       = "text"
	DefaultLogLevel        = "info"
	DefaultInstanceTTL     = 30 * time.Minute
	DefaultSweepInterval   = time.Minute
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMountRateLimit  = 5.0
)

// Config holds all configuration for the application.
type Config struct {
	Addr            string        `validate:"required"`
	LogFormat       string        `validate:"oneof=text json"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	InstanceTTL     time.Duration `validate:"gt=0"`
	SweepInterval   time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	// MountRateLimit caps full page loads per client IP per second.
	MountRateLimit float64 `validate:"gt=0"`
}

// Load reads an optional .env file and builds the configuration from
// environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog may not be configured yet; the default handler is fine here.
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds and validates a Config using the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Addr:      stringOr(getenv("APP_ADDR"), DefaultAddr),
		LogFormat: stringOr(getenv("LOG_FORMAT"), DefaultLogFormat),
		LogLevel:  stringOr(getenv("LOG_LEVEL"), DefaultLogLevel),
	}

	var err error
	if cfg.InstanceTTL, err = durationOr(getenv, "PAGE_INSTANCE_TTL", DefaultInstanceTTL); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = durationOr(getenv, "PAGE_SWEEP_INTERVAL", DefaultSweepInterval); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = durationOr(getenv, "SHUTDOWN_TIMEOUT", DefaultShutdownTimeout); err != nil {
		return nil, err
	}

	cfg.MountRateLimit = DefaultMountRateLimit
	if v := getenv("MOUNT_RATE_LIMIT"); v != "" {
		if cfg.MountRateLimit, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("failed to parse MOUNT_RATE_LIMIT: %w", err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func stringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func durationOr(getenv func(string) string, key string, fallback time.Duration) (time.Duration, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return d, nil
}
