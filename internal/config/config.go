package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/eshaffer321/monarch-mcp/pkg/monarch"
	"github.com/getsentry/sentry-go"
)

type Config struct {
	Monarch MonarchConfig
	Log     LogConfig
	Sentry  SentryConfig
}

type MonarchConfig struct {
	Token      string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

type LogConfig struct {
	Level  string
	Format string
}

type SentryConfig struct {
	DSN         string
	Environment string
}

// Load reads the configuration from the environment. It is the only place
// the process environment is consulted.
func Load() (*Config, error) {
	timeout, err := time.ParseDuration(getEnv("MONARCH_TIMEOUT", monarch.DefaultTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid MONARCH_TIMEOUT: %w", err)
	}

	maxRetries, err := strconv.Atoi(getEnv("MONARCH_MAX_RETRIES", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONARCH_MAX_RETRIES: %w", err)
	}

	cfg := &Config{
		Monarch: MonarchConfig{
			Token:      strings.TrimSpace(os.Getenv(monarch.TokenEnvVar)),
			BaseURL:    getEnv("MONARCH_BASE_URL", monarch.DefaultBaseURL),
			Timeout:    timeout,
			MaxRetries: maxRetries,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
		Sentry: SentryConfig{
			DSN:         getEnv("SENTRY_DSN", ""),
			Environment: getEnv("SENTRY_ENVIRONMENT", "production"),
		},
	}

	// Validate required fields
	if cfg.Monarch.Token == "" {
		return nil, &monarch.ConfigurationError{
			Setting: monarch.TokenEnvVar,
			Message: "environment variable is required",
		}
	}

	return cfg, nil
}

// ClientOptions builds the API client options for this configuration.
func (c *Config) ClientOptions(log monarch.Logger) *monarch.ClientOptions {
	opts := &monarch.ClientOptions{
		Token:     c.Monarch.Token,
		BaseURL:   c.Monarch.BaseURL,
		Timeout:   c.Monarch.Timeout,
		Logger:    log,
		SentryDSN: c.Sentry.DSN,
	}

	if c.Monarch.MaxRetries > 0 {
		opts.RetryConfig = &monarch.RetryConfig{
			MaxRetries: c.Monarch.MaxRetries,
			RetryWait:  time.Second,
			MaxWait:    30 * time.Second,
		}
	}

	if c.Sentry.DSN != "" {
		opts.SentryOptions = &sentry.ClientOptions{
			Environment: c.Sentry.Environment,
		}
	}

	return opts
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
