package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the process settings read from the environment.
type Config struct {
	HTTPAddr string
	LogLevel slog.Level

	RedisConnString string
	RedisDisabled   bool

	OtelEnabled       bool
	OtelCollectorAddr string
	OtelStdout        bool

	SessionIdleTimeout time.Duration
	TokenSecret        []byte
	TokenTTL           time.Duration
}

const devTokenSecret = "tic-tac-toe-solo-dev-secret"

// Load reads the configuration with getenv, falling back to defaults for unset keys.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		HTTPAddr:          stringOr(getenv("HTTP_ADDR"), ":8080"),
		RedisConnString:   stringOr(getenv("REDIS_CONNSTRING"), "localhost:6379"),
		OtelCollectorAddr: stringOr(getenv("OTEL_COLLECTOR_ADDR"), "otel-collector:4317"),
		TokenSecret:       []byte(stringOr(getenv("SESSION_TOKEN_SECRET"), devTokenSecret)),
	}

	var err error
	if cfg.LogLevel, err = parseLevel(getenv("LOG_LEVEL")); err != nil {
		return nil, err
	}
	if cfg.RedisDisabled, err = parseBool("REDIS_DISABLED", getenv("REDIS_DISABLED"), false); err != nil {
		return nil, err
	}
	if cfg.OtelEnabled, err = parseBool("OTEL_ENABLED", getenv("OTEL_ENABLED"), false); err != nil {
		return nil, err
	}
	if cfg.OtelStdout, err = parseBool("OTEL_STDOUT", getenv("OTEL_STDOUT"), false); err != nil {
		return nil, err
	}
	if cfg.SessionIdleTimeout, err = parseDuration("SESSION_IDLE_TIMEOUT", getenv("SESSION_IDLE_TIMEOUT"), 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.TokenTTL, err = parseDuration("SESSION_TOKEN_TTL", getenv("SESSION_TOKEN_TTL"), 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	return cfg, nil
}

// UsesDevSecret reports whether no token secret was configured.
func (c *Config) UsesDevSecret() bool {
	return string(c.TokenSecret) == devTokenSecret
}

func stringOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func parseBool(key, v string, def bool) (bool, error) {
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func parseDuration(key, v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func parseLevel(v string) (slog.Level, error) {
	if v == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
	}
	return level, nil
}
