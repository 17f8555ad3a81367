package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string
	ContentPath     string
	SiteTitle       string
	LogLevel        slog.Level
	RateLimit       RateLimit
	MetricsEnabled  bool
	ShutdownTimeout time.Duration

	// TrustProxyHeaders takes the client address from X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool
}

// RateLimit holds per-client request limits
type RateLimit struct {
	PerMinute int
	Burst     int
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		ServerAddr:  getEnvString("SERVER_ADDR", ":8080"),
		ContentPath: os.Getenv("CONTENT_PATH"),
		SiteTitle:   getEnvString("SITE_TITLE", "Portfolio"),
		RateLimit: RateLimit{
			PerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
			Burst:     getEnvInt("RATE_LIMIT_BURST", 60),
		},
		MetricsEnabled:    getEnvBool("METRICS_ENABLED", true),
		ShutdownTimeout:   getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		TrustProxyHeaders: getEnvBool("TRUST_PROXY_HEADERS", false),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnvString("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// getEnvInt falls back to defaultVal for missing, malformed or non-positive values
func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		return defaultVal
	}
	return i
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
