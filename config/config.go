package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	Timezone      string
	SeedPath      string
	LogLevel      string
	LogFormat     string
	EnableMetrics bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		slog.Debug("[cfg] no .env file loaded", "err", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		Timezone:      get("TZ", "UTC"),
		SeedPath:      get("SEED_PATH", ""),
		LogLevel:      get("LOG_LEVEL", "info"),
		LogFormat:     get("LOG_FORMAT", "text"),
		EnableMetrics: true,
	}
	if v := os.Getenv("ENABLE_METRICS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("[cfg] bad ENABLE_METRICS, keeping default", "value", v)
		} else {
			cfg.EnableMetrics = b
		}
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		slog.Warn("[cfg] unknown TZ, falling back to UTC", "tz", cfg.Timezone, "err", err)
		cfg.Timezone = "UTC"
	}
	return cfg
}

// Location resolves Timezone; Load already guarantees it parses.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
