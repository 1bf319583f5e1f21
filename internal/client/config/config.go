// Package config loads runtime settings for the ProAim CLI.
//
// Sources overlay in order, later ones winning:
// defaults -> JSON file (-c/-config) -> environment (.env aware) -> flags.
package config

import (
	"log/slog"
	"strings"
	"time"
)

// Config holds runtime settings for the ProAim CLI.
//
// Fields:
//   - APIBaseURL: root of the backend REST API, including the /api prefix.
//   - RequestTimeout: client-side deadline per HTTP request; zero disables it.
//   - DatabasePath: location of the local credentials database.
//   - LogLevel: minimum level emitted by the structured logger.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "proaim.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), environment variables, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// SlogLevel maps the configured level name onto a slog.Level, defaulting
// to info for unknown names.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
