package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by the client.
const (
	EnvAPIBaseURL     = "PROAIM_API_URL"
	EnvRequestTimeout = "PROAIM_TIMEOUT"
	EnvDatabasePath   = "PROAIM_DB_PATH"
	EnvLogLevel       = "PROAIM_LOG_LEVEL"
)

// parseEnv overlays cfg with environment variables. A .env file in the
// working directory is loaded first when present; real environment values
// win over .env entries (godotenv never overrides existing variables).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
