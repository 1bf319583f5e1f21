package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"proaimctl"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()
	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "proaim.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	resetArgs(t, "-a", "http://api.example.com/api", "-t", "30", "-l", "debug")

	cfg := LoadConfig()
	assert.Equal(t, "http://api.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_JSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "http://json.example.com/api",
		"request_timeout_s": 7,
		"database_path": "json.db",
		"log_level": "warn"
	}`), 0o600))

	resetArgs(t, "-c", path)

	cfg := LoadConfig()
	assert.Equal(t, "http://json.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "json.db", cfg.DatabasePath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_FlagsWinOverJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url": "http://json.example.com/api"}`), 0o600))

	resetArgs(t, "-c", path, "-a", "http://flag.example.com/api")

	cfg := LoadConfig()
	assert.Equal(t, "http://flag.example.com/api", cfg.APIBaseURL)
}

func TestLoadConfig_EnvOverridesJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path": "json.db"}`), 0o600))

	resetArgs(t, "-c", path)
	t.Setenv(EnvDatabasePath, "env.db")
	t.Setenv(EnvRequestTimeout, "3")

	cfg := LoadConfig()
	assert.Equal(t, "env.db", cfg.DatabasePath)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_MissingJSONFilePanics(t *testing.T) {
	resetArgs(t, "-c", "no-such-file.json")
	assert.Panics(t, func() { LoadConfig() })
}

func TestSlogLevel_Mapping(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"garbage", slog.LevelInfo},
	}
	for _, tc := range tests {
		cfg := &Config{LogLevel: tc.in}
		assert.Equal(t, tc.want, cfg.SlogLevel(), tc.in)
	}
}
