package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/proaim/proaimctl/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is given in seconds so config files stay unit-free.
type jsonConfig struct {
	APIBaseURL      string `json:"api_base_url"`
	RequestTimeoutS *int   `json:"request_timeout_s"`
	DatabasePath    string `json:"database_path"`
	LogLevel        string `json:"log_level"`
}

// parseJSON overlays cfg with values from the JSON file named by the -c or
// -config flag. Without that flag nothing is loaded. Read or unmarshal
// errors panic; the config stage runs before any state is touched, so
// failing loudly is safe.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeoutS != nil {
		cfg.RequestTimeout = time.Duration(*jc.RequestTimeoutS) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
