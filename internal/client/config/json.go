package config

import (
	"encoding/json"
	"os"

	"github.com/certvera/certvera/internal/flagx"
	"github.com/certvera/certvera/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "15s" or as integer nanoseconds.
type JSONConfig struct {
	BackendBaseURL string         `json:"backend_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	TokenFile      string         `json:"token_file"`
	DownloadsDir   string         `json:"downloads_dir"`
}

// parseJSON overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags; when neither is given no JSON is
// loaded. Read or unmarshal errors panic, matching the bootstrapping
// behavior of the flag stage. Empty JSON fields leave the defaults in place.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendBaseURL != "" {
		cfg.BackendBaseURL = jc.BackendBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
	if jc.DownloadsDir != "" {
		cfg.DownloadsDir = jc.DownloadsDir
	}
}
