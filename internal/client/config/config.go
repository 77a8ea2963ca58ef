// Package config loads runtime settings for the certvera CLI.
package config

import "time"

// Config holds runtime settings for the certvera CLI.
//
// Fields:
//   - BackendBaseURL: base URL of the certificate service REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - TokenFile: path of the file holding the bearer token.
//   - DownloadsDir: directory (relative to cwd) for exported certificate images.
type Config struct {
	BackendBaseURL string
	RequestTimeout time.Duration
	TokenFile      string
	DownloadsDir   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendBaseURL = "https://cert-verification-backend-ny9g.onrender.com"
	c.RequestTimeout = 15 * time.Second
	c.TokenFile = ".certvera_token"
	c.DownloadsDir = "downloads"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
