// Package config assembles the client's runtime settings from defaults,
// an optional JSON file, and command-line flags, in that precedence order.
package config

import "time"

// Config holds runtime settings for the menumap CLI.
//
// Fields:
//   - APIBaseURL: base URL of the restaurant backend.
//   - RequestTimeout: per-request HTTP timeout.
//   - LocalDBPath: sqlite file holding credentials and the list snapshot.
//   - KeyFilePath: file holding the credential-store sealing key.
//   - LocationGranted: whether the locator reports permission as granted.
//   - Latitude/Longitude: the position the CLI locator reports.
type Config struct {
	APIBaseURL      string
	RequestTimeout  time.Duration
	LocalDBPath     string
	KeyFilePath     string
	LocationGranted bool
	Latitude        float64
	Longitude       float64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.LocalDBPath = "menumap.db"
	c.KeyFilePath = "menumap.key"
	c.LocationGranted = false
	c.Latitude = 0
	c.Longitude = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
