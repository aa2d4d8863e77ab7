package config

import "time"

// Config holds runtime settings for the LevelUp CLI.
//
// Fields:
//   - BackendEndpointAddr: base URL of the identity backend.
//   - CatalogEndpointAddr: base URL of the product catalog API.
//   - DatabaseDSN: SQLite DSN of the local store.
//   - RequestTimeout: per-request timeout for outbound HTTP calls.
type Config struct {
	BackendEndpointAddr string
	CatalogEndpointAddr string
	DatabaseDSN         string
	RequestTimeout      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendEndpointAddr = "http://127.0.0.1:8080"
	c.CatalogEndpointAddr = "https://fakestoreapi.com"
	c.DatabaseDSN = "levelup.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
