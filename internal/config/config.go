// Package config loads runtime settings for the interactive CLI.
//
// Sources and precedence: built-in defaults, then an optional JSON file
// (selected with -c or -config), then command-line flags.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the CLI runtime settings.
//
// Fields:
//   - DefaultURL: base URL of the identity service.
//   - CacheDir: directory for the persistent offline-session store.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	DefaultURL     string
	CacheDir       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults. The cache lands in the
// platform cache directory, falling back to a hidden directory under the
// working directory when that cannot be resolved.
func (c *Config) LoadDefaults() {
	c.DefaultURL = "https://api.kano.me"
	c.CacheDir = defaultCacheDir()
	c.RequestTimeout = 15 * time.Second
}

func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".kano-api-client"
	}
	return filepath.Join(base, "kano-api-client")
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
