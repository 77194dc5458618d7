package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/kano-labs/kano-api-client/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout is
// carried as integer seconds so the file stays hand-editable.
type jsonConfig struct {
	DefaultURL     string `json:"default_url"`
	CacheDir       string `json:"cache_dir"`
	RequestTimeout int    `json:"request_timeout_s"`
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config.
// Absent flags mean no file is loaded. Zero-valued fields in the file leave
// the existing value alone; read or unmarshal errors panic (the CLI has no
// way to continue with a config the user explicitly pointed it at).
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
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

	if jc.DefaultURL != "" {
		cfg.DefaultURL = jc.DefaultURL
	}
	if jc.CacheDir != "" {
		cfg.CacheDir = jc.CacheDir
	}
	if jc.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout) * time.Second
	}
}
