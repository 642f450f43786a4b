package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/menta/internal/flagx"
	"github.com/dmitrijs2005/menta/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values so a partial file only
// overrides what it names.
type JsonConfig struct {
	APIBaseURL           *string         `json:"api_base_url"`
	DatabasePath         *string         `json:"database_path"`
	RequestTimeout       *timex.Duration `json:"request_timeout"`
	RateLimit            *float64        `json:"rate_limit"`
	LogFormat            *string         `json:"log_format"`
	LogoutOnUnauthorized *bool           `json:"logout_on_unauthorized"`
}

// parseJson overlays cfg with the JSON file named by -c/-config. Without the
// flag nothing happens. Read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RateLimit != nil {
		cfg.RateLimit = *jc.RateLimit
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.LogoutOnUnauthorized != nil {
		cfg.LogoutOnUnauthorized = *jc.LogoutOnUnauthorized
	}
}
