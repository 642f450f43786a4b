package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the menta CLI.
//
// Fields:
//   - APIBaseURL: scheme://host:port of the remote REST API.
//   - DatabasePath: SQLite file holding the remembered session token.
//   - RequestTimeout: upper bound for a single API call.
//   - RateLimit: client-side requests per second (0 disables limiting).
//   - LogFormat: "text", "json" or "zap".
//   - LogoutOnUnauthorized: drop the session when the API rejects the token.
type Config struct {
	APIBaseURL           string        `env:"MENTA_API_BASE_URL"`
	DatabasePath         string        `env:"MENTA_DATABASE_PATH"`
	RequestTimeout       time.Duration `env:"MENTA_REQUEST_TIMEOUT"`
	RateLimit            float64       `env:"MENTA_RATE_LIMIT"`
	LogFormat            string        `env:"MENTA_LOG_FORMAT"`
	LogoutOnUnauthorized bool          `env:"MENTA_LOGOUT_ON_UNAUTHORIZED"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.DatabasePath = "menta.db"
	c.RequestTimeout = 10 * time.Second
	c.RateLimit = 5
	c.LogFormat = "text"
	c.LogoutOnUnauthorized = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	return loadFrom(os.Args[1:])
}

func loadFrom(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
