package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/menta/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   base URL of the REST API
//	-d string   path of the local SQLite database
//	-t int      request timeout (seconds)
//	-r float    client-side rate limit (requests per second, 0 = off)
//	-l string   log format: text, json, zap
//	-u          log out automatically when the API rejects the token
//
// Unknown arguments are filtered out first so the config and env loaders can
// share the same command line.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-r", "-l", "-u"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the REST API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.Float64Var(&cfg.RateLimit, "r", cfg.RateLimit, "requests per second, 0 disables limiting")
	fs.StringVar(&cfg.LogFormat, "l", cfg.LogFormat, "log format: text, json or zap")
	fs.BoolVar(&cfg.LogoutOnUnauthorized, "u", cfg.LogoutOnUnauthorized, "log out when the API rejects the token")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
