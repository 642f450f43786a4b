package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/menta/internal/flagx"
)

// parseEnv loads an optional dotenv file (-e/-env, otherwise ./.env when it
// exists) and then overlays cfg with MENTA_* variables. Variables that are
// not set leave the field untouched.
func parseEnv(cfg *Config, args []string) {
	if path := flagx.EnvFile(args); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
