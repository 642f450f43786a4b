// Package config loads runtime configuration for the menta CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c or -config.
//  3. Optional dotenv file (-e/-env or ./.env) and MENTA_* variables.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
// Durations accept either strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8000",
//	  "database_path": "menta.db",
//	  "request_timeout": "10s",
//	  "rate_limit": 5,
//	  "log_format": "text",
//	  "logout_on_unauthorized": false
//	}
package config
