package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"api_base_url":           "https://api.menta.example",
		"database_path":          "/var/lib/menta.db",
		"request_timeout":        "3s",
		"rate_limit":             2.5,
		"log_format":             "json",
		"logout_on_unauthorized": true,
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"request_timeout": 2000000000,
	})

	t.Run("loads every field", func(t *testing.T) {
		cfg := &Config{}
		parseJson(cfg, []string{"-config", full})

		assert.Equal(t, "https://api.menta.example", cfg.APIBaseURL)
		assert.Equal(t, "/var/lib/menta.db", cfg.DatabasePath)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 2.5, cfg.RateLimit)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.LogoutOnUnauthorized)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-c", partial})

		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "http://127.0.0.1:8000", cfg.APIBaseURL)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "http://keep"}
		parseJson(cfg, []string{"-a", "http://other"})
		assert.Equal(t, "http://keep", cfg.APIBaseURL)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}) })
	})
}
