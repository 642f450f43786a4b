package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Variables(t *testing.T) {
	t.Setenv("MENTA_API_BASE_URL", "http://env:8000")
	t.Setenv("MENTA_REQUEST_TIMEOUT", "7s")
	t.Setenv("MENTA_RATE_LIMIT", "1.5")
	t.Setenv("MENTA_LOGOUT_ON_UNAUTHORIZED", "true")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, nil)

	assert.Equal(t, "http://env:8000", cfg.APIBaseURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 1.5, cfg.RateLimit)
	assert.True(t, cfg.LogoutOnUnauthorized)
	assert.Equal(t, "menta.db", cfg.DatabasePath, "unset variables keep earlier values")
}

func TestParseEnv_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MENTA_LOG_FORMAT=json\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("MENTA_LOG_FORMAT") })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, []string{"-e", path})

	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParseEnv_InvalidValuePanics(t *testing.T) {
	t.Setenv("MENTA_RATE_LIMIT", "fast")
	require.Panics(t, func() { parseEnv(&Config{}, nil) })
}

func TestParseEnv_MissingDotenvPanics(t *testing.T) {
	require.Panics(t, func() { parseEnv(&Config{}, []string{"-e", filepath.Join(t.TempDir(), "none.env")}) })
}
