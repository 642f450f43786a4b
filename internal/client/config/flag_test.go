package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://10.0.0.1:8000", "-d", "x.db", "-t", "4", "-r", "0", "-l", "zap", "-u"},
			expected: &Config{
				APIBaseURL:           "http://10.0.0.1:8000",
				DatabasePath:         "x.db",
				RequestTimeout:       4 * time.Second,
				RateLimit:            0,
				LogFormat:            "zap",
				LogoutOnUnauthorized: true,
			},
		},
		{
			name: "foreign flags are ignored",
			args: []string{"-c", "menta.json", "-a", "http://h:1", "-x"},
			expected: &Config{
				APIBaseURL:     "http://h:1",
				RequestTimeout: 0,
			},
		},
		{name: "incorrect timeout", args: []string{"-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
