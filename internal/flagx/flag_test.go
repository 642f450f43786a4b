package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	cfg := []string{"-c", "--config"}

	tests := map[string]struct {
		args    []string
		allowed []string
		want    []string
	}{
		"separate value": {
			args:    []string{"-c", "menta.json", "-a", "http://127.0.0.1:8000"},
			allowed: cfg,
			want:    []string{"-c", "menta.json"},
		},
		"equals form": {
			args:    []string{"--config=menta.json", "-d", "menta.db"},
			allowed: cfg,
			want:    []string{"--config=menta.json"},
		},
		"order kept across forms": {
			args:    []string{"--config=a.json", "-r", "5", "-c", "b.json"},
			allowed: cfg,
			want:    []string{"--config=a.json", "-c", "b.json"},
		},
		"dash token is not a value": {
			args:    []string{"-c", "-u", "-t", "3"},
			allowed: cfg,
			want:    []string{"-c"},
		},
		"trailing flag without value": {
			args:    []string{"-l", "json", "-c"},
			allowed: cfg,
			want:    []string{"-c"},
		},
		"equals value may start with dash": {
			args:    []string{"--config=-odd.json"},
			allowed: cfg,
			want:    []string{"--config=-odd.json"},
		},
		"several allowed flags": {
			args:    []string{"-e", ".env.local", "-u", "-c", "menta.json", "positional"},
			allowed: []string{"-c", "-e"},
			want:    []string{"-e", ".env.local", "-c", "menta.json"},
		},
		"nothing allowed present": {
			args:    []string{"-a", "http://api", "-u"},
			allowed: cfg,
			want:    []string{},
		},
		"no args": {
			args:    nil,
			allowed: cfg,
			want:    []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short -c with value", []string{"-c", "/etc/menta.json"}, "/etc/menta.json"},
		{"long -config with value", []string{"-config", "/etc/menta.json"}, "/etc/menta.json"},
		{"double dash with equals", []string{"--config=/tmp/m.json"}, "/tmp/m.json"},
		{"unknown flags are ignored", []string{"-x", "1", "-a", "http://api"}, ""},
		{"multiple flags, last wins", []string{"-c", "/path/1.json", "-config", "/path/2.json"}, "/path/2.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFile(tt.args))
		})
	}
}

func TestEnvFile(t *testing.T) {
	assert.Equal(t, "prod.env", EnvFile([]string{"-a", "http://x", "-e", "prod.env"}))
	assert.Equal(t, "dev.env", EnvFile([]string{"-env=dev.env"}))
	assert.Empty(t, EnvFile([]string{"-c", "menta.json"}))
}
