package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Normalizer)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "Si", cfg.Labels.Yes)
	assert.Equal(t, "No", cfg.Labels.No)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 8081, cfg.Server.LivePort)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.WarmUp)
	assert.Equal(t, 1, cfg.Workers)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
normalizer: folding
format: json
labels:
  yes: "true"
  no: "false"
server:
  port: 9000
  live_port: 0
  read_timeout: 5s
log:
  level: debug
`), 0o644))

	v, err := NewViper(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "folding", cfg.Normalizer)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "true", cfg.Labels.Yes)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 0, cfg.Server.LivePort)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PALINDROME_NORMALIZER", "ASCII")
	t.Setenv("PALINDROME_SERVER_PORT", "9090")

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "ascii", cfg.Normalizer)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestMissingExplicitFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestValidation(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name  string
		key   string
		value interface{}
		field string
	}{
		{name: "unknown normalizer", key: "normalizer", value: "soundex", field: "Normalizer"},
		{name: "unknown format", key: "format", value: "xml", field: "Format"},
		{name: "port out of range", key: "server.port", value: 70000, field: "Port"},
		{name: "empty yes label", key: "labels.yes", value: "", field: "Yes"},
		{name: "bad log level", key: "log.level", value: "loud", field: "Level"},
		{name: "negative workers", key: "workers", value: -2, field: "Workers"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := NewViper("")
			require.NoError(t, err)
			v.Set(tc.key, tc.value)

			_, err = Load(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}
