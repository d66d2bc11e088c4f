package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.seluk.ch/corekit/internal/adapters/config"
	"go.seluk.ch/corekit/internal/core/domain"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "corekit.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Log.Dir)
	assert.Equal(t, 5, cfg.Log.KeepFiles)
	assert.Equal(t, time.Duration(cfg.Cache.WebMaxAge), 24*time.Hour)
	assert.Equal(t, time.Duration(cfg.Cache.ScanMaxAge), 15*time.Minute)
	assert.True(t, cfg.Update.Enabled)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.NotEmpty(t, cfg.Cache.Dir)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corekit.yaml")
	content := `
log:
  level: debug
cache:
  dir: /tmp/corekit-test
  web_max_age: 1h
update:
  enabled: false
  owner: cutleast
  repo: example-app
workers: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/corekit-test", cfg.Cache.Dir)
	assert.Equal(t, time.Hour, time.Duration(cfg.Cache.WebMaxAge))
	assert.False(t, cfg.Update.Enabled)
	assert.Equal(t, "cutleast", cfg.Update.Owner)
	assert.Equal(t, 2, cfg.Workers)

	// Unset sections keep their defaults.
	assert.Equal(t, 5, cfg.Log.KeepFiles)
	assert.Equal(t, "main", cfg.Update.Branch)
	assert.Equal(t, "system", cfg.UI.Mode)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corekit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: ["), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.AppConfig)
	}{
		{name: "bad log level", mutate: func(c *config.AppConfig) { c.Log.Level = "verbose" }},
		{name: "bad keep files", mutate: func(c *config.AppConfig) { c.Log.KeepFiles = -2 }},
		{name: "empty cache dir", mutate: func(c *config.AppConfig) { c.Cache.Dir = "" }},
		{name: "zero workers", mutate: func(c *config.AppConfig) { c.Workers = 0 }},
		{name: "bad accent color", mutate: func(c *config.AppConfig) { c.UI.AccentColor = "cyan" }},
		{name: "bad ui mode", mutate: func(c *config.AppConfig) { c.UI.Mode = "hacker" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
		})
	}

	assert.NoError(t, config.Default().Validate())
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "corekit.yaml")

	cfg := config.Default()
	cfg.Log.Level = "warn"
	cfg.Cache.Dir = "/tmp/corekit-roundtrip"
	cfg.Update.Owner = "cutleast"
	cfg.Update.Repo = "example-app"

	require.NoError(t, config.Save(path, cfg))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_InvalidConfigRejected(t *testing.T) {
	cfg := config.Default()
	cfg.Workers = -1

	err := config.Save(filepath.Join(t.TempDir(), "corekit.yaml"), cfg)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
}
