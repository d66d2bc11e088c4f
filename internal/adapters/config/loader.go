// Package config provides the application configuration loader.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"time"

	"go.seluk.ch/corekit/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var accentColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Default returns the configuration used when no file exists.
func Default() *AppConfig {
	return &AppConfig{
		Log: LogConfig{
			Level:     "info",
			Dir:       defaultLogDir(),
			KeepFiles: 5,
		},
		Cache: CacheConfig{
			Dir:        defaultCacheDir(),
			WebMaxAge:  Duration(24 * time.Hour),
			ScanMaxAge: Duration(15 * time.Minute),
		},
		Update: UpdateConfig{
			Enabled: true,
			Branch:  "main",
		},
		UI: UIConfig{
			AccentColor: "#00ffff",
			Mode:        "system",
		},
		Workers: runtime.NumCPU(),
	}
}

func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".corekit", "cache")
	}
	return filepath.Join(base, "corekit", "cache")
}

func defaultLogDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".corekit", "logs")
	}
	return filepath.Join(base, "corekit", "logs")
}

// Load reads the configuration from path. A missing file yields the
// defaults; a present file is parsed on top of them and validated.
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as canonical YAML, creating parent
// directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create config directory")
	}
	//nolint:gosec // Path is provided by user
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write config file")
	}
	return nil
}

// invalidField builds a validation error for the given field. The sentinel
// is kept in the chain via Wrap so callers can match it with errors.Is.
func invalidField(field string, value any) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, field), field, value)
}

// Validate checks field values and returns domain.ErrInvalidConfig with
// the offending field attached.
func (c *AppConfig) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalidField("log.level", c.Log.Level)
	}

	if c.Log.KeepFiles < -1 {
		return invalidField("log.keep_files", c.Log.KeepFiles)
	}

	if c.Cache.Dir == "" {
		return invalidField("cache.dir", c.Cache.Dir)
	}

	if c.Workers < 1 {
		return invalidField("workers", c.Workers)
	}

	if !accentColorRe.MatchString(c.UI.AccentColor) {
		return invalidField("ui.accent_color", c.UI.AccentColor)
	}

	switch c.UI.Mode {
	case "system", "light", "dark":
	default:
		return invalidField("ui.mode", c.UI.Mode)
	}

	return nil
}
