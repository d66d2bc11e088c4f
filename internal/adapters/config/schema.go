package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file name looked up in the working
// directory.
const DefaultFilename = "corekit.yaml"

// Duration wraps time.Duration for YAML round-tripping in the "24h" form.
type Duration time.Duration

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// AppConfig is the application configuration backing corekit.yaml.
type AppConfig struct {
	Log     LogConfig    `yaml:"log"`
	Cache   CacheConfig  `yaml:"cache"`
	Update  UpdateConfig `yaml:"update"`
	UI      UIConfig     `yaml:"ui"`
	Workers int          `yaml:"workers"`
}

// LogConfig configures the logging adapter.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Dir is the directory receiving one log file per run. Empty disables
	// file logging.
	Dir string `yaml:"dir"`

	// KeepFiles is the number of newest log files to keep. -1 keeps all.
	KeepFiles int `yaml:"keep_files"`
}

// CacheConfig configures the persistent cache.
type CacheConfig struct {
	// Dir is the cache root directory.
	Dir string `yaml:"dir"`

	// WebMaxAge is how long cached web content stays valid.
	WebMaxAge Duration `yaml:"web_max_age"`

	// ScanMaxAge is how long cached directory scan results stay valid.
	ScanMaxAge Duration `yaml:"scan_max_age"`
}

// UpdateConfig points the update check at a repository.
type UpdateConfig struct {
	Enabled bool   `yaml:"enabled"`
	Owner   string `yaml:"owner"`
	Repo    string `yaml:"repo"`
	Branch  string `yaml:"branch"`
}

// UIConfig carries presentation settings through to hosts. The library
// does not interpret them beyond validation.
type UIConfig struct {
	// AccentColor is a "#rrggbb" hex color.
	AccentColor string `yaml:"accent_color"`

	// Mode is one of system, light, dark.
	Mode string `yaml:"mode"`
}
