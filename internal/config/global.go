// Package config provides configuration validation and loading for forerun.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/trask/forerun/internal/paths"
)

// GlobalConfig represents the global forerun configuration
// (~/.config/forerun/config.toml). Every field is optional; CLI flags
// override config values, and config values override compiled-in defaults.
type GlobalConfig struct {
	// BasePort seeds the port counter when the environment manifest has no
	// PORT entry.
	BasePort int `toml:"base_port"`

	// GraceSeconds is the SIGTERM-to-SIGKILL window during cleanup.
	GraceSeconds int `toml:"grace_seconds"`

	// NoColor disables colored status-line prefixes.
	NoColor bool `toml:"no_color"`

	// Log contains logging settings.
	Log LogConfig `toml:"log"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Path is the log file path (default ~/.forerun/forerun.log).
	Path string `toml:"path"`
	// Level is the log level: "debug", "info", "warn", or "error".
	Level string `toml:"level"`
}

// Load loads the global forerun configuration.
// Returns nil config and nil error if the file doesn't exist.
func Load() (*GlobalConfig, error) {
	path, err := paths.ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads the global config from a specific path.
// Returns nil config and nil error if the file doesn't exist.
func LoadFromPath(path string) (*GlobalConfig, error) {
	var cfg GlobalConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GracePeriod returns the configured grace period, or zero when unset so the
// caller falls back to its default.
func (c *GlobalConfig) GracePeriod() time.Duration {
	if c == nil || c.GraceSeconds <= 0 {
		return 0
	}
	return time.Duration(c.GraceSeconds) * time.Second
}

// PortSeed returns the configured base port, or zero when unset.
func (c *GlobalConfig) PortSeed() int {
	if c == nil {
		return 0
	}
	return c.BasePort
}

// LogPath returns the configured log path, or empty when unset.
func (c *GlobalConfig) LogPath() string {
	if c == nil {
		return ""
	}
	return c.Log.Path
}

// LogLevel returns the configured log level, or empty when unset.
func (c *GlobalConfig) LogLevel() string {
	if c == nil {
		return ""
	}
	return c.Log.Level
}

// ColorDisabled reports whether colored output is disabled by config.
func (c *GlobalConfig) ColorDisabled() bool {
	return c != nil && c.NoColor
}
