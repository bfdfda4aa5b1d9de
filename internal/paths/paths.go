// Package paths provides a single source of truth for forerun file paths.
// All path helpers honor environment variable overrides for isolated testing.
//
// Path resolution precedence:
//  1. Specific env vars (FORERUN_LOG_PATH) take highest priority
//  2. FORERUN_DIR env var sets the base directory (derives log/config paths)
//  3. Default behavior (~/.forerun, ~/.config/forerun) when no env vars are set
package paths

import (
	"os"
	"path/filepath"
)

// Environment variable names for path overrides.
const (
	// EnvForerunDir is the base directory override (e.g., /tmp/forerun-e2e).
	// When set, log and config paths derive from this directory.
	EnvForerunDir = "FORERUN_DIR"

	// EnvLogPath overrides the log file path directly.
	EnvLogPath = "FORERUN_LOG_PATH"
)

// BaseDir returns the forerun base directory (~/.forerun by default).
// Honors FORERUN_DIR environment variable.
func BaseDir() (string, error) {
	if dir := os.Getenv(EnvForerunDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".forerun"), nil
}

// ConfigDir returns the forerun config directory (~/.config/forerun by default).
// When FORERUN_DIR is set, returns FORERUN_DIR/config instead.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvForerunDir); dir != "" {
		return filepath.Join(dir, "config"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "forerun"), nil
}

// ConfigPath returns the path to the global forerun config file
// (~/.config/forerun/config.toml by default, or FORERUN_DIR/config/config.toml).
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the log file path (~/.forerun/forerun.log by default).
// Honors FORERUN_LOG_PATH and FORERUN_DIR environment variables.
func LogPath() string {
	if p := os.Getenv(EnvLogPath); p != "" {
		return p
	}
	dir, err := BaseDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "forerun.log")
	}
	return filepath.Join(dir, "forerun.log")
}
