// Package cli implements the forerun command-line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/trask/forerun/internal/config"
	"github.com/trask/forerun/internal/logging"
	"github.com/trask/forerun/internal/paths"
)

// Persistent flag values.
var (
	procfilePath string
	envFilePath  string
	forerunDir   string
	logLevel     string
	noColor      bool
)

var rootCmd = &cobra.Command{
	Use:   "forerun",
	Short: "Declarative process supervisor",
	Long: "forerun reads a Procfile of named commands and an optional .env manifest,\n" +
		"validates both, launches each command with per-process PORT allocation and\n" +
		"variable expansion, and terminates all children on interruption.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set FORERUN_DIR environment variable if --forerun-dir is provided.
		// This allows all path helpers to use the override.
		if forerunDir != "" {
			if err := os.Setenv(paths.EnvForerunDir, forerunDir); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&procfilePath, "procfile", "f", "Procfile", "path to the process manifest")
	pf.StringVarP(&envFilePath, "env-file", "e", ".env", "path to the environment manifest")
	pf.StringVar(&forerunDir, "forerun-dir", "", "base directory for forerun data (overrides ~/.forerun)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")
}

// setup loads the global config and initializes logging. The returned cleanup
// closes the log file; it is a no-op when logging setup failed softly.
func setup() (*config.GlobalConfig, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	level := logLevel
	if level == "" {
		level = cfg.LogLevel()
	}

	cleanup, err := logging.Setup(cfg.LogPath(), logging.ParseLevel(level))
	if err != nil {
		return nil, nil, err
	}
	return cfg, cleanup, nil
}

// colorEnabled reports whether status output should be colorized, honoring
// the --no-color flag, the config file, and the NO_COLOR convention.
func colorEnabled(cfg *config.GlobalConfig) bool {
	if noColor || cfg.ColorDisabled() {
		return false
	}
	return os.Getenv("NO_COLOR") == ""
}

func Execute() error {
	return rootCmd.Execute()
}
