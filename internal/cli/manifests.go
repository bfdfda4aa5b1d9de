package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trask/forerun/internal/manifest"
)

// loadEnvLines reads the environment manifest. A missing file at the default
// path yields an empty environment; a missing file at an explicitly provided
// path is a setup error.
func loadEnvLines(cmd *cobra.Command) ([]string, error) {
	explicit := cmd.Flags().Changed("env-file")
	if !manifest.FileExists(envFilePath) {
		if explicit {
			return nil, fmt.Errorf("environment manifest %s: not found", envFilePath)
		}
		return nil, nil
	}
	return manifest.ReadLines(envFilePath)
}

// loadProcLines reads the process manifest; a missing file is always a setup
// error.
func loadProcLines() ([]string, error) {
	if !manifest.FileExists(procfilePath) {
		return nil, fmt.Errorf("process manifest %s: not found", procfilePath)
	}
	return manifest.LoadProcLines(procfilePath)
}

// printOffenses writes every offending line to stderr, prefixed with the
// manifest path.
func printOffenses(path string, offenses []manifest.Offense) {
	for _, o := range offenses {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, o.Error())
	}
}
