package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trask/forerun/internal/manifest"
)

var errValidationFailed = errors.New("manifest validation failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the manifests without launching anything",
	Long: "Validate the process and environment manifests. Every offending line is\n" +
		"reported; nothing is launched. Exits non-zero if any line is invalid.",
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	procLines, err := loadProcLines()
	if err != nil {
		return err
	}
	envLines, err := loadEnvLines(cmd)
	if err != nil {
		return err
	}

	procOK, procOffenses := manifest.ValidateProcs(procLines)
	envOK, envOffenses := manifest.ValidateEnv(envLines)

	printOffenses(procfilePath, procOffenses)
	printOffenses(envFilePath, envOffenses)

	if !procOK || !envOK {
		return errValidationFailed
	}

	fmt.Println("valid manifests")
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
