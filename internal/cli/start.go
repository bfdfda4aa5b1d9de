package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/trask/forerun/internal/console"
	"github.com/trask/forerun/internal/manifest"
	"github.com/trask/forerun/internal/supervisor"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Launch every process in the manifest",
	Long: "Validate the manifests, then launch each declared process in file order\n" +
		"with variable and PORT expansion. Runs in the foreground until interrupted,\n" +
		"then terminates all launched processes.",
	RunE: runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	procLines, err := loadProcLines()
	if err != nil {
		return err
	}
	envLines, err := loadEnvLines(cmd)
	if err != nil {
		return err
	}

	// A malformed manifest must never partially launch processes, so both
	// files are validated in full before the first spawn.
	procs, procOffenses := manifest.ParseProcs(procLines)
	envEntries, envOffenses := manifest.ParseEnv(envLines)
	if len(procOffenses) > 0 || len(envOffenses) > 0 {
		printOffenses(procfilePath, procOffenses)
		printOffenses(envFilePath, envOffenses)
		return errValidationFailed
	}

	reporter := console.New(os.Stdout, colorEnabled(cfg))
	sup := supervisor.New(supervisor.Config{
		Env:         manifest.EnvMap(envEntries),
		BasePort:    cfg.PortSeed(),
		GracePeriod: cfg.GracePeriod(),
		Reporter:    reporter,
	})

	// Register for signals before launching so an early interrupt still
	// reaches the cleanup path.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	if err := sup.Run(cmd.Context(), procs); err != nil {
		sup.Terminate()
		return err
	}

	if sup.Records().Len() == 0 {
		reporter.System("nothing to supervise")
		return nil
	}

	sig := <-sigCh
	sup.Terminate()

	if s, ok := sig.(syscall.Signal); ok {
		os.Exit(128 + int(s))
	}
	os.Exit(1)
	return nil
}

func init() {
	rootCmd.AddCommand(startCmd)
}
