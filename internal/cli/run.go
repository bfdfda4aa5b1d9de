package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trask/forerun/internal/expand"
	"github.com/trask/forerun/internal/manifest"
	"github.com/trask/forerun/internal/supervisor"
)

var runCmd = &cobra.Command{
	Use:   "run <command> [args...]",
	Short: "Run one ad-hoc command with the manifest environment",
	Long: "Expand and run a single command against the environment manifest, without\n" +
		"touching the process manifest. The command inherits the terminal.",
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	envLines, err := loadEnvLines(cmd)
	if err != nil {
		return err
	}
	envEntries, offenses := manifest.ParseEnv(envLines)
	if len(offenses) > 0 {
		printOffenses(envFilePath, offenses)
		return errValidationFailed
	}
	env := manifest.EnvMap(envEntries)

	counter := expand.NewCounter(portSeed(env, cfg.PortSeed()))
	command, ok := expand.Expand(strings.Join(args, " "), env, counter)
	if !ok {
		fmt.Fprintln(os.Stderr, "warning: command has unresolved variables")
	}

	child := exec.Command("/bin/sh", "-c", command)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	child.Env = os.Environ()
	for name, value := range env {
		child.Env = append(child.Env, name+"="+value)
	}

	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// portSeed mirrors the driver's seeding order: the PORT environment entry
// wins, then the configured base port, then the compiled-in default.
func portSeed(env map[string]string, basePort int) int {
	if raw, ok := env[expand.PortVar]; ok {
		if seed, err := strconv.Atoi(raw); err == nil {
			return seed
		}
	}
	if basePort > 0 {
		return basePort
	}
	return supervisor.DefaultBasePort
}

func init() {
	rootCmd.AddCommand(runCmd)
}
