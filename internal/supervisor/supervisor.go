// Package supervisor launches the processes declared in a manifest and
// tears them down on interruption. One driver loop launches entries strictly
// in file order; each launch is handshake-synchronized so the child's pid is
// durably recorded before the next entry is considered.
package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/trask/forerun/internal/console"
	"github.com/trask/forerun/internal/expand"
	"github.com/trask/forerun/internal/manifest"
)

// DefaultBasePort seeds the port counter when the environment manifest has
// no PORT entry and no override is configured.
const DefaultBasePort = 5000

// DefaultGracePeriod is how long Terminate waits between SIGTERM and SIGKILL.
const DefaultGracePeriod = 5 * time.Second

// defaultShell runs each command so that templates may use shell syntax.
const defaultShell = "/bin/sh"

// Config configures a Supervisor.
type Config struct {
	// Env holds the environment manifest entries available for expansion
	// and exported to every child.
	Env map[string]string

	// BasePort seeds the port counter when Env has no PORT entry.
	// Zero means DefaultBasePort.
	BasePort int

	// GracePeriod is the SIGTERM-to-SIGKILL window during Terminate.
	// Zero means DefaultGracePeriod.
	GracePeriod time.Duration

	// Shell is the interpreter used to run commands. Empty means /bin/sh.
	Shell string

	// Reporter receives status lines and child output. Nil means a
	// plain reporter on stdout.
	Reporter *console.Reporter
}

// Supervisor drives a process manifest: expansion, launch, and cleanup.
type Supervisor struct {
	cfg      Config
	counter  *expand.Counter
	records  *RecordStore
	reporter *console.Reporter

	// handshake is the single-slot channel between launch and the goroutine
	// confirming a child's pid has been recorded.
	handshake chan int
}

// New creates a Supervisor with the given configuration.
func New(cfg Config) *Supervisor {
	if cfg.BasePort == 0 {
		cfg.BasePort = DefaultBasePort
	}
	if cfg.GracePeriod == 0 {
		cfg.GracePeriod = DefaultGracePeriod
	}
	if cfg.Shell == "" {
		cfg.Shell = defaultShell
	}
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = console.New(os.Stdout, false)
	}
	return &Supervisor{
		cfg:       cfg,
		records:   NewRecordStore(),
		reporter:  reporter,
		handshake: make(chan int, 1),
	}
}

// Records exposes the launched-process record store, read by the cleanup
// path and by tests.
func (s *Supervisor) Records() *RecordStore {
	return s.records
}

// Run launches every process in order. The record store is cleared first and
// the port counter seeded from the PORT environment entry (or the configured
// base port). Expansion and launch failures are logged per entry and never
// abort the pass; only a malformed PORT seed is fatal, and it fails before
// anything is launched. Cancellation of ctx stops the loop between entries;
// an in-flight launch is never interrupted.
func (s *Supervisor) Run(ctx context.Context, procs []manifest.Process) error {
	log := slog.With("component", "supervisor")

	s.records.Clear()

	seed, err := s.portSeed()
	if err != nil {
		return err
	}
	s.counter = expand.NewCounter(seed)
	log.Debug("run starting", "processes", len(procs), "port_seed", seed)

	for _, proc := range procs {
		if err := ctx.Err(); err != nil {
			log.Debug("run canceled", "remaining", proc.ID)
			return err
		}

		command, ok := expand.Expand(proc.Command, s.cfg.Env, s.counter)
		if !ok {
			log.Warn("unresolved variable in command", "id", proc.ID, "command", command)
			s.reporter.Systemf("warning: %s has unresolved variables", proc.ID)
		}

		pid, err := s.launch(proc.ID, command)
		if err != nil {
			log.Error("launch failed", "id", proc.ID, "error", err)
			s.reporter.Systemf("error: %s failed to start: %v", proc.ID, err)
			continue
		}

		log.Info("process started", "id", proc.ID, "pid", pid)
		s.reporter.Report(proc.ID, fmt.Sprintf("started %s (pid %d)", command, pid))
	}

	return nil
}

// portSeed resolves the initial port counter value.
func (s *Supervisor) portSeed() (int, error) {
	raw, ok := s.cfg.Env[expand.PortVar]
	if !ok {
		return s.cfg.BasePort, nil
	}
	seed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid PORT entry %q: %w", raw, err)
	}
	return seed, nil
}
