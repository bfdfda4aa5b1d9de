package supervisor

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/trask/forerun/internal/logging"
)

// launch starts one command through the shell in its own process group and
// returns its pid. The pid is appended to the record store and the handshake
// channel signaled by a goroutine the moment the child is scheduled; launch
// blocks on the handshake, so by the time it returns the pid is visible to a
// concurrent cleanup pass. The wait has no timeout: the signaling goroutine
// runs in this address space, so it is bounded by the scheduler rather than
// by child behavior.
func (s *Supervisor) launch(id, command string) (int, error) {
	// Drain any stale handshake before the spawn.
	select {
	case <-s.handshake:
	default:
	}

	cmd := exec.Command(s.cfg.Shell, "-c", command)
	setSysProcAttr(cmd)
	cmd.Env = s.childEnv()
	cmd.Stdout = s.reporter.Writer(id)
	cmd.Stderr = s.reporter.Writer(id)

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %s: %w", id, err)
	}

	go func() {
		defer logging.LogPanic("launch-handshake", nil)
		s.records.Append(cmd.Process.Pid)
		s.handshake <- cmd.Process.Pid
	}()

	pid := <-s.handshake

	go s.reap(id, cmd)

	return pid, nil
}

// childEnv builds the environment for a child: the parent environment plus
// every manifest entry, manifest entries winning on collision.
func (s *Supervisor) childEnv() []string {
	env := os.Environ()
	for name, value := range s.cfg.Env {
		env = append(env, name+"="+value)
	}
	return env
}

// reap waits for a child so it does not linger as a zombie, and reports its
// exit.
func (s *Supervisor) reap(id string, cmd *exec.Cmd) {
	defer logging.LogPanic("reap-"+id, nil)

	err := cmd.Wait()
	if err != nil {
		slog.Debug("process exited", "id", id, "error", err)
		s.reporter.Report(id, fmt.Sprintf("exited: %v", err))
		return
	}
	slog.Debug("process exited", "id", id)
	s.reporter.Report(id, "exited")
}
