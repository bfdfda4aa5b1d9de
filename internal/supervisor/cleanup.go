package supervisor

import (
	"log/slog"
	"syscall"
	"time"
)

// Terminate tears down every recorded process: SIGTERM to each process
// group, then SIGKILL to whatever survives the grace period. It only reads
// the record store, so it is safe to run concurrently with an in-progress
// Run pass, and it is idempotent: signaling an already-dead process is
// ignored, so duplicate signal deliveries are harmless.
func (s *Supervisor) Terminate() {
	log := slog.With("component", "cleanup")

	pids := s.records.Snapshot()
	if len(pids) == 0 {
		return
	}
	log.Info("terminating processes", "count", len(pids))

	for _, pid := range pids {
		if err := signalGroup(pid, syscall.SIGTERM); err != nil {
			log.Debug("SIGTERM failed", "pid", pid, "error", err)
		}
	}

	deadline := time.Now().Add(s.cfg.GracePeriod)
	for time.Now().Before(deadline) {
		if !s.anyRunning(pids) {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}

	for _, pid := range pids {
		if !processRunning(pid) {
			continue
		}
		log.Warn("process did not exit gracefully, sending SIGKILL", "pid", pid)
		if err := signalGroup(pid, syscall.SIGKILL); err != nil {
			log.Debug("SIGKILL failed", "pid", pid, "error", err)
		}
	}
}

// anyRunning reports whether any of the given pids is still alive.
func (s *Supervisor) anyRunning(pids []int) bool {
	for _, pid := range pids {
		if processRunning(pid) {
			return true
		}
	}
	return false
}
