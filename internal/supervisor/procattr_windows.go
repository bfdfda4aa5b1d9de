//go:build windows

package supervisor

import (
	"os"
	"os/exec"
	"syscall"
)

// setSysProcAttr is a no-op on Windows; there is no process-group isolation
// equivalent to Setpgid.
func setSysProcAttr(cmd *exec.Cmd) {}

// signalGroup kills the process directly; group signaling is unavailable.
func signalGroup(pid int, _ syscall.Signal) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return proc.Kill()
}

// processRunning reports whether a process with the given pid still exists.
func processRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}
