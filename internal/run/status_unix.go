//go:build !windows

package run

import (
	"os/exec"
	"syscall"
)

// termSignal extracts the terminating signal number from a child that died
// to one. ok is false for a normal exit.
func termSignal(err *exec.ExitError) (sig int, ok bool) {
	ws, ok := err.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return 0, false
	}
	return int(ws.Signal()), true
}
