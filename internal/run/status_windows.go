//go:build windows

package run

import "os/exec"

// Windows exit statuses carry no signal-death notion; the plain exit code is
// all there is.
func termSignal(_ *exec.ExitError) (sig int, ok bool) {
	return 0, false
}
