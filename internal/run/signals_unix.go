//go:build !windows

package run

import (
	"os"
	"syscall"
)

// forwardedSignals are the termination requests relayed to the child rather
// than acted on by nora itself.
var forwardedSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}
