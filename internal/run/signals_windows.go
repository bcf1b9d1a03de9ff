//go:build windows

package run

import "os"

// Windows only delivers interrupt events to console programs; SIGTERM and
// SIGHUP have no equivalent worth forwarding.
var forwardedSignals = []os.Signal{os.Interrupt}
