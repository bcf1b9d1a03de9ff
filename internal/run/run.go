// Package run implements nora's freeze → spawn → wait → release sequence.
//
// The ordering is the whole contract: the display is frozen strictly before
// the child starts and resumed strictly after it has terminated, on every
// exit path, including the one where nora itself is asked to terminate.
package run

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"sync"

	"github.com/Jokler/nora/pkg/freeze"
)

// Exit codes follow the convention of wrapper tools like env and timeout, so
// scripts can tell a nora failure from a child failure.
const (
	// ExitFailure means nora itself failed: the display could not be
	// reached or frozen, or waiting on the child broke.
	ExitFailure = 125
	// ExitCannotRun means the child executable exists but did not start.
	ExitCannotRun = 126
	// ExitNotFound means the child executable was not found.
	ExitNotFound = 127

	// exitSignal is the base for children killed by signal N -> 128+N.
	exitSignal = 128
)

// conn and guard are the orchestrator's view of the display layer. The
// X11 implementation lives in pkg/freeze; tests substitute recording fakes.
type conn interface {
	Freeze() (guard, error)
	Close()
}

type guard interface {
	Release() error
}

// x11Conn adapts *freeze.Conn to the conn interface.
type x11Conn struct {
	*freeze.Conn
}

func (c x11Conn) Freeze() (guard, error) {
	g, err := c.Conn.Freeze()
	if err != nil {
		return nil, err
	}
	return g, nil
}

func connectX11(display string) (conn, error) {
	c, err := freeze.Connect(display)
	if err != nil {
		return nil, err
	}
	return x11Conn{c}, nil
}

// Options configures a run.
type Options struct {
	// Display selects the X display; empty means $DISPLAY.
	Display string
	// Logger receives diagnostics, including the release-failure warning.
	// nil discards.
	Logger *slog.Logger

	// Stdin, Stdout and Stderr become the child's stdio and carry nora's
	// own error lines. nil selects the process's own streams, which is the
	// normal passthrough mode.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// connect and signals are test seams; the zero value means the real
	// X11 connection and a fresh termination-signal subscription.
	connect func(display string) (conn, error)
	signals <-chan os.Signal
}

// Run executes argv[0] with argv[1:] while the display is frozen and returns
// the process exit code: the child's own code, 128+N for a child killed by
// signal N, or one of the Exit* codes when nora itself failed.
//
// Termination signals delivered to nora while the child runs are forwarded
// to the child verbatim; nora keeps waiting and releases the freeze only
// once the child's death has been observed.
func Run(argv []string, opts Options) int {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	connect := opts.connect
	if connect == nil {
		connect = connectX11
	}

	if len(argv) == 0 {
		fmt.Fprintln(stderr, "nora: no command given")
		return ExitFailure
	}

	c, err := connect(opts.Display)
	if err != nil {
		fmt.Fprintf(stderr, "nora: %v\n", err)
		return ExitFailure
	}
	defer c.Close()

	// Subscribe before freezing: from here until release, termination
	// signals queue for forwarding instead of killing the wrapper.
	sigs := opts.signals
	if sigs == nil {
		ch := make(chan os.Signal, 4)
		signal.Notify(ch, forwardedSignals...)
		defer signal.Stop(ch)
		sigs = ch
	}

	g, err := c.Freeze()
	if err != nil {
		fmt.Fprintf(stderr, "nora: freeze display: %v\n", err)
		return ExitFailure
	}
	log.Debug("display frozen", "display", opts.Display)

	release := releaseOnce(g, log)
	defer release()

	return runChild(argv, opts, sigs, stderr, log, release)
}

// releaseOnce wraps g.Release so the freeze is dropped exactly once, at the
// earliest caller: explicitly before a failure is reported, or deferred on
// the way out of Run.
func releaseOnce(g guard, log *slog.Logger) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			if err := g.Release(); err != nil {
				log.Warn("resume failed; the display unfreezes when nora's connection closes", "error", err)
				return
			}
			log.Debug("display released")
		})
	}
}

// runChild starts argv as a child sharing nora's stdio, forwards termination
// signals to it, and blocks until it exits. release runs before any failure
// is reported.
func runChild(argv []string, opts Options, sigs <-chan os.Signal, stderr io.Writer, log *slog.Logger, release func()) int {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		release()
		fmt.Fprintf(stderr, "nora: %v\n", err)
		// ENOENT on an explicit path is still not-found, not cannot-run.
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return ExitNotFound
		}
		return ExitCannotRun
	}
	log.Debug("child started", "pid", cmd.Process.Pid, "command", argv[0])

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	for {
		select {
		case sig := <-sigs:
			// Relay and keep waiting; the run ends only when the
			// child does.
			log.Debug("forwarding signal", "signal", sig.String())
			if err := cmd.Process.Signal(sig); err != nil {
				log.Warn("could not forward signal", "signal", sig.String(), "error", err)
			}
		case err := <-done:
			release()
			return exitCode(err, stderr)
		}
	}
}

// exitCode maps the wait result onto nora's exit status.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if sig, ok := termSignal(exitErr); ok {
			return exitSignal + sig
		}
		return exitErr.ExitCode()
	}
	// The wait itself failed, not the child.
	fmt.Fprintf(stderr, "nora: wait for child: %v\n", err)
	return ExitFailure
}
