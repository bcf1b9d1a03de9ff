package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jokler/nora/internal/config"
	"github.com/Jokler/nora/internal/run"
)

var execCmd = &cobra.Command{
	Use:   "exec [flags] -- <command> [args...]",
	Short: "Run a command with screen redraw suspended",
	Long: `Freeze the X display, run the command with nora's own stdio, and
resume redraw once it exits. Interrupt, terminate and hang-up signals
are forwarded to the command instead of stopping nora.

The exit status is the command's own exit code, or 128+N if it died to
signal N. nora reserves 125 for its own failures (display unreachable
or not freezable), 126 for a command that was found but did not start,
and 127 for a command that was not found.

Example:
  nora exec -- flameshot gui
  nora exec --display :1 -- scrot -s`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

var (
	execConfigPath string
	execDisplay    string
	execVerbose    bool
)

func init() {
	rootCmd.AddCommand(execCmd)
	addExecFlags(execCmd)
}

// addExecFlags registers the exec flag set; the root command carries the
// same set so the implicit form accepts the same flags.
func addExecFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&execConfigPath, "config", "", "Configuration file path (default: auto-discover .nora/config.yaml)")
	cmd.Flags().StringVar(&execDisplay, "display", "", "X display to freeze (default: $DISPLAY)")
	cmd.Flags().BoolVar(&execVerbose, "verbose", false, "Show freeze and signal logs for debugging")
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(execConfigPath, execDisplay, execVerbose)
	if err != nil {
		return err
	}

	code := run.Run(args, run.Options{
		Display: cfg.Display,
		Logger:  newLogger(cfg.Verbose),
	})
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
