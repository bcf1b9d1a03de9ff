package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "0.2.0"

// knownSubcommands lists all nora subcommands to distinguish from external commands
var knownSubcommands = map[string]bool{
	"exec":       true,
	"check":      true,
	"help":       true,
	"completion": true,
}

// flagsTakingValue lists flags whose value may follow as a separate argument,
// so the rewrite does not mistake the value for the start of the command.
var flagsTakingValue = map[string]bool{
	"--config":  true,
	"--display": true,
}

var rootCmd = &cobra.Command{
	Use:   "nora [flags] <command> [args...]",
	Short: "Freeze the screen while a command runs",
	Long: `nora suspends all redraw on the X display, runs the given command,
and resumes redraw the moment it exits. Screenshot tools run under nora
capture one stable frame instead of their own selection UI.

Example:
  nora flameshot gui
  nora scrot -s
  nora --display :1 import screen.png`,
	Version: version,
	// When args are provided, run exec behavior
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runExec(cmd, args)
	},
	// Disable Cobra's built-in "unknown command" error for non-subcommand args
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() {
	// Preprocess args: if first non-flag arg isn't a known subcommand,
	// treat everything after flags as the command to run
	args := os.Args[1:]
	if shouldRewriteArgs(args) {
		// Find where flags end and command begins, then add "--" separator
		args = insertArgSeparator(args)
		rootCmd.SetArgs(args)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "nora: %v\n", err)
		os.Exit(2)
	}
}

// shouldRewriteArgs checks if we need to rewrite args for implicit exec
func shouldRewriteArgs(args []string) bool {
	skipValue := false
	for _, arg := range args {
		if skipValue {
			// Value of the preceding flag, not the command
			skipValue = false
			continue
		}
		if arg == "--" {
			// Explicit separator, no rewrite needed
			return false
		}
		if strings.HasPrefix(arg, "-") {
			skipValue = flagsTakingValue[arg]
			continue
		}
		// First non-flag argument
		return !knownSubcommands[arg]
	}
	return false
}

// insertArgSeparator adds "--" before the first non-flag argument
func insertArgSeparator(args []string) []string {
	var result []string
	skipValue := false

	for i, arg := range args {
		if skipValue {
			skipValue = false
			result = append(result, arg)
			continue
		}
		if strings.HasPrefix(arg, "-") {
			skipValue = flagsTakingValue[arg]
			result = append(result, arg)
			continue
		}
		// Insert separator before first non-flag arg
		result = append(result, "--")
		result = append(result, args[i:]...)
		break
	}

	return result
}

func init() {
	// Add exec flags to root command so `nora <cmd>` works like `nora exec -- <cmd>`
	addExecFlags(rootCmd)
}
