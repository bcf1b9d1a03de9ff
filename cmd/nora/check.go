package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jokler/nora/internal/config"
	"github.com/Jokler/nora/internal/run"
	"github.com/Jokler/nora/pkg/freeze"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe the display connection without freezing anything",
	Long: `Connect to the X display, report what nora sees, and disconnect.
No grab is taken, so the screen keeps updating throughout.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&execConfigPath, "config", "", "Configuration file path (default: auto-discover .nora/config.yaml)")
	checkCmd.Flags().StringVar(&execDisplay, "display", "", "X display to probe (default: $DISPLAY)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(execConfigPath, execDisplay, false)
	if err != nil {
		return err
	}

	c, err := freeze.Connect(cfg.Display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✖ %v\n", err)
		os.Exit(run.ExitFailure)
	}
	defer c.Close()

	display := cfg.Display
	if display == "" {
		display = os.Getenv("DISPLAY")
	}
	major, minor := c.ProtocolVersion()
	width, height := c.ScreenSize()

	fmt.Printf("✓ Connected to display %s\n", display)
	fmt.Printf("  Vendor: %s\n", c.Vendor())
	fmt.Printf("  Protocol version: %d.%d\n", major, minor)
	fmt.Printf("  Screen: %dx%d\n", width, height)

	return nil
}
