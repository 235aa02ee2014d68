// Package cli wires the cobra command tree for the cw binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/avilla-dev/cursor-wrapped/internal/logger"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "cw",
	Short: "Cursor Wrapped: a year-in-review for your Cursor AI usage",
	Long: `cw aggregates a Cursor usage export into a year-in-review summary:
totals, model breakdown, peak times, cache efficiency and token statistics.

The summary is rendered to the console, persisted as JSON, and optionally
published as a static HTML page or explored in an interactive terminal UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetDebug(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}
