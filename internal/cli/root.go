// Package cli provides the Cobra command structure for rpn35.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/rpn35/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root rpn35 command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "rpn35",
		Short: "Tools for HP-35s program text",
		Long: `rpn35 works on HP-35s-style RPN calculator programs written one
instruction per line.

It converts between the internal syntax and the numbered MoHPC exchange
format, estimates the calculator memory a program occupies, and resolves
program-line addresses (GTO/XEQ targets, free-form specs) to buffer
lines for editor integration.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newMemCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newGotoCommand())
	rootCmd.AddCommand(newJumpCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
