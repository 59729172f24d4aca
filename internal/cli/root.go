// Package cli provides the Cobra command structure for gosemlint.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gosemlint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gosemlint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gosemlint",
		Short: "A semantic HTML linter and accessibility auditor",
		Long: `gosemlint audits HTML documents for semantic structure and
accessibility issues.

It parses documents with an HTML5-compliant parser and checks them against
a rule system covering landmark structure, heading hierarchy, sectioning,
interactive element semantics, and media accessibility. Results are
reported per element with a stable path into the document tree.`,
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
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
