// Package cli provides the Cobra command structure for mdfix.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdfix/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdfix command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdfix",
		Short: "A targeted fixer for the project's Markdown documents",
		Long: `mdfix applies curated, ordered rewrite rules to the Markdown documents
this repository maintains. Each document type has its own rule list,
because each accumulates its own class of drift: FAQs grow duplicate
sub-headings and stale anchors, contribution guides grow over-length
lines and bare code fences. Unknown documents get only the two rules
that are safe on any text.`,
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

	rootCmd.AddCommand(newFixCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
