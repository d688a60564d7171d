// Package commands implements the embodydump CLI's command tree.
//
// embodydump is ambient tooling around the pure embodycodec core (the
// protocol's scope explicitly excludes "any CLI ... surface"): it owns
// the file I/O and
// presentation, while every byte-level decision stays inside embodycodec.
package commands

import (
	"github.com/spf13/cobra"
)

// rootCmd is the base command, grounded in marmos91-dittofs's
// cmd/dfsctl/commands.rootCmd: a silent-usage/silent-errors cobra.Command
// with subcommands added via init().
var rootCmd = &cobra.Command{
	Use:   "embodydump",
	Short: "Inspect and decode EmBody/HyperSension wire captures",
	Long: `embodydump decodes raw byte captures of the EmBody/HyperSension
wearable-device protocol into human-readable frames, and prints the
attribute and enum registries the codec uses to interpret them.

Use "embodydump [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
