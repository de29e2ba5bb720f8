// Package cli implements the panelmock command-line interface.
package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:          "panelmock",
	Short:        "In-memory emulator of the Zero Network panel REST API",
	Long: `panelmock serves a faithful in-memory emulation of the Zero Network
panel backend: authentication, the user self-service surface, the shop,
and the full admin API, backed by a deterministic seed dataset.

State lives only in memory and reloads from the seed on restart.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
