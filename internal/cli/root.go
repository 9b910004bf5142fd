// Package cli defines the quotewell command tree.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/quotewell/quotewell/internal/version"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quotewell",
	Short: "Quotewell - random and searchable quotations over HTTP",
	Long: `Quotewell serves random and searchable quotations from a fixed
in-memory corpus, filtered by author, tag, and length.

The corpus is loaded once at startup and never mutated; every request
operates on read-only snapshots of it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("quotewell %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
	},
}

func init() {
	// Local overrides for ENV and config ${VAR} expansion; absence is fine.
	cobra.OnInitialize(func() { _ = godotenv.Load() })

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
}
