// Package cmd implements the bluberry server commands.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bluberry",
	Short: "BluBerry resale API server",
	Long: "bluberry accepts items submitted for resale and lists them on eBay " +
		"through the Sell Inventory API, keeping the seller's OAuth token fresh.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(migrateCommand())
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the root command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}
