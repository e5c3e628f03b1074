// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

// DefaultConfigPath is the directory holding main.toml.
const DefaultConfigPath = "./etc"

var rootCmd = &cobra.Command{
	Use:   "goauth-api",
	Short: "GoAuth-API is a JSON login API with uniform error responses",
	Long: `GoAuth-API authenticates users against a local database and hands out
bearer tokens. Every failure is answered with the same JSON error envelope.`,
	Args: cobra.OnlyValidArgs,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", DefaultConfigPath, "Path to the configuration directory")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
