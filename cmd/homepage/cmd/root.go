package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "homepage",
	Short: "Serve the home page with its like counter",
	Long: `homepage serves a server-rendered home page: a header, a fixed list of
names and a like button whose counter is redrawn in place with htmx.

Available commands:
  serve     Run the HTTP server
  render    Write a static snapshot of the initial page
  version   Print the version

Use "homepage [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
