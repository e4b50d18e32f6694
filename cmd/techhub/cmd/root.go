package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nfrund/techhub/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "techhub",
	Short: "TechHub landing page",
	Long: `TechHub serves the TechHub landing page, or renders it to a file.

Available commands:
  serve     Run the HTTP server
  render    Write the page as a standalone HTML file
  version   Print the version

Logging is configured with LOG_FORMAT (text|json) and LOG_LEVEL.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.New()
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
