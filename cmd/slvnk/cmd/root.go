package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "slvnk",
	Short: "SLVNK Matrimony web frontend",
	Long: `slvnk serves the SLVNK Matrimony website: the public pages, the
member search and profile area, and the admin dashboard, all rendered
server-side against the SLVNK backend API.`,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
