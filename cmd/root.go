package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "backoffice",
	Short: "Hotel back-office API server",
	Long:  `backoffice is the administrative API for hotel operations: staff accounts, room inventory, rate plans, and the housekeeping workflow.`,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
