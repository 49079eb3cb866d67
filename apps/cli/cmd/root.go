package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "affirm",
	Short: "Assertion and test-metadata tooling for Go test suites.",
	Long: `affirm inspects test routines and their markers without running
anything: markers are directive comments on declarations, read straight
from source. Use it to validate marker configuration, list what is
attached where, and browse recorded suite runs.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitUsageError)
	}
}

func init() {
	rootCmd.AddCommand(vetCmd)
	rootCmd.AddCommand(markersCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}
