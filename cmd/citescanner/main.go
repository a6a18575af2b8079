// Package main provides the citescanner CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "citescanner",
	Short: "Scrape scholarly reference data and submit it to a collector",
	Long: `citescanner classifies scholarly article pages against a set of
publisher profiles, extracts head bibliographic metadata and the cited
reference list, and submits the result to a collector service. Every
successful submission is recorded locally so the same page is never
sent twice.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(modeCmd)
}
