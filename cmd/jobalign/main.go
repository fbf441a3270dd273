// Package main provides the entry point for the JobAlign CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobalign",
	Short: "Résumé / job-description matching assistant",
	Long:  "JobAlign scores a résumé against multiple job descriptions via a structured matching service, validates the returned report, and exports a tailored Word résumé draft.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
