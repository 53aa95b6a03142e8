// Package main provides the CLI entry point for hsconv.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hsconv",
	Short: "Convert HS tariff-code reference data between formats",
	Long: `hsconv converts Harmonized System (HS) tariff-code reference data:
Excel workbooks to hierarchical JSON, CSV files to JSON, CSV files to
bilingual EN/VI CSV, and HS code JSON to vector embeddings.`,
}

func main() {
	// Load .env file if it exists (API keys for embed/translate providers).
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
