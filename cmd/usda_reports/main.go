// Package main provides the entry point for the USDA report decoding CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath     string
	jsonOutput     bool
	verbose        bool
	validateSchema bool
)

var rootCmd = &cobra.Command{
	Use:   "usda_reports",
	Short: "USDA Nutrient Database report decoder",
	Long:  "usda_reports decodes saved USDA Nutrient Database API responses into typed food and nutrient reports.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit decoded reports as JSON")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print detailed decode information")
	rootCmd.PersistentFlags().BoolVar(&validateSchema, "validate", false, "Validate inputs against the response schema before decoding")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
