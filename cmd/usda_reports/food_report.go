package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucidiot/usda-go/internal/config"
	"github.com/lucidiot/usda-go/internal/observability"
	"github.com/lucidiot/usda-go/internal/parsing"
	"github.com/lucidiot/usda-go/internal/schemas"
)

var foodReportCmd = &cobra.Command{
	Use:   "food-report FILE...",
	Short: "Decode one or more saved food report responses",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFoodReport,
}

func init() {
	rootCmd.AddCommand(foodReportCmd)
}

func runFoodReport(_ *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}
	return renderFiles(args, cfg, renderFoodReport)
}

func renderFoodReport(raw []byte, cfg *config.Config) (string, error) {
	if cfg.ValidateSchema {
		if err := schemas.ValidateFoodReport(string(raw)); err != nil {
			return "", err
		}
	}

	var data parsing.ResponseData
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", fmt.Errorf("failed to parse response JSON: %w", err)
	}

	report, err := parsing.ParseFoodReport(data)
	if err != nil {
		return "", err
	}

	if cfg.Format == config.FormatJSON {
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode report: %w", err)
		}
		return string(encoded) + "\n", nil
	}

	var buf bytes.Buffer
	if cfg.Verbose {
		fmt.Fprintf(&buf, "Decoded %q report with %d nutrients\n", report.Type, len(report.Nutrients))
	}
	observability.NewPrinter(&buf).PrintFoodReport(report)
	return buf.String(), nil
}
