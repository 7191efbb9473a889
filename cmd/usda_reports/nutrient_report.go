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

var nutrientReportCmd = &cobra.Command{
	Use:   "nutrient-report FILE...",
	Short: "Decode one or more saved nutrient report responses",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNutrientReport,
}

func init() {
	rootCmd.AddCommand(nutrientReportCmd)
}

func runNutrientReport(_ *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}
	return renderFiles(args, cfg, renderNutrientReport)
}

func renderNutrientReport(raw []byte, cfg *config.Config) (string, error) {
	if cfg.ValidateSchema {
		if err := schemas.ValidateNutrientReport(string(raw)); err != nil {
			return "", err
		}
	}

	var data parsing.ResponseData
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", fmt.Errorf("failed to parse response JSON: %w", err)
	}

	report, err := parsing.ParseNutrientReport(data)
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
		fmt.Fprintf(&buf, "Decoded nutrient report covering %d foods\n", len(report.Foods))
	}
	observability.NewPrinter(&buf).PrintNutrientReport(report)
	return buf.String(), nil
}
