package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucidiot/usda-go/internal/schemas"
)

var validateReportType string

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check saved responses against the expected response schema",
	Long:  "Validate runs the embedded JSON Schema over raw response files without decoding them, reporting every offending field path.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateReportType, "report-type", "food", "Schema to validate against: food or nutrient")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	var validate func(string) error
	switch validateReportType {
	case "food":
		validate = schemas.ValidateFoodReport
	case "nutrient":
		validate = schemas.ValidateNutrientReport
	default:
		return fmt.Errorf("unknown report type %q (expected food or nutrient)", validateReportType)
	}

	failed := false
	for _, path := range args {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := validate(string(raw)); err != nil {
			failed = true
			fmt.Printf("%s: %v\n", path, err)
			continue
		}
		fmt.Printf("%s: OK\n", path)
	}
	if failed {
		return fmt.Errorf("one or more files failed schema validation")
	}
	return nil
}
