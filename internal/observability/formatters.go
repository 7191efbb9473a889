// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lucidiot/usda-go/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for decoded reports
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFoodReport outputs a human-readable summary of a decoded food report.
func (p *Printer) PrintFoodReport(report *types.FoodReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Food:   %s (ID %d)\n", report.Food.Name, report.Food.ID))
	sb.WriteString(fmt.Sprintf("Type:   %s\n", report.Type))
	if report.FoodGroup != nil {
		sb.WriteString(fmt.Sprintf("Group:  %s\n", *report.FoodGroup))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Nutrients (%d):\n", len(report.Nutrients)))

	for i, nutrient := range report.Nutrients {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Nutrients)-maxItemsToShow))
			break
		}
		sb.WriteString("  " + formatNutrient(nutrient) + "\n")
	}

	p.printBox("Food Report", sb.String())
}

// PrintNutrientReport outputs a human-readable summary of a decoded
// nutrient report, foods ordered by ID.
func (p *Printer) PrintNutrientReport(report *types.NutrientReport) {
	if report == nil {
		return
	}

	foods := make([]types.Food, 0, len(report.Foods))
	for food := range report.Foods {
		foods = append(foods, food)
	}
	sort.Slice(foods, func(i, j int) bool { return foods[i].ID < foods[j].ID })

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Foods (%d):\n", len(foods)))

	for _, food := range foods {
		nutrients := report.Foods[food]
		sb.WriteString(fmt.Sprintf("\n%s (ID %d)\n", food.Name, food.ID))
		for i, nutrient := range nutrients {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(nutrients)-maxItemsToShow))
				break
			}
			sb.WriteString("  " + formatNutrient(nutrient) + "\n")
		}
	}

	p.printBox("Nutrient Report", sb.String())
}

func formatNutrient(nutrient types.Nutrient) string {
	line := nutrient.Name
	if nutrient.Value != nil {
		line += fmt.Sprintf(": %g", *nutrient.Value)
		if nutrient.Unit != nil {
			line += " " + *nutrient.Unit
		}
	}
	if len(nutrient.Measures) > 0 {
		line += fmt.Sprintf(" (per %g %s)", nutrient.Measures[0].Quantity, nutrient.Measures[0].Label)
	}
	return line
}
