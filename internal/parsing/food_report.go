package parsing

import (
	"fmt"

	"github.com/lucidiot/usda-go/internal/types"
)

// ParseFoodReport decodes a food report response of the shape
// {"report": {"type": ..., "food": {...}, "footnotes": ...}}.
func ParseFoodReport(data ResponseData) (*types.FoodReport, error) {
	report, err := mapField(data, "", "report")
	if err != nil {
		return nil, err
	}
	rawType, err := stringField(report, "report", "type")
	if err != nil {
		return nil, err
	}
	reportType := types.ReportType(rawType)

	rawFood, err := mapField(report, "report", "food")
	if err != nil {
		return nil, err
	}
	food, err := parseFoodAt(rawFood, "report.food")
	if err != nil {
		return nil, err
	}

	// Basic and Statistics responses never carry "fg"; every other report
	// type must.
	var foodGroup *string
	if reportType.CarriesFoodGroup() {
		fg, err := stringField(rawFood, "report.food", "fg")
		if err != nil {
			return nil, err
		}
		foodGroup = &fg
	}

	nutrients, err := parseReportNutrients(rawFood)
	if err != nil {
		return nil, err
	}

	footnotes, err := lookup(report, "report", "footnotes")
	if err != nil {
		return nil, err
	}

	return &types.FoodReport{
		Food:      food,
		Nutrients: nutrients,
		Type:      reportType,
		Footnotes: footnotes,
		FoodGroup: foodGroup,
	}, nil
}

// parseReportNutrients decodes the enriched nutrient entries of a food
// report, each with group, unit, value and its own measurement list.
func parseReportNutrients(rawFood ResponseData) ([]types.Nutrient, error) {
	rawNutrients, err := sliceField(rawFood, "report.food", "nutrients")
	if err != nil {
		return nil, err
	}
	nutrients := make([]types.Nutrient, 0, len(rawNutrients))
	for i, raw := range rawNutrients {
		path := fmt.Sprintf("report.food.nutrients[%d]", i)
		entry, err := objectAt(raw, path)
		if err != nil {
			return nil, err
		}
		id, err := intField(entry, path, "nutrient_id")
		if err != nil {
			return nil, err
		}
		name, err := stringField(entry, path, "name")
		if err != nil {
			return nil, err
		}
		group, err := stringField(entry, path, "group")
		if err != nil {
			return nil, err
		}
		unit, err := stringField(entry, path, "unit")
		if err != nil {
			return nil, err
		}
		value, err := floatField(entry, path, "value")
		if err != nil {
			return nil, err
		}
		measures, err := parseMeasures(entry, path)
		if err != nil {
			return nil, err
		}
		nutrients = append(nutrients, types.Nutrient{
			ID:       id,
			Name:     name,
			Group:    &group,
			Unit:     &unit,
			Value:    &value,
			Measures: measures,
		})
	}
	return nutrients, nil
}

func parseMeasures(entry ResponseData, path string) ([]types.Measure, error) {
	rawMeasures, err := sliceField(entry, path, "measures")
	if err != nil {
		return nil, err
	}
	measures := make([]types.Measure, 0, len(rawMeasures))
	for i, raw := range rawMeasures {
		measurePath := fmt.Sprintf("%s.measures[%d]", path, i)
		rawMeasure, err := objectAt(raw, measurePath)
		if err != nil {
			return nil, err
		}
		measure, err := parseMeasureAt(rawMeasure, measurePath)
		if err != nil {
			return nil, err
		}
		measures = append(measures, measure)
	}
	return measures, nil
}
