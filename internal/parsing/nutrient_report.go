package parsing

import (
	"fmt"

	"github.com/lucidiot/usda-go/internal/types"
)

// ParseNutrientReport decodes a nutrient report response of the shape
// {"report": {"foods": [{...}, ...]}}.
//
// Each decoded nutrient carries exactly one synthesized Measure. Unlike a
// food report, where measures arrive as self-contained objects, the
// nutrient report spreads the measurement across two levels: quantity and
// label come from the food entry (its serving weight and measure label),
// while the gram equivalent and value come from the nutrient entry.
func ParseNutrientReport(data ResponseData) (*types.NutrientReport, error) {
	report, err := mapField(data, "", "report")
	if err != nil {
		return nil, err
	}
	rawFoods, err := sliceField(report, "report", "foods")
	if err != nil {
		return nil, err
	}

	foods := make(map[types.Food][]types.Nutrient, len(rawFoods))
	for i, raw := range rawFoods {
		path := fmt.Sprintf("report.foods[%d]", i)
		entry, err := objectAt(raw, path)
		if err != nil {
			return nil, err
		}
		food, err := parseFoodAt(entry, path)
		if err != nil {
			return nil, err
		}
		nutrients, err := parseFoodNutrients(entry, path)
		if err != nil {
			return nil, err
		}
		foods[food] = nutrients
	}
	return types.NewNutrientReport(foods)
}

func parseFoodNutrients(entry ResponseData, path string) ([]types.Nutrient, error) {
	rawNutrients, err := sliceField(entry, path, "nutrients")
	if err != nil {
		return nil, err
	}
	if len(rawNutrients) == 0 {
		return []types.Nutrient{}, nil
	}

	// The food-level serving weight and measure label are only consulted
	// when there is a nutrient to attach them to.
	weight, err := floatField(entry, path, "weight")
	if err != nil {
		return nil, err
	}
	label, err := stringField(entry, path, "measure")
	if err != nil {
		return nil, err
	}

	nutrients := make([]types.Nutrient, 0, len(rawNutrients))
	for i, raw := range rawNutrients {
		nutrientPath := fmt.Sprintf("%s.nutrients[%d]", path, i)
		rawNutrient, err := objectAt(raw, nutrientPath)
		if err != nil {
			return nil, err
		}
		id, err := intField(rawNutrient, nutrientPath, "nutrient_id")
		if err != nil {
			return nil, err
		}
		name, err := stringField(rawNutrient, nutrientPath, "nutrient")
		if err != nil {
			return nil, err
		}
		unit, err := stringField(rawNutrient, nutrientPath, "unit")
		if err != nil {
			return nil, err
		}
		value, err := floatField(rawNutrient, nutrientPath, "value")
		if err != nil {
			return nil, err
		}
		gramEquivalent, err := floatField(rawNutrient, nutrientPath, "gm")
		if err != nil {
			return nil, err
		}
		nutrients = append(nutrients, types.Nutrient{
			ID:    id,
			Name:  name,
			Unit:  &unit,
			Value: &value,
			Measures: []types.Measure{{
				Quantity:       weight,
				GramEquivalent: gramEquivalent,
				Label:          label,
				Value:          value,
			}},
		})
	}
	return nutrients, nil
}
