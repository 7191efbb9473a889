// Package parsing decodes parsed USDA Nutrient Database API responses into
// the typed domain objects of internal/types. Inputs are the nested
// map/slice/scalar structures produced by encoding/json; every decoder
// fails fast with a typed error and never returns a partially built object.
package parsing

import (
	"github.com/lucidiot/usda-go/internal/types"
)

// ResponseData is one parsed JSON object from an API response.
type ResponseData = map[string]any

// ParseFunc is the contract shared by every response decoder: one function
// from parsed response data to a fully built domain value.
type ParseFunc[T any] func(ResponseData) (T, error)

var (
	_ ParseFunc[types.Measure]  = ParseMeasure
	_ ParseFunc[types.Nutrient] = ParseNutrient
	_ ParseFunc[types.Food]     = ParseFood
)

// ParseMeasure decodes one measurement entry. All four keys are mandatory.
func ParseMeasure(data ResponseData) (types.Measure, error) {
	return parseMeasureAt(data, "")
}

func parseMeasureAt(data ResponseData, path string) (types.Measure, error) {
	quantity, err := floatField(data, path, "qty")
	if err != nil {
		return types.Measure{}, err
	}
	gramEquivalent, err := floatField(data, path, "eqv")
	if err != nil {
		return types.Measure{}, err
	}
	label, err := stringField(data, path, "label")
	if err != nil {
		return types.Measure{}, err
	}
	value, err := floatField(data, path, "value")
	if err != nil {
		return types.Measure{}, err
	}
	return types.Measure{
		Quantity:       quantity,
		GramEquivalent: gramEquivalent,
		Label:          label,
		Value:          value,
	}, nil
}

// ParseNutrient decodes a bare nutrient identity (ID and name only). The
// enriched fields — group, unit, value, measures — are never populated
// here: they are only reachable through ParseFoodReport and
// ParseNutrientReport, whose payloads carry the extra data.
func ParseNutrient(data ResponseData) (types.Nutrient, error) {
	id, err := intField(data, "", "id")
	if err != nil {
		return types.Nutrient{}, err
	}
	name, err := stringField(data, "", "name")
	if err != nil {
		return types.Nutrient{}, err
	}
	return types.Nutrient{ID: id, Name: name}, nil
}

// ParseFood decodes a food identity. The ID lives under "id" in current
// responses and under "ndbno" in the legacy shape; "id" wins when both are
// present. Both shapes are still served, so the fallback must stay.
func ParseFood(data ResponseData) (types.Food, error) {
	return parseFoodAt(data, "")
}

func parseFoodAt(data ResponseData, path string) (types.Food, error) {
	name, err := stringField(data, path, "name")
	if err != nil {
		return types.Food{}, err
	}
	idField := "id"
	if _, ok := data["id"]; !ok {
		idField = "ndbno"
	}
	id, err := intField(data, path, idField)
	if err != nil {
		return types.Food{}, err
	}
	return types.Food{ID: id, Name: name}, nil
}
