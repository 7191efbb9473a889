// Package types provides type definitions for the domain objects built from
// USDA Nutrient Database API responses.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Food represents a USDA food item. The struct is comparable so it can key
// the NutrientReport mapping; equality is structural over ID and Name, which
// means two foods decoded from separate payloads compare equal when both
// fields match.
type Food struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (f Food) String() string {
	return f.Name
}
