// Package types provides type definitions for the domain objects built from
// USDA Nutrient Database API responses.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"sort"
)

// NutrientReport represents a USDA nutrient report: a mapping from each food
// in the response to the ordered sequence of nutrients reported for it.
type NutrientReport struct {
	Foods map[Food][]Nutrient
}

// InvariantError reports a constructor-level invariant violation.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Message)
}

// NewNutrientReport builds a NutrientReport after checking that no entry is
// a zero value. The static types already guarantee every key is a Food and
// every element a Nutrient; zero values are the remaining way a caller can
// smuggle in an entry that was never actually decoded.
func NewNutrientReport(foods map[Food][]Nutrient) (*NutrientReport, error) {
	for food, nutrients := range foods {
		if food == (Food{}) {
			return nil, &InvariantError{Message: "nutrient report contains a zero-value food key"}
		}
		for _, nutrient := range nutrients {
			if nutrient.ID == 0 && nutrient.Name == "" {
				return nil, &InvariantError{
					Message: fmt.Sprintf("nutrient report entry for food %d contains a zero-value nutrient", food.ID),
				}
			}
		}
	}
	return &NutrientReport{Foods: foods}, nil
}

// nutrientReportEntry is the JSON shape of one food with its nutrients.
// Struct-keyed maps cannot be marshaled directly, so the report serializes
// as an array of entries ordered by food ID.
type nutrientReportEntry struct {
	Food      Food       `json:"food"`
	Nutrients []Nutrient `json:"nutrients"`
}

// MarshalJSON serializes the report as {"foods": [...]} with entries sorted
// by food ID for deterministic output.
func (r *NutrientReport) MarshalJSON() ([]byte, error) {
	entries := make([]nutrientReportEntry, 0, len(r.Foods))
	for food, nutrients := range r.Foods {
		entries = append(entries, nutrientReportEntry{Food: food, Nutrients: nutrients})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Food.ID < entries[j].Food.ID
	})
	return json.Marshal(map[string][]nutrientReportEntry{"foods": entries})
}
