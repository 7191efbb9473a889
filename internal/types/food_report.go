// Package types provides type definitions for the domain objects built from
// USDA Nutrient Database API responses.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FoodReport represents a USDA food report: one food together with its
// nutrients, each nutrient carrying its own measurement entries.
type FoodReport struct {
	Food      Food       `json:"food"`
	Nutrients []Nutrient `json:"nutrients"`
	Type      ReportType `json:"type"`
	// Footnotes is carried verbatim from the response; the API does not
	// document a stable shape for it.
	Footnotes any     `json:"footnotes"`
	FoodGroup *string `json:"food_group,omitempty"`
}
