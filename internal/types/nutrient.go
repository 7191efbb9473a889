// Package types provides type definitions for the domain objects built from
// USDA Nutrient Database API responses.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Nutrient represents a USDA nutrient. Identity is the ID; the remaining
// fields are only populated when the nutrient appears inside a report, so
// they are modeled as pointers (or a nil slice for Measures) rather than
// zero-value sentinels.
type Nutrient struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Group    *string   `json:"group,omitempty"`
	Unit     *string   `json:"unit,omitempty"`
	Value    *float64  `json:"value,omitempty"`
	Measures []Measure `json:"measures,omitempty"`
}

func (n Nutrient) String() string {
	return n.Name
}
