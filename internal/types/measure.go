// Package types provides type definitions for the domain objects built from
// USDA Nutrient Database API responses.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Measure represents a single unit-of-measurement entry for a nutrient,
// e.g. "1 oz = 28.35 g"
type Measure struct {
	Quantity       float64 `json:"qty"`
	GramEquivalent float64 `json:"eqv"`
	Label          string  `json:"label"`
	Value          float64 `json:"value"`
}

func (m Measure) String() string {
	return m.Label
}
