// Package types provides type definitions for the domain objects built from
// USDA Nutrient Database API responses.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ReportType classifies a food report response. The upstream API returns it
// as a free-form string, so the set stays open: unknown values are kept
// as-is rather than rejected.
type ReportType string

const (
	ReportTypeBasic      ReportType = "Basic"
	ReportTypeStatistics ReportType = "Statistics"
	ReportTypeFull       ReportType = "Full"
)

// CarriesFoodGroup reports whether responses of this report type include the
// food group field. Basic and Statistics reports omit it; every other type,
// including ones this package does not know about, carries it.
func (t ReportType) CarriesFoodGroup() bool {
	return t != ReportTypeBasic && t != ReportTypeStatistics
}
