package observability

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucidiot/usda-go/internal/types"
)

func TestPrintFoodReport_IncludesHeaderFields(t *testing.T) {
	group := "Dairy and Egg Products"
	unit := "kcal"
	value := 403.0
	report := &types.FoodReport{
		Food: types.Food{ID: 1009, Name: "Cheese, cheddar"},
		Type: types.ReportTypeFull,
		Nutrients: []types.Nutrient{
			{
				ID: 208, Name: "Energy", Unit: &unit, Value: &value,
				Measures: []types.Measure{{Quantity: 1, GramEquivalent: 28.35, Label: "oz", Value: 114}},
			},
		},
		FoodGroup: &group,
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintFoodReport(report)

	output := buf.String()
	assert.Contains(t, output, "Food Report")
	assert.Contains(t, output, "Cheese, cheddar")
	assert.Contains(t, output, "Full")
	assert.Contains(t, output, "Dairy and Egg Products")
	assert.Contains(t, output, "Energy: 403 kcal")
}

func TestPrintFoodReport_TruncatesLongNutrientLists(t *testing.T) {
	report := &types.FoodReport{
		Food: types.Food{ID: 1009, Name: "Cheese"},
		Type: types.ReportTypeBasic,
	}
	for i := 0; i < 8; i++ {
		report.Nutrients = append(report.Nutrients, types.Nutrient{
			ID:   200 + i,
			Name: fmt.Sprintf("Nutrient %d", i),
		})
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintFoodReport(report)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintFoodReport_NilReportWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintFoodReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintNutrientReport_OrdersFoodsByID(t *testing.T) {
	report := &types.NutrientReport{
		Foods: map[types.Food][]types.Nutrient{
			{ID: 9003, Name: "Apples, raw"}:     {{ID: 208, Name: "Energy"}},
			{ID: 1009, Name: "Cheese, cheddar"}: {{ID: 208, Name: "Energy"}},
		},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintNutrientReport(report)

	output := buf.String()
	require.Contains(t, output, "Cheese, cheddar")
	require.Contains(t, output, "Apples, raw")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Cheese")), bytes.Index(buf.Bytes(), []byte("Apples")))
}
