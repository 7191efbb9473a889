package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNutrientReport_Valid(t *testing.T) {
	unit := "kcal"
	value := 114.0
	foods := map[Food][]Nutrient{
		{ID: 1009, Name: "Cheese, cheddar"}: {
			{ID: 208, Name: "Energy", Unit: &unit, Value: &value},
		},
	}

	report, err := NewNutrientReport(foods)
	require.NoError(t, err)
	assert.Len(t, report.Foods, 1)
}

func TestNewNutrientReport_RejectsZeroFoodKey(t *testing.T) {
	foods := map[Food][]Nutrient{
		{}: {{ID: 208, Name: "Energy"}},
	}

	_, err := NewNutrientReport(foods)

	var invariantErr *InvariantError
	require.ErrorAs(t, err, &invariantErr)
	assert.Contains(t, invariantErr.Error(), "zero-value food")
}

func TestNewNutrientReport_RejectsZeroNutrient(t *testing.T) {
	foods := map[Food][]Nutrient{
		{ID: 1009, Name: "Cheese"}: {{}},
	}

	_, err := NewNutrientReport(foods)

	var invariantErr *InvariantError
	require.ErrorAs(t, err, &invariantErr)
	assert.Contains(t, invariantErr.Error(), "zero-value nutrient")
}

func TestFood_StructuralEqualityAsMapKey(t *testing.T) {
	// Two foods decoded from separate payloads collide when ID and Name
	// match.
	foods := map[Food][]Nutrient{}
	foods[Food{ID: 1009, Name: "Cheese"}] = []Nutrient{{ID: 208, Name: "Energy"}}
	foods[Food{ID: 1009, Name: "Cheese"}] = []Nutrient{{ID: 203, Name: "Protein"}}

	require.Len(t, foods, 1)
	assert.Equal(t, 203, foods[Food{ID: 1009, Name: "Cheese"}][0].ID)
}

func TestNutrientReport_MarshalJSONSortsByFoodID(t *testing.T) {
	report, err := NewNutrientReport(map[Food][]Nutrient{
		{ID: 9003, Name: "Apples, raw"}:     {{ID: 208, Name: "Energy"}},
		{ID: 1009, Name: "Cheese, cheddar"}: {{ID: 208, Name: "Energy"}},
		{ID: 11124, Name: "Carrots, raw"}:   {{ID: 208, Name: "Energy"}},
	})
	require.NoError(t, err)

	encoded, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded struct {
		Foods []struct {
			Food Food `json:"food"`
		} `json:"foods"`
	}
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	require.Len(t, decoded.Foods, 3)
	assert.Equal(t, 1009, decoded.Foods[0].Food.ID)
	assert.Equal(t, 9003, decoded.Foods[1].Food.ID)
	assert.Equal(t, 11124, decoded.Foods[2].Food.ID)
}

func TestDomainStringers(t *testing.T) {
	assert.Equal(t, "Cheese", Food{ID: 1009, Name: "Cheese"}.String())
	assert.Equal(t, "Energy", Nutrient{ID: 208, Name: "Energy"}.String())
	assert.Equal(t, "oz", Measure{Label: "oz"}.String())
}
