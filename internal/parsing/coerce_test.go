package parsing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatField_AcceptedEncodings(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{name: "json number", value: 28.35, want: 28.35},
		{name: "int", value: 28, want: 28},
		{name: "json.Number", value: json.Number("28.35"), want: 28.35},
		{name: "quoted number", value: "28.35", want: 28.35},
		{name: "quoted number with spaces", value: " 28.35 ", want: 28.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := floatField(ResponseData{"v": tt.value}, "", "v")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntField_AcceptedEncodings(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{name: "json number", value: 208.0, want: 208},
		{name: "zero-padded string", value: "01009", want: 1009},
		{name: "json.Number", value: json.Number("208"), want: 208},
		{name: "truncated float", value: 208.9, want: 208},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := intField(ResponseData{"v": tt.value}, "", "v")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringField_StringifiesNumbers(t *testing.T) {
	got, err := stringField(ResponseData{"v": 1.5}, "", "v")
	require.NoError(t, err)
	assert.Equal(t, "1.5", got)
}

func TestCoerce_RejectedValues(t *testing.T) {
	data := ResponseData{"v": []any{}}

	_, err := floatField(data, "report", "v")
	var coercionErr *CoercionError
	require.ErrorAs(t, err, &coercionErr)
	assert.Equal(t, "report", coercionErr.Path)

	_, err = intField(data, "report", "v")
	require.ErrorAs(t, err, &coercionErr)

	_, err = stringField(data, "report", "v")
	require.ErrorAs(t, err, &coercionErr)
}

func TestCoerce_ErrorMessagesNameTheField(t *testing.T) {
	_, err := floatField(ResponseData{}, "report.food", "value")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"value"`)
	assert.Contains(t, err.Error(), "report.food")
}
