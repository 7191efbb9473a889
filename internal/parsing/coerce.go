package parsing

import (
	"encoding/json"
	"strconv"
	"strings"
)

// lookup fetches a required key from the response data.
func lookup(data ResponseData, path, field string) (any, error) {
	value, ok := data[field]
	if !ok {
		return nil, &MissingFieldError{Path: path, Field: field}
	}
	return value, nil
}

// floatField fetches a required key and coerces it to float64. The API is
// inconsistent about numeric encoding: values arrive as JSON numbers or as
// quoted strings depending on the endpoint.
func floatField(data ResponseData, path, field string) (float64, error) {
	raw, err := lookup(data, path, field)
	if err != nil {
		return 0, err
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, &CoercionError{Path: path, Field: field, Value: raw, Target: "float64", Cause: err}
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, &CoercionError{Path: path, Field: field, Value: raw, Target: "float64", Cause: err}
		}
		return f, nil
	default:
		return 0, &CoercionError{Path: path, Field: field, Value: raw, Target: "float64"}
	}
}

// intField fetches a required key and coerces it to int. Food and nutrient
// IDs arrive as zero-padded strings ("01009") on some endpoints and as
// numbers on others.
func intField(data ResponseData, path, field string) (int, error) {
	raw, err := lookup(data, path, field)
	if err != nil {
		return 0, err
	}
	switch v := raw.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, &CoercionError{Path: path, Field: field, Value: raw, Target: "int", Cause: err}
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, &CoercionError{Path: path, Field: field, Value: raw, Target: "int", Cause: err}
		}
		return i, nil
	default:
		return 0, &CoercionError{Path: path, Field: field, Value: raw, Target: "int"}
	}
}

// stringField fetches a required key and coerces it to string.
func stringField(data ResponseData, path, field string) (string, error) {
	raw, err := lookup(data, path, field)
	if err != nil {
		return "", err
	}
	switch v := raw.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", &CoercionError{Path: path, Field: field, Value: raw, Target: "string"}
	}
}

// mapField fetches a required key holding a nested JSON object.
func mapField(data ResponseData, path, field string) (ResponseData, error) {
	raw, err := lookup(data, path, field)
	if err != nil {
		return nil, err
	}
	nested, ok := raw.(map[string]any)
	if !ok {
		return nil, &CoercionError{Path: path, Field: field, Value: raw, Target: "object"}
	}
	return nested, nil
}

// sliceField fetches a required key holding a JSON array.
func sliceField(data ResponseData, path, field string) ([]any, error) {
	raw, err := lookup(data, path, field)
	if err != nil {
		return nil, err
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, &CoercionError{Path: path, Field: field, Value: raw, Target: "array"}
	}
	return items, nil
}

// objectAt asserts that one element of a JSON array is an object.
func objectAt(raw any, path string) (ResponseData, error) {
	entry, ok := raw.(map[string]any)
	if !ok {
		return nil, &CoercionError{Path: path, Field: "(element)", Value: raw, Target: "object"}
	}
	return entry, nil
}
