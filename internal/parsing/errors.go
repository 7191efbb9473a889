package parsing

import "fmt"

// MissingFieldError reports a required key absent from the response data.
type MissingFieldError struct {
	// Path locates the enclosing object, e.g. "report.food"; empty at the
	// top level.
	Path  string
	Field string
}

func (e *MissingFieldError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("missing field %q in %s", e.Field, e.Path)
	}
	return fmt.Sprintf("missing field %q", e.Field)
}

// CoercionError reports a value that is present but cannot be coerced to
// the expected type.
type CoercionError struct {
	Path   string
	Field  string
	Value  any
	Target string
	Cause  error
}

func (e *CoercionError) Error() string {
	field := e.Field
	if e.Path != "" {
		field = e.Path + "." + e.Field
	}
	if e.Cause != nil {
		return fmt.Sprintf("cannot coerce %s value %v (%T) to %s: %v", field, e.Value, e.Value, e.Target, e.Cause)
	}
	return fmt.Sprintf("cannot coerce %s value %v (%T) to %s", field, e.Value, e.Value, e.Target)
}

func (e *CoercionError) Unwrap() error {
	return e.Cause
}
