package messages

import (
	"errors"
	"fmt"
)

// SchemaError reports a protocol payload that does not satisfy the typed
// schema: a required field is absent, null, or has the wrong JSON type, or
// an enumeration carries a value outside its closed set. Unknown extra
// fields never produce a SchemaError — old readers must tolerate fields
// added by newer participants.
type SchemaError struct {
	// Field is the JSON field name that failed, when known.
	Field string
	// Msg describes the failure.
	Msg string
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("schema: field %q: %s", e.Field, e.Msg)
	}
	return "schema: " + e.Msg
}

// IsSchemaError returns true if err is (or wraps) a SchemaError.
func IsSchemaError(err error) bool {
	var e *SchemaError
	return errors.As(err, &e)
}
