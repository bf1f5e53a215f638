package messages

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Decode parses a payload received off the wire into a message type.
// Missing or mistyped required fields fail with a SchemaError; unrecognized
// extra fields are silently ignored so that old readers keep working when
// newer participants add fields.
func Decode[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, asSchemaError(err)
	}
	return v, nil
}

// Encode serializes a message to its canonical wire form. Encoding the same
// logical value twice always produces byte-identical output (struct fields
// in declared order, map keys sorted), so the result is safe to hash for
// change detection.
func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// unmarshalStrict decodes data into v after verifying that every required
// field is present and non-null. It is the shared body of the payload types'
// UnmarshalJSON methods; v is an alias type so the nested field types still
// run their own decoding.
func unmarshalStrict(data []byte, v any, required ...string) error {
	return unmarshalRequired(data, v, required, nil)
}

// unmarshalRequired is unmarshalStrict with a second key list for fields
// that must be present but whose value may be JSON null (arbitrary-value
// fields like PipelineStageResult.Output).
func unmarshalRequired(data []byte, v any, nonNull, present []string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &SchemaError{Msg: "payload is not a JSON object"}
	}
	for _, key := range nonNull {
		val, ok := raw[key]
		if !ok {
			return &SchemaError{Field: key, Msg: "missing required field"}
		}
		if bytes.Equal(val, []byte("null")) {
			return &SchemaError{Field: key, Msg: "required field is null"}
		}
	}
	for _, key := range present {
		if _, ok := raw[key]; !ok {
			return &SchemaError{Field: key, Msg: "missing required field"}
		}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return asSchemaError(err)
	}
	return nil
}

// asSchemaError converts an encoding/json failure into a SchemaError,
// preserving the field name for type mismatches and passing through
// SchemaErrors raised by nested UnmarshalJSON methods.
func asSchemaError(err error) error {
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) {
		return schemaErr
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &SchemaError{Field: typeErr.Field, Msg: "expected " + typeErr.Type.String() + ", got " + typeErr.Value}
	}
	return &SchemaError{Msg: err.Error()}
}
