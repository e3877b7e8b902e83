package value

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrMissingField is reported when a required field is absent.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidType is reported when a value has the wrong shape for its
	// destination.
	ErrInvalidType = errors.New("invalid type")
	// ErrInvalidDestination is reported when Decode is not handed a non-nil
	// pointer.
	ErrInvalidDestination = errors.New("invalid destination")
)

// DecodeError is returned when a Value cannot be mapped onto a typed record.
type DecodeError struct {
	Type    reflect.Type // destination type
	Path    string       // dotted path to the offending field, empty at the root
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	var typ string
	if e.Type != nil {
		typ = " " + e.Type.String()
	}
	if e.Path != "" {
		return fmt.Sprintf("tryfrom: decode%s at %s: %s", typ, e.Path, e.Message)
	}
	return fmt.Sprintf("tryfrom: decode%s: %s", typ, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError is returned when a typed record cannot be represented as a
// Value. The underlying cause, including any message reported by a field's
// own MarshalJSON, is kept verbatim in Err.
type EncodeError struct {
	Type reflect.Type
	Err  error
}

func (e *EncodeError) Error() string {
	if e.Type != nil {
		return fmt.Sprintf("tryfrom: encode %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("tryfrom: encode: %v", e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
