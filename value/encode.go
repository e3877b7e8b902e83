package value

import (
	"reflect"

	"github.com/goccy/go-json"
)

// Encoder is implemented by types that can render themselves as a Value.
// tryfrom generates ToValue for types annotated with derive=encode or
// derive=both.
type Encoder interface {
	ToValue() (Value, error)
}

// Encode renders src as a canonical Value. Any field that refuses
// serialization fails the whole call with an *EncodeError wrapping the
// original cause.
func Encode(src any) (Value, error) {
	data, err := json.Marshal(src)
	if err != nil {
		return nil, &EncodeError{Type: reflect.TypeOf(src), Err: err}
	}
	v, err := Parse(data)
	if err != nil {
		return nil, &EncodeError{Type: reflect.TypeOf(src), Err: err}
	}
	return v, nil
}
