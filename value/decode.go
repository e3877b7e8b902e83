package value

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// Decoder is implemented by types that can be built from a Value. tryfrom
// generates FromValue for types annotated with derive=decode or derive=both.
type Decoder interface {
	FromValue(v Value) error
}

var (
	jsonUnmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Decode maps v onto the value dst points to. Missing required fields,
// nulls in non-nullable fields and mistyped values fail with a
// *DecodeError; nothing is defaulted.
func Decode(v Value, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &DecodeError{
			Type:    reflect.TypeOf(dst),
			Message: "destination must be a non-nil pointer",
			Err:     ErrInvalidDestination,
		}
	}
	t := rv.Type().Elem()

	if v == nil && !nullable(t) {
		return invalidNull(t, "", t)
	}
	if err := check(v, t, t, ""); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return &DecodeError{Type: t, Message: "value is not representable", Err: err}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return translate(t, err)
	}
	return nil
}

// Into builds a new T from v through T's FromValue method.
func Into[T any, PT interface {
	*T
	Decoder
}](v Value) (T, error) {
	var x T
	if err := PT(&x).FromValue(v); err != nil {
		var zero T
		return zero, err
	}
	return x, nil
}

// check walks v against t and reports the first required field that is
// absent or null. Shape mismatches are left to the JSON decoder, which
// reports them with better detail.
func check(v Value, t, root reflect.Type, path string) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if customDecoding(t) {
		return nil
	}
	switch t.Kind() {
	case reflect.Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		for _, f := range Fields(t) {
			fpath := joinPath(path, f.Key)
			fv, ok := lookup(obj, f.Key)
			if !ok {
				if f.Required {
					return &DecodeError{
						Type:    root,
						Path:    fpath,
						Message: fmt.Sprintf("missing field `%s`", f.Key),
						Err:     ErrMissingField,
					}
				}
				continue
			}
			if fv == nil {
				if f.Required && !nullable(f.Type) {
					return invalidNull(root, fpath, f.Type)
				}
				continue
			}
			if err := check(fv, f.Type, root, fpath); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		arr, ok := v.([]any)
		if !ok {
			return nil
		}
		if t.Kind() == reflect.Array && len(arr) != t.Len() {
			return &DecodeError{
				Type:    root,
				Path:    path,
				Message: fmt.Sprintf("invalid length %d, expected an array of length %d", len(arr), t.Len()),
				Err:     ErrInvalidType,
			}
		}
		for i, e := range arr {
			epath := fmt.Sprintf("%s[%d]", path, i)
			if e == nil {
				if !nullable(t.Elem()) {
					return invalidNull(root, epath, t.Elem())
				}
				continue
			}
			if err := check(e, t.Elem(), root, epath); err != nil {
				return err
			}
		}
	case reflect.Map:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			e := obj[k]
			epath := joinPath(path, k)
			if e == nil {
				if !nullable(t.Elem()) {
					return invalidNull(root, epath, t.Elem())
				}
				continue
			}
			if err := check(e, t.Elem(), root, epath); err != nil {
				return err
			}
		}
	}
	return nil
}

// lookup finds key in obj. Like encoding/json, an exact match wins and a
// case-insensitive match is accepted otherwise.
func lookup(obj map[string]any, key string) (Value, bool) {
	if v, ok := obj[key]; ok {
		return v, true
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.EqualFold(k, key) {
			return obj[k], true
		}
	}
	return nil, false
}

// nullable reports whether null is a meaningful value for t. Slices and
// maps qualify because their nil form encodes as null.
func nullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return true
	}
	return customDecoding(t)
}

func customDecoding(t reflect.Type) bool {
	pt := reflect.PointerTo(t)
	return t.Implements(jsonUnmarshalerType) || pt.Implements(jsonUnmarshalerType) ||
		t.Implements(textUnmarshalerType) || pt.Implements(textUnmarshalerType)
}

func invalidNull(root reflect.Type, path string, want reflect.Type) *DecodeError {
	return &DecodeError{
		Type:    root,
		Path:    path,
		Message: fmt.Sprintf("invalid type: null, expected %s", want),
		Err:     ErrInvalidType,
	}
}

func translate(t reflect.Type, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodeError{
			Type:    t,
			Path:    typeErr.Field,
			Message: fmt.Sprintf("invalid type: %s, expected %s", typeErr.Value, typeErr.Type),
			Err:     fmt.Errorf("%w: %w", ErrInvalidType, err),
		}
	}
	return &DecodeError{Type: t, Message: err.Error(), Err: err}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
