package value

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/goccy/go-json"
)

// Value is a dynamic, JSON-like value. See the package documentation for
// the canonical forms.
type Value = any

// Number is the canonical numeric form of a Value.
type Number = json.Number

// Kind classifies a Value.
type Kind int

const (
	Invalid Kind = iota
	Null
	Bool
	NumberKind
	String
	Array
	Object
)

var kindNames = map[Kind]string{
	Invalid:    "invalid",
	Null:       "null",
	Bool:       "boolean",
	NumberKind: "number",
	String:     "string",
	Array:      "array",
	Object:     "object",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "invalid"
}

// KindOf reports the kind of v. Values outside the canonical forms (and the
// Go numeric types) report Invalid.
func KindOf(v Value) Kind {
	switch v.(type) {
	case nil:
		return Null
	case bool:
		return Bool
	case Number, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return NumberKind
	case string:
		return String
	case []any:
		return Array
	case map[string]any:
		return Object
	}
	return Invalid
}

// Parse reads JSON text into a canonical Value.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parse value: %w", err)
	}
	return v, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// literals in tests and examples.
func MustParse(s string) Value {
	v, err := Parse([]byte(s))
	if err != nil {
		panic(err)
	}
	return v
}

// Marshal renders v as JSON text.
func Marshal(v Value) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal value: %w", err)
	}
	return data, nil
}

// Normalize converts any JSON-representable Go value into its canonical
// Value form.
func Normalize(v any) (Value, error) {
	if isCanonical(v, true) {
		return v, nil
	}
	data, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// isCanonical reports whether v is already a Value tree. In strict mode
// numbers must be Number; otherwise Go numeric types pass as well.
func isCanonical(v any, strict bool) bool {
	switch t := v.(type) {
	case Number:
		return true
	case []any:
		for _, e := range t {
			if !isCanonical(e, strict) {
				return false
			}
		}
		return true
	case map[string]any:
		for _, e := range t {
			if !isCanonical(e, strict) {
				return false
			}
		}
		return true
	}
	k := KindOf(v)
	if strict && k == NumberKind {
		return false
	}
	return k != Invalid
}

// Equal reports whether a and b are structurally equal. Numbers compare by
// numeric value, so Number("42"), int(42) and float64(42) are all equal.
// Non-canonical inputs are normalized first; inputs that cannot be
// normalized are never equal.
func Equal(a, b Value) bool {
	var err error
	if !isCanonical(a, false) {
		if a, err = Normalize(a); err != nil {
			return false
		}
	}
	if !isCanonical(b, false) {
		if b, err = Normalize(b); err != nil {
			return false
		}
	}
	return equal(a, b)
}

func equal(a, b Value) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case Null:
		return true
	case Bool:
		return a.(bool) == b.(bool)
	case String:
		return a.(string) == b.(string)
	case NumberKind:
		return numberEqual(a, b)
	case Array:
		x, y := a.([]any), b.([]any)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Object:
		x, y := a.(map[string]any), b.(map[string]any)
		if len(x) != len(y) {
			return false
		}
		for k, xv := range x {
			yv, ok := y[k]
			if !ok || !equal(xv, yv) {
				return false
			}
		}
		return true
	}
	return false
}

func numberEqual(a, b Value) bool {
	na, nb := toNumber(a), toNumber(b)
	if na == nb {
		return true
	}
	ia, errA := na.Int64()
	ib, errB := nb.Int64()
	if errA == nil && errB == nil {
		return ia == ib
	}
	fa, errA := na.Float64()
	fb, errB := nb.Float64()
	if errA != nil || errB != nil {
		return false
	}
	return fa == fb
}

func toNumber(v Value) Number {
	switch n := v.(type) {
	case Number:
		return n
	case float32:
		return Number(strconv.FormatFloat(float64(n), 'g', -1, 32))
	case float64:
		return Number(strconv.FormatFloat(n, 'g', -1, 64))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Number(strconv.FormatUint(u, 10))
		}
		return Number(strconv.FormatInt(int64(u), 10))
	}
	return ""
}
