// Package value is the runtime behind code generated by tryfrom.
//
// A Value is an untyped, self-describing tree: objects, arrays, strings,
// numbers, booleans and null. Generated code binds two conversions to a
// typed record:
//
//	// decode: Value -> record
//	func (x *Record) FromValue(v value.Value) error { return value.Decode(v, x) }
//
//	// encode: record -> Value
//	func (x Record) ToValue() (value.Value, error) { return value.Encode(x) }
//
// Canonical Value forms:
//   - nil for null
//   - bool
//   - Number for numbers (a json.Number, so no precision is lost)
//   - string
//   - []any for arrays
//   - map[string]any for objects
//
// Go integer and floating point values are accepted as numbers wherever a
// Value is read, so hand-built literals such as map[string]any{"n": 42}
// compare equal to decoded ones under Equal.
//
// Field rules follow encoding/json (exported fields, `json` tag names,
// embedded struct promotion) with one addition: decoding never silently
// defaults. A struct field is required unless it is a pointer or interface,
// is tagged omitempty/omitzero, or carries `tryfrom:"optional"`.
package value
