// Package testtypes holds records with generated conversions. Its tests pin
// down the behavior every generated conversion shares.
//
//go:tryfrom:output=tryfrom.gen.go
package testtypes

import "errors"

//go:generate go run github.com/origadmin/tryfrom/cmd/tryfrom

// TestStruct converts both ways.
//
//go:tryfrom:derive=both
type TestStruct struct {
	Field1 string `json:"field1"`
	Field2 int32  `json:"field2"`
}

// DecodeOnly can be built from a value but not turned back into one.
//
//go:tryfrom:derive=decode
type DecodeOnly struct {
	Field1 string `json:"field1"`
	Field2 int32  `json:"field2"`
}

// NonSerializable refuses to be encoded.
type NonSerializable struct{}

func (NonSerializable) MarshalJSON() ([]byte, error) {
	return nil, errors.New("Serialization is not supported for NonSerializable")
}

//go:tryfrom:derive=encode
type StructWithNonSerializableField struct {
	Name  string          `json:"name"`
	Field NonSerializable `json:"field"`
}
