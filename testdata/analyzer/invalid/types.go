// Package invalid collects every problem the analyzer reports.
package invalid

//go:tryfrom:derive
type Alias = Fine

//go:tryfrom:derive
type Shape interface {
	Area() float64
}

//go:tryfrom:derive=decode
type Stream chan int

//go:tryfrom:derive=decode
type Ref *Fine

//go:tryfrom:derive=decode
type Existing struct{}

func (e *Existing) FromValue(v any) error { return nil }

//go:tryfrom:derive=encode
type Fielded struct {
	ToValue string
}

//go:tryfrom:derive=decode
type Ctor struct{}

func CtorFromValue() {}

//go:tryfrom:derive=sometimes
type Bad struct{}

//go:tryfrom:derive
func Helper() {}

//go:tryfrom:derive
var Global = 1

//go:tryfrom:derive
type Fine struct {
	A int `json:"a"`
}

//go:tryfrom:derive=decode
type Box[x any] struct {
	Item x `json:"item"`
}
