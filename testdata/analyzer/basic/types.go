// Package basic exercises every way a type can ask for conversions.
package basic

//go:tryfrom:derive
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

//go:tryfrom:derive=decode
type Event struct {
	Kind string `json:"kind"`
}

//go:tryfrom:derive=encode
type Report struct {
	Lines []string `json:"lines"`
}

// Merged asks for each direction separately.
//
//go:tryfrom:derive=de
//go:tryfrom:derive=se
type Merged struct {
	N int `json:"n"`
}

//go:tryfrom:derive=decode
type (
	Tags  []string
	Index map[string]int
)

//go:tryfrom:derive
type Pair[K comparable, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// Plain is not annotated.
type Plain struct {
	Note string
}

type legacy struct{}

func (legacy) ToValue() string { return "legacy" }

// Embedding gets its own ToValue, which hides the promoted one.
//
//go:tryfrom:derive=encode
type Embedding struct {
	legacy
	Name string `json:"name"`
}
