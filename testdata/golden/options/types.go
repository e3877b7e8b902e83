// Package options switches off the optional parts of the generated file.
//
//go:tryfrom:output=options.gen.go
//go:tryfrom:constructors=false
//go:tryfrom:must=false
//go:tryfrom:tags=!tinygo
package options

// value takes the name the runtime package is normally imported as.
const value = "shadowed"

//go:tryfrom:derive=de,se
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Label reports the constant, so it is used.
func Label() string { return value }
