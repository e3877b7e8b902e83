// Package configured takes part of its settings from .tryfrom.yaml.
//
//go:tryfrom:output=conversions.gen.go
package configured

// Legacy is listed in .tryfrom.yaml instead of being annotated.
type Legacy struct {
	Code int `json:"code"`
}

// Account is annotated and listed, so it gets both directions.
//
//go:tryfrom:derive=encode
type Account struct {
	ID string `json:"id"`
}
