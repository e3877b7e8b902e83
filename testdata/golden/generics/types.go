// Package generics covers generic declarations.
package generics

import "cmp"

//go:tryfrom:derive
type Pair[K comparable, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

//go:tryfrom:derive=decode
type Range[T cmp.Ordered] struct {
	Lo T `json:"lo"`
	Hi T `json:"hi"`
}

//go:tryfrom:derive=encode
type Num[T ~int | ~float64] []T
