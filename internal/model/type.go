// Package model defines the simplified view of an annotated package that the
// analyzer produces and the generator consumes. It hides the go/types
// representation behind the few facts code generation needs.
package model

import (
	"go/token"
	"go/types"
	"strings"
)

// TypeKind classifies the underlying type of an annotated declaration.
type TypeKind int

const (
	Unknown TypeKind = iota
	Struct
	Basic
	Slice
	Array
	Map
	Pointer
	Interface
	Chan
	Func
)

var kindNames = [...]string{
	Unknown:   "unknown",
	Struct:    "struct",
	Basic:     "basic",
	Slice:     "slice",
	Array:     "array",
	Map:       "map",
	Pointer:   "pointer",
	Interface: "interface",
	Chan:      "chan",
	Func:      "func",
}

func (k TypeKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[Unknown]
	}
	return kindNames[k]
}

// KindOf classifies the underlying type of t.
func KindOf(t types.Type) TypeKind {
	switch t.Underlying().(type) {
	case *types.Struct:
		return Struct
	case *types.Basic:
		return Basic
	case *types.Slice:
		return Slice
	case *types.Array:
		return Array
	case *types.Map:
		return Map
	case *types.Pointer:
		return Pointer
	case *types.Interface:
		return Interface
	case *types.Chan:
		return Chan
	case *types.Signature:
		return Func
	}
	return Unknown
}

// TypeParam is one type parameter of a generic declaration.
type TypeParam struct {
	Name       string
	Constraint types.Type
}

// TypeInfo is a named type annotated for generation.
type TypeInfo struct {
	Name       string
	Kind       TypeKind
	TypeParams []*TypeParam
	Capability Capability
	Pos        token.Position
	Object     *types.TypeName
}

// IsGeneric reports whether the type declares type parameters.
func (ti *TypeInfo) IsGeneric() bool {
	return len(ti.TypeParams) > 0
}

// Instance returns the type as written in a receiver or result, with its
// type parameters applied: "Pair[K, V]".
func (ti *TypeInfo) Instance() string {
	if !ti.IsGeneric() {
		return ti.Name
	}
	names := make([]string, len(ti.TypeParams))
	for i, tp := range ti.TypeParams {
		names[i] = tp.Name
	}
	return ti.Name + "[" + strings.Join(names, ", ") + "]"
}

// Constructor is the name of the generated package-level decode function.
func (ti *TypeInfo) Constructor() string {
	return ti.Name + "FromValue"
}

func (ti *TypeInfo) String() string {
	if ti == nil {
		return "nil"
	}
	return ti.Instance() + " (" + ti.Capability.String() + ")"
}
