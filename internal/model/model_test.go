package model

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapability(t *testing.T) {
	testCases := []struct {
		name    string
		c       Capability
		str     string
		decode  bool
		encode  bool
		hasBoth bool
	}{
		{name: "none", c: None, str: "none"},
		{name: "decode", c: Decode, str: "decode", decode: true},
		{name: "encode", c: Encode, str: "encode", encode: true},
		{name: "both", c: Both, str: "both", decode: true, encode: true, hasBoth: true},
		{name: "out of range", c: Capability(8), str: "Capability(8)"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.str, tc.c.String())
			assert.Equal(t, tc.decode, tc.c.Has(Decode))
			assert.Equal(t, tc.encode, tc.c.Has(Encode))
			assert.Equal(t, tc.hasBoth, tc.c.Has(Both))
			assert.False(t, tc.c.Has(None))
		})
	}
}

func TestTypeInfo(t *testing.T) {
	plain := &TypeInfo{Name: "User", Capability: Both}
	assert.False(t, plain.IsGeneric())
	assert.Equal(t, "User", plain.Instance())
	assert.Equal(t, "UserFromValue", plain.Constructor())
	assert.Equal(t, "User (both)", plain.String())

	generic := &TypeInfo{
		Name: "Pair",
		TypeParams: []*TypeParam{
			{Name: "K", Constraint: types.Universe.Lookup("comparable").Type()},
			{Name: "V", Constraint: types.Universe.Lookup("any").Type()},
		},
		Capability: Decode,
	}
	assert.True(t, generic.IsGeneric())
	assert.Equal(t, "Pair[K, V]", generic.Instance())
	assert.Equal(t, "PairFromValue", generic.Constructor())
	assert.Equal(t, "Pair[K, V] (decode)", generic.String())

	var missing *TypeInfo
	assert.Equal(t, "nil", missing.String())
}

func TestKindOf(t *testing.T) {
	str := types.Typ[types.String]
	testCases := []struct {
		typ  types.Type
		want TypeKind
	}{
		{typ: types.NewStruct(nil, nil), want: Struct},
		{typ: str, want: Basic},
		{typ: types.NewSlice(str), want: Slice},
		{typ: types.NewArray(str, 2), want: Array},
		{typ: types.NewMap(str, str), want: Map},
		{typ: types.NewPointer(str), want: Pointer},
		{typ: types.NewInterfaceType(nil, nil), want: Interface},
		{typ: types.NewChan(types.SendRecv, str), want: Chan},
		{typ: types.NewSignatureType(nil, nil, nil, nil, nil, false), want: Func},
	}
	for _, tc := range testCases {
		t.Run(tc.want.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.typ))
		})
	}
	assert.Equal(t, "unknown", TypeKind(42).String())
}

func TestPackage(t *testing.T) {
	pkg := &Package{
		Name: "demo",
		Types: []*TypeInfo{
			{Name: "Zeta"},
			{Name: "Alpha"},
			{Name: "Mid"},
		},
	}
	pkg.Sort()
	assert.Equal(t, "Alpha", pkg.Types[0].Name)
	assert.Equal(t, "Zeta", pkg.Types[2].Name)

	ti, ok := pkg.Lookup("Mid")
	assert.True(t, ok)
	assert.Equal(t, "Mid", ti.Name)
	_, ok = pkg.Lookup("Nope")
	assert.False(t, ok)

	assert.Nil(t, pkg.ScopeNames())
	pkg.Pkg = types.NewPackage("example.com/demo", "demo")
	pkg.Pkg.Scope().Insert(types.NewTypeName(0, pkg.Pkg, "Alpha", nil))
	assert.Equal(t, []string{"Alpha"}, pkg.ScopeNames())
}
