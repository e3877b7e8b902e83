package analyzer

import (
	"context"
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageWalker_Load(t *testing.T) {
	walker := NewPackageWalker()
	pkgs, err := walker.Load(context.Background(), fixture(t, "regenerate"))
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	pkg := pkgs[0]
	assert.Equal(t, "regenerate", pkg.Name)
	assert.Empty(t, pkg.Errors)
	assert.NotNil(t, pkg.Types.Scope().Lookup("Item"))
	assert.NotNil(t, pkg.Types.Scope().Lookup("ItemFromValue"), "the generated file is type-checked")
	assert.Equal(t, fixture(t, "regenerate"), packageDir(pkg))

	files := Files(pkg)
	require.Len(t, files, 2)
	generated := make(map[string]bool)
	for _, f := range files {
		generated[filepath.Base(f.Name)] = f.Generated
	}
	assert.Equal(t, map[string]bool{
		"types.go":                  false,
		"regenerate_tryfrom.gen.go": true,
	}, generated)
}

func TestPackageWalker_LoadMissing(t *testing.T) {
	walker := NewPackageWalker("integration")
	assert.Equal(t, []string{"integration"}, walker.Tags)

	// go list reports a missing directory either as a failure or as a
	// package carrying errors, depending on the toolchain.
	pkgs, err := walker.Load(context.Background(), fixture(t, "basic"), "./does/not/exist")
	if err == nil {
		require.Len(t, pkgs, 1)
		assert.NotEmpty(t, pkgs[0].Errors)
	}
}

func TestIsGenerated(t *testing.T) {
	testCases := []struct {
		name string
		file string
		src  string
		want bool
	}{
		{
			name: "gen suffix",
			file: "models.gen.go",
			src:  "package p\n",
			want: true,
		},
		{
			name: "generated header",
			file: "zz_generated.go",
			src:  "// Code generated by stringer. DO NOT EDIT.\n\npackage p\n",
			want: true,
		},
		{
			name: "hand written",
			file: "types.go",
			src:  "// Package p is written by hand.\npackage p\n",
			want: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := parser.ParseFile(token.NewFileSet(), tc.file, tc.src, parser.ParseComments)
			require.NoError(t, err)
			if got := IsGenerated(tc.file, f); got != tc.want {
				t.Errorf("IsGenerated(%q) = %v, want %v", tc.file, got, tc.want)
			}
		})
	}
	assert.True(t, IsGenerated("/tmp/x_tryfrom.gen.go", nil))
	assert.False(t, IsGenerated("/tmp/x.go", nil))
}
