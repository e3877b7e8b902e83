package model

import (
	"go/types"
	"sort"
)

// LocalNames are the identifiers declared inside generated functions.
var LocalNames = []string{"v", "x", "err", "zero"}

// Package is an analyzed package and the types it asks to have generated.
type Package struct {
	Name  string
	Path  string
	Dir   string
	Types []*TypeInfo
	// Pkg is the type-checked package, used to qualify identifiers and to
	// avoid clashes with package-level names.
	Pkg *types.Package
}

// Lookup returns the annotated type called name.
func (p *Package) Lookup(name string) (*TypeInfo, bool) {
	for _, ti := range p.Types {
		if ti.Name == name {
			return ti, true
		}
	}
	return nil, false
}

// Sort orders the annotated types by name.
func (p *Package) Sort() {
	sort.Slice(p.Types, func(i, j int) bool {
		return p.Types[i].Name < p.Types[j].Name
	})
}

// ScopeNames returns the package-level identifiers of the package.
func (p *Package) ScopeNames() []string {
	if p.Pkg == nil {
		return nil
	}
	return p.Pkg.Scope().Names()
}
