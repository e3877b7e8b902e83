package model

import "go/types"

// ImportManager tracks the imports of one generated file.
type ImportManager interface {
	// Add imports path and returns the name to refer to it by.
	Add(path string) string
	// Reserve marks names that an import must not take.
	Reserve(names ...string)
	// Qualifier renders package references relative to the generated file.
	Qualifier() types.Qualifier
	// Imports returns the recorded imports sorted by path.
	Imports() []Import
}

// Import is a single import spec. Name is empty when the package is
// referred to by its own name.
type Import struct {
	Name string
	Path string
}
