package generator

import (
	"go/types"
	"strings"

	"github.com/origadmin/tryfrom/internal/model"
)

// Namer renders the names and type expressions used in generated code.
type Namer struct {
	qualifier types.Qualifier
}

// NewNamer creates a Namer that qualifies package references with q.
func NewNamer(q types.Qualifier) *Namer {
	return &Namer{qualifier: q}
}

// TypeParams renders the type parameter list of ti for a function
// declaration, e.g. "[K comparable, V any]". It is empty for non-generic
// types.
func (n *Namer) TypeParams(ti *model.TypeInfo) string {
	if !ti.IsGeneric() {
		return ""
	}
	params := make([]string, len(ti.TypeParams))
	for i, tp := range ti.TypeParams {
		params[i] = tp.Name + " " + n.Type(tp.Constraint)
	}
	return "[" + strings.Join(params, ", ") + "]"
}

// Type renders t as it must be written in the generated file.
func (n *Namer) Type(t types.Type) string {
	if t == nil {
		return "any"
	}
	return types.TypeString(t, n.qualifier)
}

// Qualify returns the prefix for identifiers of the package known as name
// in the generated file: "name." or nothing for the package itself.
func Qualify(name string) string {
	if name == "" {
		return ""
	}
	return name + "."
}
