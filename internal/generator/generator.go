// Package generator renders the conversions of an analyzed package into a
// formatted Go source file.
package generator

import (
	"fmt"
	"go/build/constraint"
	"go/format"
	"log/slog"

	"github.com/origadmin/tryfrom/internal/config"
	"github.com/origadmin/tryfrom/internal/model"
	"github.com/origadmin/tryfrom/internal/template"
)

// Generator turns an analyzed package into source code.
type Generator struct {
	templates template.Renderer
}

// NewGenerator creates a Generator using the embedded templates.
func NewGenerator() *Generator {
	return &Generator{templates: template.NewManager()}
}

// Generate renders the generated file for pkg. It returns nil when pkg has no
// annotated types.
func (g *Generator) Generate(pkg *model.Package, cfg *config.Config) ([]byte, error) {
	if len(pkg.Types) == 0 {
		return nil, nil
	}

	data, err := g.fileData(pkg, cfg)
	if err != nil {
		return nil, err
	}

	src, err := g.templates.Render(template.FileTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", pkg.Path, err)
	}
	formatted, err := format.Source(src)
	if err != nil {
		slog.Debug("unformatted source", "package", pkg.Path, "source", string(src))
		return nil, fmt.Errorf("failed to format generated code for %s: %w", pkg.Path, err)
	}
	slog.Debug("generated code", "package", pkg.Path, "types", len(pkg.Types), "bytes", len(formatted))
	return formatted, nil
}

func (g *Generator) fileData(pkg *model.Package, cfg *config.Config) (*template.File, error) {
	im := NewImportManager(pkg.Path)
	im.Reserve(model.LocalNames...)
	im.Reserve(pkg.ScopeNames()...)
	for _, ti := range pkg.Types {
		for _, tp := range ti.TypeParams {
			im.Reserve(tp.Name)
		}
	}
	valuePkg := Qualify(im.Add(cfg.ValuePackage))
	namer := NewNamer(im.Qualifier())

	file := &template.File{
		Tool:        config.Application,
		PackageName: pkg.Name,
	}
	if cfg.BuildTags != "" {
		expr, err := constraint.Parse("//go:build " + cfg.BuildTags)
		if err != nil {
			return nil, fmt.Errorf("%w: build tags %q: %w", config.ErrInvalidConfig, cfg.BuildTags, err)
		}
		file.BuildTags = expr.String()
	}

	for _, ti := range pkg.Types {
		t := &template.Type{
			Name:       ti.Name,
			Instance:   ti.Instance(),
			TypeParams: namer.TypeParams(ti),
			Decode:     ti.Capability.Has(model.Decode),
			Encode:     ti.Capability.Has(model.Encode),
			Must:       cfg.Must,
			Pkg:        valuePkg,
		}
		if t.Decode && cfg.Constructors {
			t.Constructor = ti.Constructor()
		}
		file.Types = append(file.Types, t)
	}
	// Constraints may have added imports.
	file.Imports = im.Imports()
	return file, nil
}
