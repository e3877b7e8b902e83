// Package template holds the embedded templates of the generated file.
package template

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/origadmin/tryfrom/internal/model"
)

//go:embed *.tpl
var templates embed.FS

// FileTemplate is the entry point that renders a whole generated file.
const FileTemplate = "file"

// Renderer is the interface for rendering templates.
type Renderer interface {
	Render(templateName string, data any) ([]byte, error)
}

// Manager is a template manager that holds and renders templates.
type Manager struct {
	tmpl *template.Template
}

// NewManager creates a new template manager and parses the embedded templates.
func NewManager() *Manager {
	tmpl := template.Must(template.New("tryfrom").ParseFS(templates, "*.tpl"))
	return &Manager{tmpl: tmpl}
}

// Render executes the named template with the given data.
func (m *Manager) Render(templateName string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.tmpl.ExecuteTemplate(&buf, templateName, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", templateName, err)
	}
	return buf.Bytes(), nil
}

// File is the data passed to FileTemplate.
type File struct {
	Tool        string
	BuildTags   string
	PackageName string
	Imports     []model.Import
	Types       []*Type
}

// Type is the data for the conversions of one annotated type.
type Type struct {
	Name string
	// Instance is the type with its parameters applied, e.g. Pair[K, V].
	Instance string
	// TypeParams is the parameter list of a generic constructor, e.g.
	// [K comparable, V any], or empty.
	TypeParams string
	// Constructor is the constructor name, empty when none is generated.
	Constructor string
	Decode      bool
	Encode      bool
	Must        bool
	// Pkg qualifies identifiers of the runtime package, e.g. "value.".
	Pkg string
}
