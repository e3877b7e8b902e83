package config

import (
	"go/ast"
	"go/token"
	"strings"
)

// DirectivePrefix starts every tryfrom directive.
const DirectivePrefix = "//go:tryfrom:"

// Directive keys.
const (
	KeyDerive       = "derive"
	KeyOutput       = "output"
	KeyConstructors = "constructors"
	KeyMust         = "must"
	KeyValue        = "value"
	KeyTags         = "tags"
)

// Directive is a single //go:tryfrom:key[=value] comment.
type Directive struct {
	Key      string
	Value    string
	HasValue bool
	Pos      token.Pos
}

func (d Directive) String() string {
	if !d.HasValue {
		return DirectivePrefix + d.Key
	}
	return DirectivePrefix + d.Key + "=" + d.Value
}

// ParseDirective parses the text of one comment. It reports false when the
// comment is not a tryfrom directive.
func ParseDirective(text string) (Directive, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, DirectivePrefix) {
		return Directive{}, false
	}
	body := strings.TrimSpace(strings.TrimPrefix(text, DirectivePrefix))
	parts := strings.SplitN(body, "=", 2)
	d := Directive{Key: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		d.HasValue = true
		d.Value = strings.Trim(strings.TrimSpace(parts[1]), `"`)
	}
	return d, true
}

// DirectiveScanner collects tryfrom directives from parsed files.
type DirectiveScanner struct{}

// NewDirectiveScanner creates a new DirectiveScanner.
func NewDirectiveScanner() *DirectiveScanner {
	return &DirectiveScanner{}
}

// DiscoverDirectives returns every directive found in the comments of files,
// in source order.
func (s *DirectiveScanner) DiscoverDirectives(files []*ast.File) []Directive {
	var directives []Directive
	for _, file := range files {
		for _, group := range file.Comments {
			directives = append(directives, s.Group(group)...)
		}
	}
	return directives
}

// Group returns the directives of a single comment group.
func (s *DirectiveScanner) Group(group *ast.CommentGroup) []Directive {
	if group == nil {
		return nil
	}
	var directives []Directive
	for _, comment := range group.List {
		if d, ok := ParseDirective(comment.Text); ok {
			d.Pos = comment.Slash
			directives = append(directives, d)
		}
	}
	return directives
}
