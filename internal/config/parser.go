package config

import (
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"
	"strconv"

	"github.com/hengadev/errsx"
)

// Parser applies package-level directives on top of a base configuration.
// Type-level derive directives are left to the analyzer.
type Parser struct {
	config  *Config
	scanner *DirectiveScanner
}

// NewParser creates a parser that starts from a copy of base. A nil base
// means the defaults.
func NewParser(base *Config) *Parser {
	if base == nil {
		base = DefaultConfig()
	}
	return &Parser{
		config:  base.Clone(),
		scanner: NewDirectiveScanner(),
	}
}

// Parse scans files for package-level directives and returns the resulting
// configuration. Every malformed directive is reported, not only the first.
func (p *Parser) Parse(fset *token.FileSet, files []*ast.File) (*Config, error) {
	directives := p.scanner.DiscoverDirectives(files)
	if len(directives) == 0 {
		slog.Debug("no tryfrom directives found")
	}

	var errs errsx.Map
	for _, d := range directives {
		if err := p.parseSingleDirective(d); err != nil {
			errs.Set(position(fset, d), err)
		}
	}
	if !errs.IsEmpty() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDirective, errs.AsError())
	}
	if err := p.config.Validate(); err != nil {
		return nil, err
	}
	return p.config, nil
}

// parseSingleDirective applies one package-level directive.
func (p *Parser) parseSingleDirective(d Directive) error {
	switch d.Key {
	case KeyDerive:
		// type level
	case KeyOutput:
		if d.Value == "" {
			return fmt.Errorf("%w: %s needs a file name", ErrInvalidDirective, d)
		}
		p.config.Output = d.Value
	case KeyValue:
		if d.Value == "" {
			return fmt.Errorf("%w: %s needs an import path", ErrInvalidDirective, d)
		}
		p.config.ValuePackage = d.Value
	case KeyTags:
		p.config.BuildTags = d.Value
	case KeyConstructors:
		b, err := parseBool(d)
		if err != nil {
			return err
		}
		p.config.Constructors = b
	case KeyMust:
		b, err := parseBool(d)
		if err != nil {
			return err
		}
		p.config.Must = b
	default:
		slog.Warn("ignoring unknown tryfrom directive", "directive", d.String())
		return nil
	}
	slog.Debug("Parser.parseSingleDirective", "key", d.Key, "value", d.Value)
	return nil
}

// parseBool treats a bare flag directive as true.
func parseBool(d Directive) (bool, error) {
	if !d.HasValue {
		return true, nil
	}
	b, err := strconv.ParseBool(d.Value)
	if err != nil {
		return false, fmt.Errorf("%w: %s: want true or false", ErrInvalidDirective, d)
	}
	return b, nil
}

func position(fset *token.FileSet, d Directive) string {
	if fset == nil || !d.Pos.IsValid() {
		return d.String()
	}
	return fset.Position(d.Pos).String()
}
