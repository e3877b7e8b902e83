// Package analyzer finds the types of a package that ask for generated
// conversions and checks that the generated code can be added to them.
package analyzer

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/packages"

	"github.com/origadmin/tryfrom/internal/config"
	"github.com/origadmin/tryfrom/internal/model"
)

// Generated method names.
const (
	MethodFromValue   = "FromValue"
	MethodToValue     = "ToValue"
	MethodMustToValue = "MustToValue"
)

// Result is the outcome of analyzing one package.
type Result struct {
	Package *model.Package
	Config  *config.Config
}

// OutputPath is the absolute path of the file to generate.
func (r *Result) OutputPath() string {
	return filepath.Join(r.Package.Dir, r.Config.OutputFile(r.Package.Name))
}

// Analyzer turns loaded packages into generation requests.
type Analyzer struct {
	// Output, when set, names the generated file of every package. It wins
	// over the output directive and the config file.
	Output string

	walker  *PackageWalker
	scanner *config.DirectiveScanner
}

// NewAnalyzer creates a new Analyzer. tags are passed to the build system
// when loading packages.
func NewAnalyzer(tags ...string) *Analyzer {
	return &Analyzer{
		walker:  NewPackageWalker(tags...),
		scanner: config.NewDirectiveScanner(),
	}
}

// Load loads the packages matching patterns and analyzes each of them.
// baseFor returns the configuration a package starts from, normally the
// defaults merged with the package's .tryfrom.yaml.
func (a *Analyzer) Load(ctx context.Context, dir string, baseFor func(dir string) (*config.Config, error), patterns ...string) ([]*Result, error) {
	pkgs, err := a.walker.Load(ctx, dir, patterns...)
	if err != nil {
		return nil, err
	}
	results := make([]*Result, 0, len(pkgs))
	for _, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		base, err := baseFor(packageDir(pkg))
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", pkg.PkgPath, err)
		}
		res, err := a.Analyze(pkg, base)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// annotation is a type picked for generation and where it was picked.
type annotation struct {
	spec       *ast.TypeSpec
	obj        *types.TypeName
	capability model.Capability
	pos        token.Pos
}

// Analyze resolves the configuration of pkg and collects its annotated
// types. All validation problems are returned together as a
// *ValidationError.
func (a *Analyzer) Analyze(pkg *packages.Package, base *config.Config) (*Result, error) {
	files := Files(pkg)
	var sources []*ast.File
	for _, f := range files {
		if f.Generated {
			slog.Debug("skipping generated file", "file", f.Name)
			continue
		}
		sources = append(sources, f.Syntax)
	}

	cfg, err := config.NewParser(base).Parse(pkg.Fset, sources)
	if err != nil {
		return nil, fmt.Errorf("package %s: %w", pkg.PkgPath, err)
	}
	if a.Output != "" {
		cfg.Output = a.Output
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("package %s: %w", pkg.PkgPath, err)
		}
	}

	verr := &ValidationError{Package: pkg.PkgPath}
	found := make(map[string]*annotation)
	var order []string
	for _, f := range sources {
		a.collect(pkg, f, found, &order, verr)
	}
	a.applyConfigTypes(pkg, cfg, found, &order, verr)

	output := cfg.OutputFile(pkg.Name)
	result := &model.Package{
		Name: pkg.Name,
		Path: pkg.PkgPath,
		Dir:  packageDir(pkg),
		Pkg:  pkg.Types,
	}
	for _, name := range order {
		ann := found[name]
		ti, ok := a.check(pkg, cfg, output, ann, verr)
		if ok {
			result.Types = append(result.Types, ti)
		}
	}
	if !verr.empty() {
		return nil, verr
	}
	result.Sort()

	if len(result.Types) == 0 {
		slog.Warn("no tryfrom directives found, no code will be generated", "package", pkg.PkgPath)
	}
	return &Result{Package: result, Config: cfg}, nil
}

// collect records the derive directives of one file. A directive counts
// only in the doc comment of a type declaration; one on a parenthesized
// group applies to every type of the group.
func (a *Analyzer) collect(pkg *packages.Package, f *ast.File, found map[string]*annotation, order *[]string, verr *ValidationError) {
	consumed := make(map[token.Pos]bool)
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		declDerives := a.derives(gd.Doc)
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			derives := append(a.derives(ts.Doc), declDerives...)
			if len(derives) == 0 {
				continue
			}
			ann := &annotation{spec: ts, pos: derives[0].Pos}
			if obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName); ok {
				ann.obj = obj
			}
			for _, d := range derives {
				consumed[d.Pos] = true
				c, err := config.ParseCapability(d.Value)
				if err != nil {
					verr.add(pkg.Fset.Position(d.Pos).String(), fmt.Errorf("%s: %w", pkg.Fset.Position(d.Pos), err))
					continue
				}
				ann.capability |= c
			}
			name := ts.Name.Name
			if prev, ok := found[name]; ok {
				prev.capability |= ann.capability
				continue
			}
			found[name] = ann
			*order = append(*order, name)
		}
	}

	for _, d := range a.scanner.DiscoverDirectives([]*ast.File{f}) {
		if d.Key != config.KeyDerive || consumed[d.Pos] {
			continue
		}
		pos := pkg.Fset.Position(d.Pos)
		verr.add(pos.String(), fmt.Errorf("%s: %w: %s must be in the doc comment of a type declaration",
			pos, config.ErrInvalidDirective, d))
	}
}

func (a *Analyzer) derives(doc *ast.CommentGroup) []config.Directive {
	var out []config.Directive
	for _, d := range a.scanner.Group(doc) {
		if d.Key == config.KeyDerive {
			out = append(out, d)
		}
	}
	return out
}

// applyConfigTypes merges the types map of the configuration into found.
func (a *Analyzer) applyConfigTypes(pkg *packages.Package, cfg *config.Config, found map[string]*annotation, order *[]string, verr *ValidationError) {
	for _, name := range cfg.TypeNames() {
		c, err := config.ParseCapability(cfg.Types[name])
		if err != nil {
			verr.add("types."+name, err)
			continue
		}
		obj, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName)
		if !ok {
			verr.add("types."+name, fmt.Errorf("%w: %s has no type %s", ErrUnknownType, pkg.PkgPath, name))
			continue
		}
		if ann, ok := found[name]; ok {
			ann.capability |= c
			continue
		}
		found[name] = &annotation{obj: obj, capability: c, pos: obj.Pos()}
		*order = append(*order, name)
	}
}

// check validates one annotation and builds its TypeInfo.
func (a *Analyzer) check(pkg *packages.Package, cfg *config.Config, output string, ann *annotation, verr *ValidationError) (*model.TypeInfo, bool) {
	pos := pkg.Fset.Position(ann.pos)
	if ann.obj == nil {
		verr.add(pos.String(), fmt.Errorf("%s: %w: type could not be resolved", pos, ErrUnsupportedType))
		return nil, false
	}
	name := ann.obj.Name()
	if ann.obj.IsAlias() || (ann.spec != nil && ann.spec.Assign.IsValid()) {
		verr.add(name, fmt.Errorf("%s: %w: %s is an alias; annotate the aliased type instead", pos, ErrUnsupportedType, name))
		return nil, false
	}
	named, ok := ann.obj.Type().(*types.Named)
	if !ok {
		verr.add(name, fmt.Errorf("%s: %w: %s is not a named type", pos, ErrUnsupportedType, name))
		return nil, false
	}
	kind := model.KindOf(named)
	switch kind {
	case model.Interface, model.Chan, model.Func, model.Pointer:
		verr.add(name, fmt.Errorf("%s: %w: %s is of kind %s", pos, ErrUnsupportedType, name, kind))
		return nil, false
	}

	ti := &model.TypeInfo{
		Name:       name,
		Kind:       kind,
		Capability: ann.capability,
		Pos:        pos,
		Object:     ann.obj,
	}
	if tparams := named.TypeParams(); tparams != nil {
		for i := 0; i < tparams.Len(); i++ {
			tp := tparams.At(i)
			ti.TypeParams = append(ti.TypeParams, &model.TypeParam{
				Name:       tp.Obj().Name(),
				Constraint: tp.Constraint(),
			})
		}
	}

	ok = true
	for _, tp := range ti.TypeParams {
		if slices.Contains(model.LocalNames, tp.Name) {
			verr.add(name+"["+tp.Name+"]", fmt.Errorf("%s: %w: type parameter %s of %s is a name generated code uses; rename it",
				pos, ErrNameConflict, tp.Name, name))
			ok = false
		}
	}
	for _, method := range generatedMethods(ti.Capability, cfg) {
		obj, index, _ := types.LookupFieldOrMethod(types.NewPointer(named), false, pkg.Types, method)
		if obj == nil || len(index) != 1 || inFile(pkg, obj, output) {
			continue
		}
		what := "method"
		if _, isVar := obj.(*types.Var); isVar {
			what = "field"
		}
		verr.add(name+"."+method, fmt.Errorf("%s: %w: %s already has a %s %s",
			pkg.Fset.Position(obj.Pos()), ErrMethodConflict, name, what, method))
		ok = false
	}

	if cfg.Constructors && ti.Capability.Has(model.Decode) {
		ctor := ti.Constructor()
		if obj := pkg.Types.Scope().Lookup(ctor); obj != nil && !inFile(pkg, obj, output) {
			verr.add(ctor, fmt.Errorf("%s: %w: %s is already declared; rename it or disable constructors",
				pkg.Fset.Position(obj.Pos()), ErrNameConflict, ctor))
			ok = false
		}
	}

	if !ok {
		return nil, false
	}
	slog.Debug("annotated type", "type", ti.String(), "pos", pos)
	return ti, true
}

// generatedMethods lists the methods that will be added for c.
func generatedMethods(c model.Capability, cfg *config.Config) []string {
	var methods []string
	if c.Has(model.Decode) {
		methods = append(methods, MethodFromValue)
	}
	if c.Has(model.Encode) {
		methods = append(methods, MethodToValue)
		if cfg.Must {
			methods = append(methods, MethodMustToValue)
		}
	}
	return methods
}

// inFile reports whether obj is declared in the output file, which is
// replaced on every run.
func inFile(pkg *packages.Package, obj types.Object, output string) bool {
	return filepath.Base(pkg.Fset.Position(obj.Pos()).Filename) == output
}
