package analyzer

import (
	"context"
	"fmt"
	"go/ast"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/origadmin/tryfrom/internal/config"
)

// LoadMode is what the analyzer needs from go/packages: syntax with
// comments for the directives and full type information for validation.
const LoadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
	packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports

// PackageWalker loads the packages named on the command line.
type PackageWalker struct {
	// Tags are extra build tags used while loading.
	Tags []string
}

// NewPackageWalker creates a new PackageWalker.
func NewPackageWalker(tags ...string) *PackageWalker {
	return &PackageWalker{Tags: tags}
}

// Load loads the packages matching patterns, resolved relative to dir.
// Type errors are logged rather than returned, since a stale generated file
// is a common cause and regeneration fixes it.
func (w *PackageWalker) Load(ctx context.Context, dir string, patterns ...string) ([]*packages.Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     dir,
		Tests:   false,
	}
	if len(w.Tags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(w.Tags, ",")}
	}

	slog.Debug("PackageWalker.Load", "dir", dir, "patterns", patterns)
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages %v: %w", patterns, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found for %v in %s", patterns, dir)
	}
	for _, pkg := range pkgs {
		for _, pkgErr := range pkg.Errors {
			slog.Warn("Package contains errors",
				"pkg", pkg.PkgPath,
				"error", pkgErr.Msg,
				"pos", pkgErr.Pos)
		}
		if pkg.Types == nil || pkg.TypesInfo == nil {
			return nil, fmt.Errorf("package %s could not be type-checked", pkg.PkgPath)
		}
	}
	return pkgs, nil
}

// SourceFile is a file of a loaded package.
type SourceFile struct {
	Name      string // absolute path
	Syntax    *ast.File
	Generated bool
}

// Files splits the syntax of pkg into files, marking those written by a code
// generator.
func Files(pkg *packages.Package) []SourceFile {
	files := make([]SourceFile, 0, len(pkg.Syntax))
	for _, f := range pkg.Syntax {
		name := pkg.Fset.Position(f.Package).Filename
		files = append(files, SourceFile{
			Name:      name,
			Syntax:    f,
			Generated: IsGenerated(name, f),
		})
	}
	return files
}

// IsGenerated reports whether a file must be skipped when looking for
// directives: either it is named *.gen.go or it carries the standard
// "Code generated ... DO NOT EDIT." header.
func IsGenerated(name string, f *ast.File) bool {
	if strings.HasSuffix(filepath.Base(name), config.GeneratedSuffix) {
		return true
	}
	return f != nil && ast.IsGenerated(f)
}

// packageDir returns the directory holding the files of pkg.
func packageDir(pkg *packages.Package) string {
	for _, files := range [][]string{pkg.GoFiles, pkg.CompiledGoFiles, pkg.OtherFiles} {
		if len(files) > 0 {
			return filepath.Dir(files[0])
		}
	}
	return ""
}
