package generator

import (
	"fmt"
	"go/token"
	"go/types"
	"path"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/origadmin/tryfrom/internal/model"
)

var majorVersion = regexp.MustCompile(`^v[0-9]+$`)

// ImportManager manages the imports of one generated file.
type ImportManager struct {
	self     string            // import path of the package being generated
	imports  map[string]string // path -> name used in the file
	reserved map[string]bool
	counter  int
}

var _ model.ImportManager = (*ImportManager)(nil)

// NewImportManager creates an ImportManager for a file of package self.
func NewImportManager(self string) *ImportManager {
	return &ImportManager{
		self:     self,
		imports:  make(map[string]string),
		reserved: make(map[string]bool),
		counter:  1,
	}
}

// Reserve marks names an import must not take, such as the package-level
// identifiers of the generated package.
func (im *ImportManager) Reserve(names ...string) {
	for _, name := range names {
		im.reserved[name] = true
	}
}

// Add adds an import and returns the name to use for it. The package name
// is guessed from the path. Adding the package being generated returns the
// empty string.
func (im *ImportManager) Add(importPath string) string {
	return im.add(importPath, guessName(importPath))
}

func (im *ImportManager) add(importPath, name string) string {
	if importPath == im.self {
		return ""
	}
	if alias, exists := im.imports[importPath]; exists {
		return alias
	}

	alias := name
	if !token.IsIdentifier(alias) || alias == "_" {
		alias = fmt.Sprintf("pkg%d", im.counter)
		im.counter++
	}

	// Handle conflicts.
	original := alias
	for n := 1; im.taken(alias); n++ {
		alias = fmt.Sprintf("%s%d", original, n)
	}

	im.imports[importPath] = alias
	return alias
}

func (im *ImportManager) taken(alias string) bool {
	if im.reserved[alias] {
		return true
	}
	for _, existing := range im.imports {
		if existing == alias {
			return true
		}
	}
	return false
}

// Qualifier returns a types.Qualifier that names packages the way this file
// imports them, adding imports as needed.
func (im *ImportManager) Qualifier() types.Qualifier {
	return func(pkg *types.Package) string {
		if pkg == nil {
			return ""
		}
		return im.add(pkg.Path(), pkg.Name())
	}
}

// Imports returns all imports sorted by path. An import is named
// explicitly unless its name is the last element of its path.
func (im *ImportManager) Imports() []model.Import {
	paths := make([]string, 0, len(im.imports))
	for p := range im.imports {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	imports := make([]model.Import, 0, len(paths))
	for _, p := range paths {
		spec := model.Import{Path: p}
		if alias := im.imports[p]; alias != path.Base(p) {
			spec.Name = alias
		}
		imports = append(imports, spec)
	}
	return imports
}

// guessName derives a package name from an import path the way go tooling
// does: a trailing major version element is skipped, a gopkg.in style
// ".vN" suffix is dropped and characters not allowed in identifiers are
// removed.
func guessName(importPath string) string {
	base := path.Base(importPath)
	if majorVersion.MatchString(base) {
		if dir := path.Dir(importPath); dir != "." {
			base = path.Base(dir)
		}
	}
	if i := strings.LastIndex(base, ".v"); i > 0 && majorVersion.MatchString(base[i+1:]) {
		base = base[:i]
	}
	base = strings.TrimPrefix(base, "go-")
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, base)
}
