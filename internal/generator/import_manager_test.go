package generator

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/origadmin/tryfrom/internal/model"
)

func TestImportManager_Add(t *testing.T) {
	im := NewImportManager("example.com/self")

	alias := im.Add("github.com/example/pkg1")
	if alias != "pkg1" {
		t.Errorf("Expected alias 'pkg1', got '%s'", alias)
	}

	alias2 := im.Add("github.com/example/pkg1")
	if alias2 != "pkg1" {
		t.Errorf("Expected alias 'pkg1', got '%s'", alias2)
	}

	alias3 := im.Add("github.com/example/pkg2")
	if alias3 != "pkg2" {
		t.Errorf("Expected alias 'pkg2', got '%s'", alias3)
	}

	if self := im.Add("example.com/self"); self != "" {
		t.Errorf("Expected no alias for the package itself, got '%s'", self)
	}
}

func TestImportManager_ConflictHandling(t *testing.T) {
	im := NewImportManager("example.com/self")

	alias1 := im.Add("github.com/example1/pkg")
	alias2 := im.Add("github.com/example2/pkg")

	if alias1 != "pkg" {
		t.Errorf("Expected first alias 'pkg', got '%s'", alias1)
	}
	if alias2 != "pkg1" {
		t.Errorf("Expected second alias 'pkg1', got '%s'", alias2)
	}
}

func TestImportManager_Reserve(t *testing.T) {
	im := NewImportManager("example.com/self")
	im.Reserve("value", "value1")

	assert.Equal(t, "value2", im.Add("github.com/origadmin/tryfrom/value"))
	assert.Equal(t, []model.Import{
		{Name: "value2", Path: "github.com/origadmin/tryfrom/value"},
	}, im.Imports())
}

func TestImportManager_GuessedNames(t *testing.T) {
	testCases := []struct {
		path string
		want string
	}{
		{path: "github.com/origadmin/tryfrom/value", want: "value"},
		{path: "github.com/example/lib/v2", want: "lib"},
		{path: "gopkg.in/yaml.v3", want: "yaml"},
		{path: "github.com/goccy/go-json", want: "json"},
		{path: "example.com/my-values", want: "myvalues"},
		{path: "example.com/type", want: "pkg1"},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			im := NewImportManager("example.com/self")
			assert.Equal(t, tc.want, im.Add(tc.path))
		})
	}
}

func TestImportManager_Imports(t *testing.T) {
	im := NewImportManager("example.com/self")
	im.Add("github.com/origadmin/tryfrom/value")
	im.Add("github.com/example/lib/v2")
	im.Add("github.com/goccy/go-json")

	assert.Equal(t, []model.Import{
		{Name: "lib", Path: "github.com/example/lib/v2"},
		{Name: "json", Path: "github.com/goccy/go-json"},
		{Path: "github.com/origadmin/tryfrom/value"},
	}, im.Imports())
}

func TestImportManager_Qualifier(t *testing.T) {
	im := NewImportManager("example.com/self")
	qualify := im.Qualifier()

	self := types.NewPackage("example.com/self", "self")
	constraints := types.NewPackage("golang.org/x/exp/constraints", "constraints")
	yaml := types.NewPackage("gopkg.in/yaml.v3", "yaml")

	assert.Equal(t, "", qualify(self))
	assert.Equal(t, "", qualify(nil))
	assert.Equal(t, "constraints", qualify(constraints))
	assert.Equal(t, "yaml", qualify(yaml))

	ordered := types.NewTypeName(0, constraints, "Ordered", nil)
	named := types.NewNamed(ordered, types.NewInterfaceType(nil, nil), nil)
	assert.Equal(t, "constraints.Ordered", types.TypeString(named, qualify))

	assert.Equal(t, []model.Import{
		{Path: "golang.org/x/exp/constraints"},
		{Name: "yaml", Path: "gopkg.in/yaml.v3"},
	}, im.Imports())
}
