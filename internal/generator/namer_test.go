package generator

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/origadmin/tryfrom/internal/model"
)

func TestNamer_TypeParams(t *testing.T) {
	im := NewImportManager("example.com/self")
	namer := NewNamer(im.Qualifier())

	constraints := types.NewPackage("golang.org/x/exp/constraints", "constraints")
	ordered := types.NewNamed(types.NewTypeName(0, constraints, "Ordered", nil), types.NewInterfaceType(nil, nil), nil)
	comparable := types.Universe.Lookup("comparable").Type()

	ti := &model.TypeInfo{
		Name: "Tree",
		TypeParams: []*model.TypeParam{
			{Name: "K", Constraint: ordered},
			{Name: "V", Constraint: comparable},
			{Name: "M"},
		},
	}
	assert.Equal(t, "[K constraints.Ordered, V comparable, M any]", namer.TypeParams(ti))
	assert.Equal(t, []model.Import{{Path: "golang.org/x/exp/constraints"}}, im.Imports())

	assert.Equal(t, "", namer.TypeParams(&model.TypeInfo{Name: "Plain"}))
}

func TestNamer_Type(t *testing.T) {
	namer := NewNamer(NewImportManager("example.com/self").Qualifier())
	self := types.NewPackage("example.com/self", "self")
	local := types.NewNamed(types.NewTypeName(0, self, "Local", nil), types.Typ[types.Int], nil)

	assert.Equal(t, "Local", namer.Type(local))
	assert.Equal(t, "[]Local", namer.Type(types.NewSlice(local)))
	assert.Equal(t, "any", namer.Type(nil))
}

func TestQualify(t *testing.T) {
	assert.Equal(t, "value.", Qualify("value"))
	assert.Equal(t, "", Qualify(""))
}
