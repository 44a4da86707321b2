package introspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadModels(t *testing.T) *Loader {
	t.Helper()

	l, err := Load("optic-gen/models")
	require.NoError(t, err)

	return l
}

func loadShapes(t *testing.T) *Loader {
	t.Helper()

	l, err := Load("optic-gen/shapes")
	require.NoError(t, err)

	return l
}

func TestResolve_Record(t *testing.T) {
	l := loadModels(t)

	shape, err := l.Resolve("Person")
	require.NoError(t, err)

	assert.Equal(t, ShapeRecord, shape.Kind)
	assert.Equal(t, TypeID{PkgPath: "optic-gen/models", Name: "Person"}, shape.Type.ID)

	require.Len(t, shape.Fields, 2)
	assert.Equal(t, "_name", shape.Fields[0].Name)
	assert.Equal(t, "_Age", shape.Fields[1].Name)
	assert.Equal(t, RefBasic, shape.Fields[0].Type.Kind)
	assert.Equal(t, "string", shape.Fields[0].Type.Name)

	require.Len(t, shape.Ctors, 1)
	assert.Equal(t, []string{"_name", "_Age"}, shape.Ctors[0].FieldNames)
}

func TestResolve_Record_BlankFieldsSkipped(t *testing.T) {
	l := loadModels(t)

	shape, err := l.Resolve("Padded")
	require.NoError(t, err)

	assert.Equal(t, ShapeRecord, shape.Kind)

	require.Len(t, shape.Fields, 1)
	assert.Equal(t, "_name", shape.Fields[0].Name)

	require.Len(t, shape.Ctors, 1)
	assert.Equal(t, 1, shape.Ctors[0].Arity())
	assert.Equal(t, []string{"_name"}, shape.Ctors[0].FieldNames)
}

func TestResolve_GenericRecord(t *testing.T) {
	l := loadModels(t)

	shape, err := l.Resolve("Pair")
	require.NoError(t, err)

	assert.Equal(t, ShapeRecord, shape.Kind)
	require.Len(t, shape.Type.TypeParams, 1)
	assert.Equal(t, "T", shape.Type.TypeParams[0].Name)
	assert.Equal(t, "any", shape.Type.TypeParams[0].Constraint)

	require.Len(t, shape.Fields, 2)
	assert.Equal(t, RefParam, shape.Fields[0].Type.Kind)
	assert.Equal(t, "T", shape.Fields[0].Type.Name)
}

func TestResolve_Sum_ConstructorsInDeclarationOrder(t *testing.T) {
	l := loadShapes(t)

	shape, err := l.Resolve("Shape")
	require.NoError(t, err)

	assert.Equal(t, ShapeSum, shape.Kind)

	var names []string
	for _, c := range shape.Ctors {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{"Origin", "Circle", "Rect"}, names)

	assert.Equal(t, 0, shape.Ctors[0].Arity())
	assert.Equal(t, 1, shape.Ctors[1].Arity())
	assert.Equal(t, 2, shape.Ctors[2].Arity())
	assert.Equal(t, []string{"Width", "Height"}, shape.Ctors[2].FieldNames)
}

func TestResolve_Sum_QuantifiedConstructorAccepted(t *testing.T) {
	l := loadShapes(t)

	shape, err := l.Resolve("Box")
	require.NoError(t, err)

	require.Len(t, shape.Ctors, 2)
	assert.Equal(t, "EmptyBox", shape.Ctors[0].Name)
	assert.False(t, shape.Ctors[0].Quantified)
	assert.Equal(t, "Sealed", shape.Ctors[1].Name)
	assert.True(t, shape.Ctors[1].Quantified)
}

func TestResolve_Alias(t *testing.T) {
	l := loadModels(t)

	shape, err := l.Resolve("Alias")
	require.NoError(t, err)

	assert.Equal(t, ShapeAlias, shape.Kind)
}

func TestResolve_Opaque(t *testing.T) {
	l := loadModels(t)

	shape, err := l.Resolve("ID")
	require.NoError(t, err)

	assert.Equal(t, ShapeOpaque, shape.Kind)
}

func TestResolve_NotFound(t *testing.T) {
	l := loadModels(t)

	_, err := l.Resolve("NoSuchType")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "type name required")
}

func TestResolve_NonTypeIdentifier(t *testing.T) {
	l := loadModels(t)

	_, err := l.Resolve("NewPerson")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "type name required")
}

func TestLoader_Dir(t *testing.T) {
	l := loadModels(t)

	assert.NotEmpty(t, l.Dir())
	assert.Equal(t, "models", l.PkgName())
}
