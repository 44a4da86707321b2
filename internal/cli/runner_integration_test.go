package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests load real packages from this module and run the whole
// pipeline end to end.

func TestRun_LensesFromManifest(t *testing.T) {
	outDir := t.TempDir()

	manifestPath := filepath.Join(t.TempDir(), "optics.yaml")
	content := `
package: optic-gen/models
output: ` + outDir + `
optics:
  - type: Account
    naming: rename
    rename:
      Owner: OwnerLens
    signatures: true
`
	require.NoError(t, os.WriteFile(manifestPath, []byte(content), 0o644))

	cfg, err := ParseArgs([]string{"--manifest", manifestPath})
	require.NoError(t, err)

	require.NoError(t, Run(cfg))

	data, err := os.ReadFile(filepath.Join(outDir, "account_optics.go"))
	require.NoError(t, err)

	src := string(data)
	assert.Contains(t, src, "// Code generated by optic-gen. DO NOT EDIT.")
	assert.Contains(t, src, "package models")
	assert.Contains(t, src, "func OwnerLens(k func(string) optic.Value, a models.Account) optic.Value {")
	assert.Contains(t, src, "var _ func(func(string) optic.Value, models.Account) optic.Value = OwnerLens")
	assert.Contains(t, src, `"optic-gen/models"`)
	assert.Contains(t, src, `"optic-gen/optic"`)
}

func TestRun_TraversalsFromFlags(t *testing.T) {
	outDir := t.TempDir()

	cfg, err := ParseArgs([]string{
		"--package", "optic-gen/shapes",
		"--type", "Shape",
		"--derive", "traversals",
		"--output", outDir,
	})
	require.NoError(t, err)

	require.NoError(t, Run(cfg))

	data, err := os.ReadFile(filepath.Join(outDir, "shape_optics.go"))
	require.NoError(t, err)

	src := string(data)
	assert.Contains(t, src, "func _Origin(")
	assert.Contains(t, src, "func _Circle(")
	assert.Contains(t, src, "func _Rect(")
	assert.Contains(t, src, "c, ok := t.(shapes.Circle)")
	assert.Contains(t, src, "return optic.Pure(t)")
}

func TestRun_TaggedUnionOnLensPathFails(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"--package", "optic-gen/shapes",
		"--type", "Shape",
		"--output", t.TempDir(),
	})
	require.NoError(t, err)

	err = Run(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tagged union")
}

func TestRun_QuantifiedConstructorFails(t *testing.T) {
	outDir := t.TempDir()

	cfg, err := ParseArgs([]string{
		"--package", "optic-gen/shapes",
		"--type", "Box",
		"--derive", "traversals",
		"--output", outDir,
	})
	require.NoError(t, err)

	err = Run(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sealed")
	assert.Contains(t, err.Error(), "universally quantified")

	// nothing may be written for the failing run
	entries, readErr := os.ReadDir(outDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestRun_CrossPackageUnexportedFieldFails(t *testing.T) {
	outDir := t.TempDir()

	cfg, err := ParseArgs([]string{
		"--package", "optic-gen/models",
		"--type", "Person",
		"--output", outDir,
	})
	require.NoError(t, err)

	err = Run(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "_name")
	assert.Contains(t, err.Error(), "unexported")

	entries, readErr := os.ReadDir(outDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestRun_UnknownTypeFails(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"--package", "optic-gen/models",
		"--type", "Ghost",
		"--output", t.TempDir(),
	})
	require.NoError(t, err)

	err = Run(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "type name required")
}
