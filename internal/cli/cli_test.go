package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optic-gen/internal/manifest"
)

func TestParseArgs_DirectFlags(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"--package", "./models",
		"--type", "Person",
		"--type", "Account",
		"--derive", "lenses",
		"--signatures",
	})

	require.NoError(t, err)
	assert.Equal(t, "./models", cfg.Package)
	assert.Equal(t, []string{"Person", "Account"}, cfg.Types)
	assert.True(t, cfg.Signatures)
}

func TestParseArgs_ManifestExclusive(t *testing.T) {
	_, err := ParseArgs([]string{"--manifest", "optics.yaml", "--package", "./models"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be combined")
}

func TestParseArgs_RequiresPackageAndTypes(t *testing.T) {
	_, err := ParseArgs([]string{"--type", "Person"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--package is required")

	_, err = ParseArgs([]string{"--package", "./models"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one --type")
}

func TestParseArgs_UnknownDerive(t *testing.T) {
	_, err := ParseArgs([]string{"--package", "./models", "--type", "P", "--derive", "isos"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown --derive kind")
}

func TestParseArgs_Version(t *testing.T) {
	cfg, err := ParseArgs([]string{"--version"})

	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestManifest_FromFlags(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"--package", "./shapes",
		"--type", "Shape",
		"--derive", "traversals",
	})
	require.NoError(t, err)

	mf, err := cfg.Manifest()
	require.NoError(t, err)

	assert.Equal(t, "./shapes", mf.Package)
	require.Len(t, mf.Optics, 1)
	assert.Equal(t, manifest.DeriveTraversals, mf.Optics[0].Derive)
	assert.Equal(t, manifest.NamingPrefix, mf.Optics[0].Naming)
}

func TestManifest_SignaturesDroppedForTraversals(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"--package", "./shapes",
		"--type", "Shape",
		"--derive", "traversals",
		"--signatures",
	})
	require.NoError(t, err)

	mf, err := cfg.Manifest()
	require.NoError(t, err)
	assert.False(t, mf.Optics[0].Signatures)
}
