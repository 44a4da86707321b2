package manifest

// Derivation kinds accepted in a manifest.
const (
	DeriveLenses     = "lenses"
	DeriveTraversals = "traversals"
)

// Naming policy names accepted in a manifest.
const (
	NamingUnderscore = "underscore" // default for lenses: "_x" -> "x"
	NamingPrefix     = "prefix"     // default for traversals: "X" -> "_X"
	NamingSuffix     = "suffix"     // "X" -> "X"+suffix
	NamingRename     = "rename"     // explicit rename map
)

// File is the top-level YAML document driving a batch of derivations.
type File struct {
	Version string `yaml:"version"`
	// Package is the Go package pattern whose types are inspected.
	Package string `yaml:"package"`
	// Output overrides the destination directory; empty means the
	// inspected package's own directory.
	Output string `yaml:"output,omitempty"`
	// OutputPackage overrides the generated package name; empty keeps the
	// inspected package's name.
	OutputPackage string `yaml:"outputPackage,omitempty"`
	// Optics lists the derivation requests, processed in order.
	Optics []Request `yaml:"optics"`
}

// Request describes one derivation for one type.
type Request struct {
	Type   string `yaml:"type"`
	Derive string `yaml:"derive"`
	// Naming selects the policy; empty picks the kind's default
	// (underscore for lenses, prefix for traversals).
	Naming string            `yaml:"naming,omitempty"`
	Suffix string            `yaml:"suffix,omitempty"`
	Rename map[string]string `yaml:"rename,omitempty"`
	// Signatures enables conformance-var emission; lenses only.
	Signatures bool `yaml:"signatures,omitempty"`
}
