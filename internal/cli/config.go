package cli

// Version is the tool version reported by --version.
const Version = "0.1.0"

// Config holds one generation run's settings, from flags or a manifest.
type Config struct {
	ManifestPath string
	Package      string
	Types        []string
	Derive       string
	Output       string
	Signatures   bool
	LogLevel     string
	ShowVersion  bool
}
