package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"optic-gen/internal/manifest"
)

// ParseArgs parses command line arguments into Config.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}

	fs := pflag.NewFlagSet("optic-gen", pflag.ContinueOnError)
	fs.StringVarP(&cfg.ManifestPath, "manifest", "m", "", "YAML manifest describing the derivations")
	fs.StringVarP(&cfg.Package, "package", "p", "", "package pattern to inspect")
	fs.StringSliceVarP(&cfg.Types, "type", "t", nil, "type name to derive optics for (repeatable)")
	fs.StringVar(&cfg.Derive, "derive", manifest.DeriveLenses, "what to derive: lenses or traversals")
	fs.StringVarP(&cfg.Output, "output", "o", "", "output directory (default: the inspected package's directory)")
	fs.BoolVar(&cfg.Signatures, "signatures", false, "emit conformance-var signatures alongside lenses")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.ShowVersion {
		return cfg, nil
	}

	if cfg.ManifestPath != "" {
		if cfg.Package != "" || len(cfg.Types) > 0 {
			return nil, fmt.Errorf("--manifest cannot be combined with --package/--type")
		}

		return cfg, nil
	}

	if strings.TrimSpace(cfg.Package) == "" {
		return nil, fmt.Errorf("--package is required without a manifest")
	}

	if len(cfg.Types) == 0 {
		return nil, fmt.Errorf("at least one --type is required without a manifest")
	}

	switch cfg.Derive {
	case manifest.DeriveLenses, manifest.DeriveTraversals:
	default:
		return nil, fmt.Errorf("unknown --derive kind %q", cfg.Derive)
	}

	return cfg, nil
}

// Manifest builds the effective manifest for a run: either the loaded and
// validated YAML file, or the equivalent constructed from direct flags.
func (c *Config) Manifest() (*manifest.File, error) {
	if c.ManifestPath != "" {
		mf, err := manifest.LoadFile(c.ManifestPath)
		if err != nil {
			return nil, err
		}

		if err := manifest.Validate(mf); err != nil {
			return nil, err
		}

		return mf, nil
	}

	mf := &manifest.File{
		Package: c.Package,
		Output:  c.Output,
	}

	for _, name := range c.Types {
		mf.Optics = append(mf.Optics, manifest.Request{
			Type:       name,
			Derive:     c.Derive,
			Signatures: c.Signatures && c.Derive == manifest.DeriveLenses,
		})
	}

	applyFlagDefaults(mf)

	if err := manifest.Validate(mf); err != nil {
		return nil, err
	}

	return mf, nil
}

// applyFlagDefaults mirrors the default application the manifest loader
// performs on files, so flag-built runs go through the same validation.
func applyFlagDefaults(mf *manifest.File) {
	if mf.Version == "" {
		mf.Version = "1"
	}

	for i := range mf.Optics {
		r := &mf.Optics[i]

		if r.Naming == "" {
			switch r.Derive {
			case manifest.DeriveTraversals:
				r.Naming = manifest.NamingPrefix
			default:
				r.Naming = manifest.NamingUnderscore
			}
		}
	}
}
