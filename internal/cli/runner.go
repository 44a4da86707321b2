package cli

import (
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"

	"optic-gen/internal/derive"
	"optic-gen/internal/emit"
	"optic-gen/internal/introspect"
	"optic-gen/internal/manifest"
)

// Run executes one generation run: load the package, derive every
// requested optic, render, and write. Any derivation failure aborts the
// run before anything is written; per-type generation has no partial
// results.
func Run(cfg *Config) error {
	setupLogger(cfg.LogLevel)

	mf, err := cfg.Manifest()
	if err != nil {
		return err
	}

	loader, err := introspect.Load(mf.Package)
	if err != nil {
		return err
	}

	outDir, samePackage := resolveOutputDir(mf.Output, loader.Dir())

	outPkgPath := loader.PkgPath()
	if !samePackage {
		// Cross-package output: qualify everything, including the
		// inspected package itself.
		outPkgPath = ""
	}

	outPkgName := loader.PkgName()
	if mf.OutputPackage != "" {
		outPkgName = mf.OutputPackage
	}

	log.Info("deriving optics", "package", loader.PkgPath(), "requests", len(mf.Optics), "output", outDir)

	var files []emit.GeneratedFile

	for _, req := range mf.Optics {
		file, err := deriveOne(loader, req, outPkgPath, outPkgName, outDir)
		if err != nil {
			return err
		}

		files = append(files, *file)
	}

	if err := emit.WriteFiles(files, outDir); err != nil {
		return err
	}

	for _, f := range files {
		log.Info("wrote", "file", f.Filename)
	}

	return nil
}

// resolveOutputDir canonicalizes the requested output directory and decides
// whether it is the inspected package's own directory. pkgDir comes from the
// loader and is already absolute; the override may be spelled relatively, so
// both sides are normalized before comparing.
func resolveOutputDir(output, pkgDir string) (outDir string, samePackage bool) {
	if output == "" {
		return pkgDir, true
	}

	abs, err := filepath.Abs(output)
	if err != nil {
		return filepath.Clean(output), false
	}

	return abs, abs == filepath.Clean(pkgDir)
}

// deriveOne resolves one type against the catalog and produces its rendered
// optics file.
func deriveOne(cat introspect.Catalog, req manifest.Request, outPkgPath, outPkgName, outDir string) (*emit.GeneratedFile, error) {
	shape, err := cat.Resolve(req.Type)
	if err != nil {
		return nil, err
	}

	log.Debug("resolved shape", "type", req.Type, "kind", shape.Kind.String(),
		"fields", len(shape.Fields), "constructors", len(shape.Ctors))

	policy := policyFor(req)

	if outPkgPath == "" {
		if err := checkCrossPackage(shape, req, policy); err != nil {
			return nil, err
		}
	}

	fmtr := emit.NewFormatter(outPkgPath)

	var decls []emit.Decl

	switch req.Derive {
	case manifest.DeriveTraversals:
		decls, err = derive.DeriveTraversals(policy, shape, fmtr)

	default:
		sig := derive.NoSignature
		if req.Signatures {
			sig = derive.VarSignature
		}

		decls, err = derive.DeriveLenses(sig, policy, shape, fmtr)
	}

	if err != nil {
		return nil, fmt.Errorf("deriving %s for %s: %w", req.Derive, req.Type, err)
	}

	if log.GetLevel() <= log.DebugLevel {
		log.Debug("derived declarations", "type", req.Type, "decls", spew.Sdump(decls))
	}

	filename := strings.ToLower(req.Type) + "_optics.go"

	file, err := emit.Render(outPkgName, filename, fmtr, decls)
	if err != nil {
		if file != nil {
			_ = emit.WriteDebugUnformatted(outDir, filename, file.Content)
		}

		return nil, fmt.Errorf("rendering %s: %w", req.Type, err)
	}

	return file, nil
}

// checkCrossPackage rejects derivations whose generated code would touch
// identifiers unreachable from another package. Only names the policy
// actually accepts are checked; skipped fields and constructors can stay
// unexported.
func checkCrossPackage(shape *introspect.Shape, req manifest.Request, policy derive.Policy) error {
	if !token.IsExported(shape.Type.ID.Name) {
		return fmt.Errorf("cross-package output: type %s is unexported", shape.Type.ID)
	}

	if req.Derive == manifest.DeriveTraversals {
		for _, ctor := range shape.Ctors {
			if _, ok := policy(ctor.Name); !ok {
				continue
			}

			if shape.Kind == introspect.ShapeSum && !token.IsExported(ctor.Name) {
				return fmt.Errorf("cross-package output: constructor %s of %s is unexported", ctor.Name, shape.Type.ID)
			}

			for _, fieldName := range ctor.FieldNames {
				if !token.IsExported(fieldName) {
					return fmt.Errorf("cross-package output: field %s of constructor %s of %s is unexported",
						fieldName, ctor.Name, shape.Type.ID)
				}
			}
		}

		return nil
	}

	for _, field := range shape.Fields {
		if _, ok := policy(field.Name); !ok {
			continue
		}

		if !field.Exported {
			return fmt.Errorf("cross-package output: field %s of %s is unexported", field.Name, shape.Type.ID)
		}
	}

	return nil
}

// policyFor maps a manifest naming choice onto a derive.Policy.
func policyFor(req manifest.Request) derive.Policy {
	switch req.Naming {
	case manifest.NamingPrefix:
		return derive.Prefix
	case manifest.NamingSuffix:
		return derive.Suffixed(req.Suffix)
	case manifest.NamingRename:
		return derive.Renames(req.Rename)
	default:
		return derive.Underscore
	}
}

// setupLogger configures the process-wide logger level.
func setupLogger(logLevel string) {
	var level log.Level

	switch logLevel {
	case "debug":
		level = log.DebugLevel
	case "info":
		level = log.InfoLevel
	case "warn":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	default:
		level = log.InfoLevel
	}

	log.SetLevel(level)
	log.SetTimeFormat("15:04:05")
}
