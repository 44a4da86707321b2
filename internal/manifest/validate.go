package manifest

import "fmt"

// Validate performs structural validation of a manifest. It doesn't touch
// the type catalog; unresolved type names fail later during derivation with
// the introspector's own messages.
func Validate(mf *File) error {
	if mf == nil {
		return fmt.Errorf("manifest is nil")
	}

	if mf.Version != "1" {
		return fmt.Errorf("unsupported manifest version %q", mf.Version)
	}

	if mf.Package == "" {
		return fmt.Errorf("manifest: package pattern is required")
	}

	if len(mf.Optics) == 0 {
		return fmt.Errorf("manifest: at least one optics entry is required")
	}

	for i := range mf.Optics {
		r := &mf.Optics[i]

		if r.Type == "" {
			return fmt.Errorf("manifest: optics[%d]: type is required", i)
		}

		switch r.Derive {
		case DeriveLenses, DeriveTraversals:
		default:
			return fmt.Errorf("manifest: optics[%d] (%s): unknown derive kind %q", i, r.Type, r.Derive)
		}

		switch r.Naming {
		case NamingUnderscore, NamingPrefix:
		case NamingSuffix:
			if r.Suffix == "" {
				return fmt.Errorf("manifest: optics[%d] (%s): naming suffix requires a suffix value", i, r.Type)
			}
		case NamingRename:
			if len(r.Rename) == 0 {
				return fmt.Errorf("manifest: optics[%d] (%s): naming rename requires a rename map", i, r.Type)
			}
		default:
			return fmt.Errorf("manifest: optics[%d] (%s): unknown naming policy %q", i, r.Type, r.Naming)
		}

		if r.Signatures && r.Derive == DeriveTraversals {
			return fmt.Errorf("manifest: optics[%d] (%s): signatures are only emitted for lenses", i, r.Type)
		}
	}

	return nil
}
