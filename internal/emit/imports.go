package emit

import (
	"fmt"
	"go/types"
	"sort"
	"strings"

	"optic-gen/internal/common"
	"optic-gen/internal/introspect"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// Formatter renders type references as Go source relative to one output
// package, collecting the import set as it goes.
type Formatter struct {
	pkgPath string // package the generated file lives in
	imports map[string]importSpec
}

// NewFormatter creates a Formatter for a file generated into pkgPath.
func NewFormatter(pkgPath string) *Formatter {
	return &Formatter{
		pkgPath: pkgPath,
		imports: make(map[string]importSpec),
	}
}

// Use registers an import and returns the qualifier to reference it with.
// Same-package paths yield an empty qualifier and no import.
func (f *Formatter) Use(pkgPath string) string {
	if pkgPath == "" || pkgPath == f.pkgPath {
		return ""
	}

	alias := common.PkgAlias(pkgPath)
	f.imports[pkgPath] = importSpec{Alias: alias, Path: pkgPath}

	return alias
}

// Ref renders a TypeRef, registering any packages it references.
func (f *Formatter) Ref(t introspect.TypeRef) string {
	switch t.Kind {
	case introspect.RefBasic, introspect.RefParam:
		return t.Name

	case introspect.RefNamed:
		name := t.Name
		if q := f.Use(t.PkgPath); q != "" {
			name = q + "." + name
		}

		if len(t.Args) == 0 {
			return name
		}

		args := make([]string, 0, len(t.Args))
		for _, a := range t.Args {
			args = append(args, f.Ref(a))
		}

		return name + "[" + join(args) + "]"

	case introspect.RefPointer:
		return "*" + f.Ref(*t.Elem)

	case introspect.RefSlice:
		return "[]" + f.Ref(*t.Elem)

	case introspect.RefArray:
		return fmt.Sprintf("[%d]%s", t.Len, f.Ref(*t.Elem))

	case introspect.RefMap:
		return "map[" + f.Ref(*t.Key) + "]" + f.Ref(*t.Elem)

	default:
		if t.Go == nil {
			return t.Name
		}

		return types.TypeString(t.Go, f.qualifier)
	}
}

// TypeExpr renders the inspected type itself, applying its own type
// parameters as arguments (a generated function redeclares them).
func (f *Formatter) TypeExpr(info introspect.TypeInfo) string {
	name := info.ID.Name
	if q := f.Use(info.ID.PkgPath); q != "" {
		name = q + "." + name
	}

	if len(info.TypeParams) == 0 {
		return name
	}

	args := make([]string, 0, len(info.TypeParams))
	for _, tp := range info.TypeParams {
		args = append(args, tp.Name)
	}

	return name + "[" + join(args) + "]"
}

// Imports returns the collected import set sorted by path.
func (f *Formatter) Imports() []importSpec {
	out := make([]importSpec, 0, len(f.imports))
	for _, imp := range f.imports {
		out = append(out, imp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}

// qualifier is the go/types qualifier for verbatim refs; it records imports
// as a side effect of printing.
func (f *Formatter) qualifier(p *types.Package) string {
	if p.Path() == f.pkgPath {
		return ""
	}

	f.imports[p.Path()] = importSpec{Alias: p.Name(), Path: p.Path()}

	return p.Name()
}

func join(parts []string) string {
	return strings.Join(parts, ", ")
}
