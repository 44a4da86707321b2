package introspect

import (
	"fmt"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Loader resolves type identifiers against one loaded Go package.
type Loader struct {
	pkg *packages.Package
}

// Load loads the package matching the given pattern (a standard Go package
// pattern, e.g. "./models" or "optic-gen/shapes") and returns a Loader over
// it. The pattern must match exactly one package.
func Load(pattern string) (*Loader, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %s: %w", pattern, err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %s matched %d packages, need exactly one", pattern, len(pkgs))
	}

	pkg := pkgs[0]

	var errs []error
	for _, e := range pkg.Errors {
		errs = append(errs, e)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, errs)
	}

	return &Loader{pkg: pkg}, nil
}

// PkgPath returns the import path of the loaded package.
func (l *Loader) PkgPath() string {
	return l.pkg.PkgPath
}

// PkgName returns the package name of the loaded package.
func (l *Loader) PkgName() string {
	return l.pkg.Name
}

// Dir returns the source directory of the loaded package, used as the
// default output directory so generated optics live next to the types.
func (l *Loader) Dir() string {
	if len(l.pkg.GoFiles) == 0 {
		return ""
	}

	return filepath.Dir(l.pkg.GoFiles[0])
}

// Resolve looks up a type identifier in the loaded package and returns its
// declaration shape. The shape is built fresh per call and not cached.
func (l *Loader) Resolve(name string) (*Shape, error) {
	obj := l.pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return nil, fmt.Errorf("%s: type name required, no such type in %s", name, l.pkg.PkgPath)
	}

	typeName, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s: type name required, %s names a %T", name, name, obj)
	}

	info := TypeInfo{
		ID: TypeID{PkgPath: l.pkg.PkgPath, Name: name},
	}

	if typeName.IsAlias() {
		return &Shape{Kind: ShapeAlias, Type: info}, nil
	}

	named, ok := typeName.Type().(*types.Named)
	if !ok {
		return &Shape{Kind: ShapeOpaque, Type: info}, nil
	}

	info.TypeParams = l.typeParams(named.TypeParams())

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		return l.recordShape(info, ut), nil

	case *types.Interface:
		return l.sumShape(info, ut), nil

	default:
		return &Shape{Kind: ShapeOpaque, Type: info}, nil
	}
}

// recordShape builds the Record shape of a struct type: its ordered field
// list plus the single constructor those fields flatten into.
func (l *Loader) recordShape(info TypeInfo, st *types.Struct) *Shape {
	shape := &Shape{Kind: ShapeRecord, Type: info}

	ctor := ConstructorInfo{Name: info.ID.Name}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if field.Name() == "_" {
			continue
		}

		ref := l.typeRef(field.Type())

		shape.Fields = append(shape.Fields, FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     ref,
			Tag:      reflectTag(st.Tag(i)),
			Index:    i,
			Embedded: field.Embedded(),
		})

		ctor.Args = append(ctor.Args, ref)
		ctor.FieldNames = append(ctor.FieldNames, field.Name())
	}

	shape.Ctors = []ConstructorInfo{ctor}

	return shape
}

// sumShape builds the Sum shape of a sealed interface: one constructor per
// struct type in the same package whose value type implements it, in source
// declaration order. Generic struct types are probed with their parameters
// instantiated as any; matches are carried with Quantified set, to be
// rejected later by traversal generation rather than here.
func (l *Loader) sumShape(info TypeInfo, iface *types.Interface) *Shape {
	shape := &Shape{Kind: ShapeSum, Type: info}

	scope := l.pkg.Types.Scope()

	type candidate struct {
		ctor ConstructorInfo
		pos  token.Pos
	}

	var found []candidate

	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() || tn.Name() == info.ID.Name {
			continue
		}

		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		quantified := named.TypeParams().Len() > 0

		probe := types.Type(named)
		if quantified {
			inst, err := instantiateWithAny(named)
			if err != nil {
				continue
			}

			probe = inst
		}

		if !types.Implements(probe, iface) {
			continue
		}

		ctor := ConstructorInfo{Name: name, Quantified: quantified}
		for i := 0; i < st.NumFields(); i++ {
			field := st.Field(i)
			if field.Name() == "_" {
				continue
			}

			ctor.Args = append(ctor.Args, l.typeRef(field.Type()))
			ctor.FieldNames = append(ctor.FieldNames, field.Name())
		}

		found = append(found, candidate{ctor: ctor, pos: tn.Pos()})
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].pos < found[j].pos
	})

	for _, c := range found {
		shape.Ctors = append(shape.Ctors, c.ctor)
	}

	return shape
}

// instantiateWithAny instantiates a generic named type with every parameter
// bound to any, so implements-checks have a concrete type to probe.
func instantiateWithAny(named *types.Named) (types.Type, error) {
	n := named.TypeParams().Len()

	args := make([]types.Type, n)
	for i := range args {
		args[i] = types.Universe.Lookup("any").Type()
	}

	return types.Instantiate(nil, named, args, false)
}

// typeParams renders the generic parameter list of a declared type.
func (l *Loader) typeParams(tparams *types.TypeParamList) []TypeParam {
	if tparams == nil || tparams.Len() == 0 {
		return nil
	}

	out := make([]TypeParam, 0, tparams.Len())

	for i := 0; i < tparams.Len(); i++ {
		tp := tparams.At(i)

		constraint := types.TypeString(tp.Constraint(), l.qualifier)
		if constraint == "interface{}" {
			constraint = "any"
		}

		out = append(out, TypeParam{Name: tp.Obj().Name(), Constraint: constraint})
	}

	return out
}

// typeRef converts a go/types.Type into a structural TypeRef. Named types
// stop the recursion (they are referenced by name, not decomposed), which
// also keeps recursive declarations finite.
func (l *Loader) typeRef(t types.Type) TypeRef {
	switch tt := t.(type) {
	case *types.Basic:
		return TypeRef{Kind: RefBasic, Name: tt.Name()}

	case *types.Alias:
		return l.namedRef(tt.Obj(), nil)

	case *types.Named:
		return l.namedRef(tt.Obj(), tt.TypeArgs())

	case *types.TypeParam:
		return TypeRef{Kind: RefParam, Name: tt.Obj().Name()}

	case *types.Pointer:
		elem := l.typeRef(tt.Elem())
		return TypeRef{Kind: RefPointer, Elem: &elem}

	case *types.Slice:
		elem := l.typeRef(tt.Elem())
		return TypeRef{Kind: RefSlice, Elem: &elem}

	case *types.Array:
		elem := l.typeRef(tt.Elem())
		return TypeRef{Kind: RefArray, Elem: &elem, Len: tt.Len()}

	case *types.Map:
		key := l.typeRef(tt.Key())
		elem := l.typeRef(tt.Elem())

		return TypeRef{Kind: RefMap, Key: &key, Elem: &elem}

	default:
		// Funcs, chans, interface literals: carry the go/types value and
		// let the renderer print it with its own import-collecting qualifier.
		return TypeRef{Kind: RefVerbatim, Go: t}
	}
}

// namedRef builds the reference of a named or aliased type, including any
// type arguments of an instantiation.
func (l *Loader) namedRef(obj *types.TypeName, targs *types.TypeList) TypeRef {
	ref := TypeRef{Kind: RefNamed, Name: obj.Name()}
	if obj.Pkg() != nil {
		ref.PkgPath = obj.Pkg().Path()
	}

	if targs != nil {
		for i := 0; i < targs.Len(); i++ {
			ref.Args = append(ref.Args, l.typeRef(targs.At(i)))
		}
	}

	return ref
}

// qualifier renders package names relative to the loaded package.
func (l *Loader) qualifier(p *types.Package) string {
	if p == l.pkg.Types {
		return ""
	}

	return p.Name()
}
