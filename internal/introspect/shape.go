package introspect

import (
	"go/types"
	"reflect"

	"optic-gen/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "optic-gen/models"
	Name    string // e.g., "Person"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeParam is one generic parameter of a declared type.
type TypeParam struct {
	Name       string // e.g., "T"
	Constraint string // rendered constraint, "any" for interface{}
}

// TypeInfo identifies a declared type plus its generic parameters.
// One TypeInfo is produced per resolution and discarded with the call.
type TypeInfo struct {
	ID         TypeID
	TypeParams []TypeParam
}

// RefKind classifies a type reference.
type RefKind int

const (
	RefVerbatim RefKind = iota // anything not covered below, rendered from go/types
	RefBasic                   // int, string, bool, ...
	RefNamed                   // named type, possibly instantiated
	RefParam                   // generic type parameter
	RefPointer
	RefSlice
	RefArray
	RefMap
)

// String returns a human-readable representation of the RefKind.
func (k RefKind) String() string {
	switch k {
	case RefBasic:
		return "basic"
	case RefNamed:
		return "named"
	case RefParam:
		return "param"
	case RefPointer:
		return "pointer"
	case RefSlice:
		return "slice"
	case RefArray:
		return "array"
	case RefMap:
		return "map"
	case RefVerbatim:
		return "verbatim"
	default:
		return common.UnknownStr
	}
}

// TypeRef is a structural reference to a type, detached from go/types so
// generators and renderers can be exercised without loading packages.
type TypeRef struct {
	Kind    RefKind
	Name    string     // basic/named/param name
	PkgPath string     // for named types, the defining package
	Elem    *TypeRef   // pointer/slice/array element, map value
	Key     *TypeRef   // map key
	Len     int64      // array length
	Args    []TypeRef  // type arguments of an instantiated named type
	Go      types.Type // original type, set by the loader for verbatim refs
}

// FieldInfo identifies one record field. The struct tag and exported flag
// stand in for source-level field annotations.
type FieldInfo struct {
	Name     string
	Exported bool
	Type     TypeRef
	Tag      reflect.StructTag
	Index    int
	Embedded bool
}

// ConstructorInfo identifies one constructor of a possibly-multi-constructor
// type: its name and the types of its positional arguments. Field names are
// flattened away from the argument list; they survive only as extraction
// expressions for the generated match clause.
type ConstructorInfo struct {
	Name       string
	Args       []TypeRef
	FieldNames []string // parallel to Args
	Quantified bool     // constructor declares its own type parameters
}

// Arity returns the number of positional arguments.
func (c ConstructorInfo) Arity() int {
	return len(c.Args)
}

// ShapeKind classifies a resolved declaration.
type ShapeKind int

const (
	ShapeOpaque ShapeKind = iota // named type over a non-struct, non-interface underlying
	ShapeRecord                  // struct type: one constructor with named fields
	ShapeSum                     // sealed interface: zero or more struct constructors
	ShapeAlias                   // type alias declaration
)

// String returns a human-readable representation of the ShapeKind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRecord:
		return "record"
	case ShapeSum:
		return "sum"
	case ShapeAlias:
		return "alias"
	case ShapeOpaque:
		return "opaque"
	default:
		return common.UnknownStr
	}
}

// Shape is the resolved declaration of one type: a tagged variant over
// record, sum, alias, and opaque declarations. Fields is populated for
// records; Ctors for records (the single constructor) and sums.
type Shape struct {
	Kind   ShapeKind
	Type   TypeInfo
	Fields []FieldInfo
	Ctors  []ConstructorInfo
}

// Catalog resolves type identifiers to declaration shapes. The Loader is
// the production implementation; tests may substitute their own.
type Catalog interface {
	Resolve(name string) (*Shape, error)
}

func reflectTag(raw string) reflect.StructTag {
	return reflect.StructTag(raw)
}
