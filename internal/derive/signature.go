package derive

import (
	"fmt"

	"optic-gen/internal/emit"
	"optic-gen/internal/introspect"
)

// OpticPkgPath is the import path of the runtime vocabulary generated code
// compiles against.
const OpticPkgPath = "optic-gen/optic"

// SignatureDeriver optionally emits declarations pinning a generated lens
// to its type. The lens generator passes results through without
// interpreting them; traversals never emit signatures.
type SignatureDeriver func(name string, t introspect.TypeInfo, f introspect.FieldInfo, fmtr *emit.Formatter) []emit.Decl

// NoSignature emits nothing.
func NoSignature(string, introspect.TypeInfo, introspect.FieldInfo, *emit.Formatter) []emit.Decl {
	return nil
}

// VarSignature emits a blank conformance var so the compiler checks the
// generated lens against its expected shape. Generic types get a comment
// instead: a package-level var cannot mention free type parameters.
func VarSignature(name string, t introspect.TypeInfo, f introspect.FieldInfo, fmtr *emit.Formatter) []emit.Decl {
	op := fmtr.Use(OpticPkgPath)
	sig := fmt.Sprintf("func(func(%s) %s.Value, %s) %s.Value",
		fmtr.Ref(f.Type), op, fmtr.TypeExpr(t), op)

	if len(t.TypeParams) > 0 {
		return []emit.Decl{emit.Comment{
			Text: fmt.Sprintf("%s : %s", name, sig),
		}}
	}

	return []emit.Decl{emit.Var{Name: "_", Type: sig, Value: name}}
}
