package derive

import (
	"fmt"

	"optic-gen/internal/emit"
	"optic-gen/internal/introspect"
)

// DeriveLenses synthesizes one lens per record field accepted by the naming
// policy, in field declaration order. For each accepted name the signature
// deriver's declarations (if any) precede the function body. Introspection
// failures surface unchanged.
func DeriveLenses(sig SignatureDeriver, policy Policy, shape *introspect.Shape, fmtr *emit.Formatter) ([]emit.Decl, error) {
	fields, err := shape.RecordFields()
	if err != nil {
		return nil, err
	}

	var decls []emit.Decl

	for _, field := range fields {
		name, ok := policy(field.Name)
		if !ok {
			continue
		}

		if sig != nil {
			decls = append(decls, sig(name, shape.Type, field, fmtr)...)
		}

		decls = append(decls, lensFunc(name, shape.Type, field, fmtr))
	}

	return decls, nil
}

// lensFunc builds the body of one lens: apply k to the field's current
// value, then rebuild the record inside the effect's map continuation with
// that field replaced. The record parameter is a copy, so mutating it
// before returning is a functional update.
func lensFunc(name string, t introspect.TypeInfo, f introspect.FieldInfo, fmtr *emit.Formatter) emit.Decl {
	op := fmtr.Use(OpticPkgPath)
	fieldType := fmtr.Ref(f.Type)
	srcType := fmtr.TypeExpr(t)

	return emit.Func{
		Name:       name,
		TypeParams: typeParams(t),
		Params: []emit.Param{
			{Name: "k", Type: fmt.Sprintf("func(%s) %s.Value", fieldType, op)},
			{Name: "a", Type: srcType},
		},
		Result: op + ".Value",
		Body: []string{
			fmt.Sprintf("return %s.Map(k(a.%s), func(v %s) %s {", op, f.Name, fieldType, srcType),
			fmt.Sprintf("\ta.%s = v", f.Name),
			"\treturn a",
			"})",
		},
	}
}

// typeParams copies a type's generic parameters onto a generated function.
func typeParams(t introspect.TypeInfo) []emit.Param {
	if len(t.TypeParams) == 0 {
		return nil
	}

	out := make([]emit.Param, 0, len(t.TypeParams))
	for _, tp := range t.TypeParams {
		out = append(out, emit.Param{Name: tp.Name, Type: tp.Constraint})
	}

	return out
}
