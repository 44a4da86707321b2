package derive

import (
	"fmt"
	"strings"

	"optic-gen/internal/emit"
	"optic-gen/internal/introspect"
)

// maxTupleArity matches the largest TupleN in the optic package.
const maxTupleArity = 8

// MakeTraversals synthesizes one traversal per constructor under the fixed
// convenience policy: always generate, marker-prefixed name. Signatures are
// never emitted on this path.
func MakeTraversals(shape *introspect.Shape, fmtr *emit.Formatter) ([]emit.Decl, error) {
	return DeriveTraversals(Prefix, shape, fmtr)
}

// DeriveTraversals synthesizes traversals for the constructors accepted by
// the naming policy, in declaration order. A quantified (generic)
// constructor is rejected outright, independent of what the policy would
// have decided for it.
func DeriveTraversals(policy Policy, shape *introspect.Shape, fmtr *emit.Formatter) ([]emit.Decl, error) {
	ctors, err := shape.ConstructorList()
	if err != nil {
		return nil, err
	}

	var decls []emit.Decl

	for _, ctor := range ctors {
		if ctor.Quantified {
			return nil, fmt.Errorf("constructor %s of %s is universally quantified; traversals are not supported for it",
				ctor.Name, shape.Type.ID)
		}

		if ctor.Arity() > maxTupleArity {
			return nil, fmt.Errorf("constructor %s of %s has %d arguments; tuples above %d are not supported",
				ctor.Name, shape.Type.ID, ctor.Arity(), maxTupleArity)
		}

		name, ok := policy(ctor.Name)
		if !ok {
			continue
		}

		decls = append(decls, traversalFunc(name, shape, ctor, fmtr))
	}

	return decls, nil
}

// traversalFunc builds one traversal over constructor ctor of the shape's
// type. For sums it emits the match clause (type assertion, focus
// extraction, rebuild inside the effect's map) followed by the fallback
// clause returning the value untouched under the no-op effect without ever
// invoking k. For records the static type already proves the match, so
// assertion and fallback are omitted.
func traversalFunc(name string, shape *introspect.Shape, ctor introspect.ConstructorInfo, fmtr *emit.Formatter) emit.Decl {
	op := fmtr.Use(OpticPkgPath)
	srcType := fmtr.TypeExpr(shape.Type)

	ctorType := srcType
	if shape.Kind == introspect.ShapeSum {
		ctorType = ctor.Name
		if q := fmtr.Use(shape.Type.ID.PkgPath); q != "" {
			ctorType = q + "." + ctorType
		}
	}

	// Sum matches bind c via type assertion; records extract from t itself.
	recv := "t"
	if shape.Kind == introspect.ShapeSum {
		recv = "c"
	}

	focusType, focusExpr, focusParam, rebuild := focusParts(op, ctorType, recv, ctor, fmtr)

	var body []string

	if shape.Kind == introspect.ShapeSum {
		if ctor.Arity() == 0 {
			body = append(body,
				fmt.Sprintf("if _, ok := t.(%s); !ok {", ctorType),
				fmt.Sprintf("\treturn %s.Pure(t)", op),
				"}")
		} else {
			body = append(body,
				fmt.Sprintf("c, ok := t.(%s)", ctorType),
				"if !ok {",
				fmt.Sprintf("\treturn %s.Pure(t)", op),
				"}")
		}
	}

	body = append(body,
		fmt.Sprintf("return %s.Map(k(%s), func(%s) %s {", op, focusExpr, focusParam, srcType),
		fmt.Sprintf("\treturn %s", rebuild),
		"})")

	return emit.Func{
		Name:       name,
		TypeParams: typeParams(shape.Type),
		Params: []emit.Param{
			{Name: "k", Type: fmt.Sprintf("func(%s) %s.Value", focusType, op)},
			{Name: "t", Type: srcType},
		},
		Result: op + ".Value",
		Body:   body,
	}
}

// focusParts computes, per constructor arity, the focus type handed to k,
// the extraction expression, the map continuation's parameter, and the
// rebuild literal: arity 0 focuses Unit, arity 1 the bare argument, arity
// >=2 a TupleN in declaration order. Rebuilds are keyed literals; blank
// fields in the constructor struct carry no argument and stay zeroed.
func focusParts(op, ctorType, recv string, ctor introspect.ConstructorInfo, fmtr *emit.Formatter) (focusType, focusExpr, focusParam, rebuild string) {
	switch ctor.Arity() {
	case 0:
		focusType = op + ".Unit"
		focusExpr = op + ".Unit{}"
		focusParam = op + ".Unit"
		rebuild = ctorType + "{}"

	case 1:
		argType := fmtr.Ref(ctor.Args[0])
		focusType = argType
		focusExpr = fmt.Sprintf("%s.%s", recv, ctor.FieldNames[0])
		focusParam = "v " + argType
		rebuild = fmt.Sprintf("%s{%s: v}", ctorType, ctor.FieldNames[0])

	default:
		argTypes := make([]string, 0, ctor.Arity())
		extracts := make([]string, 0, ctor.Arity())
		rebuilds := make([]string, 0, ctor.Arity())

		for i, arg := range ctor.Args {
			argTypes = append(argTypes, fmtr.Ref(arg))
			extracts = append(extracts, fmt.Sprintf("%s.%s", recv, ctor.FieldNames[i]))
			rebuilds = append(rebuilds, fmt.Sprintf("%s: v.%c", ctor.FieldNames[i], rune('A'+i)))
		}

		tuple := fmt.Sprintf("%s.Tuple%d[%s]", op, ctor.Arity(), strings.Join(argTypes, ", "))
		focusType = tuple
		focusExpr = fmt.Sprintf("%s.T%d(%s)", op, ctor.Arity(), strings.Join(extracts, ", "))
		focusParam = "v " + tuple
		rebuild = fmt.Sprintf("%s{%s}", ctorType, strings.Join(rebuilds, ", "))
	}

	return focusType, focusExpr, focusParam, rebuild
}
