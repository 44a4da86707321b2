package optic

// Value is the minimal mappable contract a transformation result must
// satisfy: its inner value can be transformed while the outer effect shape
// is preserved. Generated optics are polymorphic over every Value
// implementation, not just pure transformations.
type Value interface {
	Fmap(func(any) any) Value
}

// Ident is the identity effect: it carries a value and nothing else.
// Running an optic with Ident-producing transformations performs a pure
// functional update.
type Ident struct {
	V any
}

// Fmap applies f to the carried value.
func (i Ident) Fmap(f func(any) any) Value {
	return Ident{V: f(i.V)}
}

// Const is the constant effect: it carries a result and ignores every
// mapping. Running an optic with Const-producing transformations reads
// through the optic without rebuilding anything.
type Const struct {
	R any
}

// Fmap returns the Const unchanged.
func (c Const) Fmap(func(any) any) Value {
	return c
}

// Pure wraps v in the minimal no-op effect. Generated traversals use it for
// values built with a non-matching constructor.
func Pure(v any) Value {
	return Ident{V: v}
}

// Map transforms the inner value of v with f, keeping the effect shape.
// It is the typed front door over Value.Fmap; the type assertion inside the
// continuation is what lets generated code destructure only once the effect
// actually produces a value.
func Map[A, B any](v Value, f func(A) B) Value {
	return v.Fmap(func(x any) any {
		return f(x.(A))
	})
}

// Over runs an optic with a pure transformation and returns the rebuilt
// whole. op is a generated lens or traversal over S focusing A.
func Over[S, A any](op func(func(A) Value, S) Value, f func(A) A, s S) S {
	res := op(func(a A) Value {
		return Ident{V: f(a)}
	}, s)

	return res.(Ident).V.(S)
}

// Set replaces the focus of an optic with a fixed value.
func Set[S, A any](op func(func(A) Value, S) Value, a A, s S) S {
	return Over(op, func(A) A { return a }, s)
}

// View reads through a lens. It must only be used with lenses: a traversal
// whose constructor does not match never invokes the transformation, so
// there is nothing to view (use Preview for traversals).
func View[S, A any](op func(func(A) Value, S) Value, s S) A {
	res := op(func(a A) Value {
		return Const{R: a}
	}, s)

	return res.(Const).R.(A)
}

// Preview reads through a traversal. It returns the focused value and true
// when the target was built with the traversal's constructor, and the zero
// value and false otherwise.
func Preview[S, A any](op func(func(A) Value, S) Value, s S) (A, bool) {
	res := op(func(a A) Value {
		return Const{R: a}
	}, s)

	if c, ok := res.(Const); ok {
		return c.R.(A), true
	}

	var zero A

	return zero, false
}
