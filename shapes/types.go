// Package shapes holds a sample sealed sum type used by tests: the Shape
// interface is the type, the structs implementing it are its constructors.
package shapes

// Shape is a sealed sum type over the constructors below.
type Shape interface {
	isShape()
}

// Origin is the zero-argument constructor.
type Origin struct{}

func (Origin) isShape() {}

// Circle carries one argument.
type Circle struct {
	Radius float64
}

func (Circle) isShape() {}

// Rect carries two arguments, width first.
type Rect struct {
	Width  float64
	Height float64
}

func (Rect) isShape() {}

// Box is a sum type with a universally quantified constructor; traversal
// derivation rejects the whole type because of Sealed.
type Box interface {
	isBox()
}

// EmptyBox is an ordinary constructor of Box.
type EmptyBox struct{}

func (EmptyBox) isBox() {}

// Sealed is generic over its payload, which makes it a universally
// quantified constructor of Box.
type Sealed[T any] struct {
	Value T
}

func (Sealed[T]) isBox() {}
