// Package optic is the runtime vocabulary shared by generated accessors.
//
// A generated lens or traversal has the shape
//
//	func name(k func(A) optic.Value, s S) optic.Value
//
// where Value is the minimal mappable effect contract. Running the same
// generated function against Const reads the focus, against Ident rewrites
// it; View, Over, Set and Preview wrap those two executions.
//
// Key types:
//   - Value: effect contract (Fmap)
//   - Ident, Const: the two stock effects
//   - Unit, Tuple2..Tuple8: focus packaging for constructor arguments
package optic
