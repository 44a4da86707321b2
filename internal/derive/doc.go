// Package derive holds the two generation pipelines.
//
// DeriveLenses synthesizes one field accessor per record field the naming
// policy accepts; DeriveTraversals synthesizes one constructor accessor per
// constructor of a record or sum shape. Both consume introspect.Shape
// values and produce emit.Decl lists; naming policies and signature
// derivers are caller-supplied functions the generators treat as opaque.
package derive
