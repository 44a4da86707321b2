// Package introspect provides package loading and type declaration shapes.
//
// It uses golang.org/x/tools/go/packages with go/types to resolve a type
// identifier into a Shape: a record (struct with named fields), a sum
// (sealed interface with struct constructors), an alias, or an opaque
// declaration. The generators consume shapes; nothing here emits code.
//
// Key types:
//   - TypeID, TypeInfo: identity of a declared type plus generic parameters
//   - FieldInfo: one record field
//   - ConstructorInfo: one constructor with positional argument types
//   - Shape: tagged variant over record/sum/alias/opaque
package introspect
