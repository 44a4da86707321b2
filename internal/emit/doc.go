// Package emit holds generated declarations as data and renders them.
//
// Generators produce []Decl (Comment, Var, Func); Render assembles a decl
// list into one gofmt-formatted file, with the Formatter tracking which
// imports the rendered type references pull in. The Decl model is plain
// data so a different backend could render it without touching the
// generators.
package emit
