// Package models holds sample record types used by tests and as living
// documentation of the marker-field convention the default naming policy
// targets.
package models

// Person is a record with marker-named fields; the default underscore
// policy derives lenses name and age for them.
type Person struct {
	_name string
	_Age  int
}

// NewPerson builds a Person; the fields are otherwise write-only outside
// the generated lenses.
func NewPerson(name string, age int) Person {
	return Person{_name: name, _Age: age}
}

// Account mixes marker and plain fields; the plain ones get no lens under
// the default policy.
type Account struct {
	_id   int64
	Owner string
}

// NewAccount builds an Account.
func NewAccount(id int64, owner string) Account {
	return Account{_id: id, Owner: owner}
}

// Pair is a generic record; generated lenses redeclare its type parameter.
type Pair[T any] struct {
	_first  T
	_second T
}

// NewPair builds a Pair.
func NewPair[T any](first, second T) Pair[T] {
	return Pair[T]{_first: first, _second: second}
}

// Padded carries a blank alignment field next to a marker field; only the
// named field shows up in the derived shape.
type Padded struct {
	_     [4]byte
	_name string
}

// NewPadded builds a Padded.
func NewPadded(name string) Padded {
	return Padded{_name: name}
}

// Marker has no fields at all; lens derivation rejects it.
type Marker struct{}

// ID is a named basic type; lens derivation rejects it.
type ID int64

// Alias is a type alias; lens derivation rejects it.
type Alias = Person
