package introspect

import "fmt"

// RecordFields returns the ordered field list of a record shape. Every
// other shape is rejected with an error naming the disqualifying
// declaration, so lens derivation fails before producing anything.
func (s *Shape) RecordFields() ([]FieldInfo, error) {
	switch s.Kind {
	case ShapeRecord:
		if len(s.Fields) == 0 {
			return nil, fmt.Errorf("%s is declared without record selectors", s.Type.ID)
		}

		return s.Fields, nil

	case ShapeSum:
		return nil, fmt.Errorf("%s is a tagged union; lenses need exactly one record constructor", s.Type.ID)

	case ShapeAlias:
		return nil, fmt.Errorf("%s is a type synonym, not a record declaration", s.Type.ID)

	default:
		return nil, fmt.Errorf("%s is declared without record selectors", s.Type.ID)
	}
}

// ConstructorList returns the ordered constructor list of a shape: the
// single flattened constructor of a record, or the zero-or-more
// constructors of a sum. Quantified constructors pass through here; the
// traversal generator owns their rejection.
func (s *Shape) ConstructorList() ([]ConstructorInfo, error) {
	switch s.Kind {
	case ShapeRecord, ShapeSum:
		return s.Ctors, nil

	default:
		return nil, fmt.Errorf("%s does not resolve to a data declaration (%s)", s.Type.ID, s.Kind)
	}
}
