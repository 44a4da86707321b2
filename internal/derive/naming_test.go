package derive

import (
	"testing"
)

func TestUnderscore(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"_foo", "foo", true},
		{"_Bar", "bar", true},
		{"_ä", "ä", true},
		{"_X", "x", true},
		{"foo", "", false},
		{"Foo", "", false},
		{"_", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Underscore(tt.input)
			if ok != tt.ok {
				t.Fatalf("Underscore(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}

			if got != tt.expected {
				t.Errorf("Underscore(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPrefix_AlwaysGenerates(t *testing.T) {
	got, ok := Prefix("Circle")
	if !ok || got != "_Circle" {
		t.Fatalf("Prefix(Circle) = %q, %v", got, ok)
	}
}

func TestSuffixed(t *testing.T) {
	policy := Suffixed("Lens")

	got, ok := policy("Owner")
	if !ok || got != "OwnerLens" {
		t.Fatalf("Suffixed(Owner) = %q, %v", got, ok)
	}
}

func TestRenames_DeclinesUnknownNames(t *testing.T) {
	policy := Renames(map[string]string{"Owner": "owner"})

	if got, ok := policy("Owner"); !ok || got != "owner" {
		t.Fatalf("Renames(Owner) = %q, %v", got, ok)
	}

	if _, ok := policy("Other"); ok {
		t.Fatal("Renames should decline names absent from the map")
	}
}
