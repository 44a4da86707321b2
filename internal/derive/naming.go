package derive

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Policy decides, per source name, whether and under what new name to
// generate an accessor. Policies must be total and side-effect-free; the
// generators rely on skipping a name being cheap.
type Policy func(name string) (string, bool)

// Underscore is the default lens policy: "_x..." becomes "x..." (strip the
// marker, lowercase the next rune); names without the marker decline, so no
// accessor is generated for them.
func Underscore(name string) (string, bool) {
	rest, ok := strings.CutPrefix(name, "_")
	if !ok || rest == "" {
		return "", false
	}

	r, size := utf8.DecodeRuneInString(rest)

	return string(unicode.ToLower(r)) + rest[size:], true
}

// Prefix is the traversal convenience policy: always generate, prepending
// the marker to the original constructor name.
func Prefix(name string) (string, bool) {
	return "_" + name, true
}

// Suffixed builds a policy that always generates under name+suffix, e.g.
// "Name" -> "NameLens" for packages with exported fields.
func Suffixed(suffix string) Policy {
	return func(name string) (string, bool) {
		return name + suffix, true
	}
}

// Renames builds a policy from an explicit source-to-accessor name map;
// names absent from the map decline.
func Renames(m map[string]string) Policy {
	return func(name string) (string, bool) {
		out, ok := m[name]
		if !ok || out == "" {
			return "", false
		}

		return out, true
	}
}
