package engine

import "strings"

// Ref is a package reference as declared by a remote record: a name,
// optionally followed by a version constraint such as "foo>=1.2".
// Constraints are stripped before any lookup and never evaluated.
type Ref string

// constraint characters in dependency declarations, longest first so
// ">=" is found before ">".
var constraintMarks = []string{">=", "<=", "=", ">", "<"}

// Name returns the bare package name with any constraint suffix removed.
func (r Ref) Name() string {
	s := string(r)
	for _, mark := range constraintMarks {
		if i := strings.Index(s, mark); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

// Refs converts a list of raw names into Refs.
func Refs(names []string) []Ref {
	refs := make([]Ref, len(names))
	for i, n := range names {
		refs[i] = Ref(n)
	}
	return refs
}
