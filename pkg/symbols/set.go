package symbols

import "sort"

// Set is a reference set of symbol names.
// Validation functions only read from a Set.
type Set map[string]struct{}

// NewSet creates a Set holding the given names. Repeated names collapse.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the names of the set in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Difference returns the sorted names in s that are not in other.
func (s Set) Difference(other Set) []string {
	var out []string
	for n := range s {
		if !other.Has(n) {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
