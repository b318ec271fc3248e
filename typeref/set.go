package typeref

import "sort"

// Set is an immutable set of references keyed by their rendered form.
type Set struct {
	items map[string]Ref
}

// NewSet builds a Set from refs. Duplicates collapse into one member.
func NewSet(refs ...Ref) Set {
	items := make(map[string]Ref, len(refs))
	for _, ref := range refs {
		items[ref.String()] = ref
	}

	return Set{items: items}
}

// Contains reports whether ref is a member of the set.
func (s Set) Contains(ref Ref) bool {
	_, ok := s.items[ref.String()]

	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.items)
}

// Refs returns the members sorted by their rendered form.
func (s Set) Refs() []Ref {
	keys := make([]string, 0, len(s.items))
	for key := range s.items {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	out := make([]Ref, 0, len(keys))
	for _, key := range keys {
		out = append(out, s.items[key])
	}

	return out
}

// Union returns a new set holding the members of s and refs.
func (s Set) Union(refs ...Ref) Set {
	items := make(map[string]Ref, len(s.items)+len(refs))
	for key, ref := range s.items {
		items[key] = ref
	}

	for _, ref := range refs {
		items[ref.String()] = ref
	}

	return Set{items: items}
}
