// Package set contains a small generic collection helper shared by the
// grammar, automaton, and table-construction packages: an insertion-order
// stable string set, scoped to exactly what the LR(1) pipeline needs.
package set

// Strings is a set of strings that remembers insertion order for iteration
// (Elements).
type Strings struct {
	m     map[string]bool
	order []string
}

// NewStrings creates a Strings set containing the given initial members, in
// the order given.
func NewStrings(items ...string) *Strings {
	s := &Strings{m: map[string]bool{}}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add adds an item to the set. No-op if already present.
func (s *Strings) Add(item string) {
	if s.m == nil {
		s.m = map[string]bool{}
	}
	if s.m[item] {
		return
	}
	s.m[item] = true
	s.order = append(s.order, item)
}

// Has returns whether item is a member of s.
func (s *Strings) Has(item string) bool {
	if s == nil {
		return false
	}
	return s.m[item]
}

// Len returns the number of members of s.
func (s *Strings) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

// Elements returns the members of s in insertion order.
func (s *Strings) Elements() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
