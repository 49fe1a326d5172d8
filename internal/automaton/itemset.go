package automaton

import (
	"sort"
	"strings"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/grammar"
)

// ItemSet is a set of LR(1) items (a parser state), closed under CLOSURE.
// Two item sets are equal iff they contain the same items as sets,
// independent of insertion order (§3).
type ItemSet struct {
	items map[Item]bool
	order []Item
}

// NewItemSet creates an ItemSet containing the given items.
func NewItemSet(items ...Item) *ItemSet {
	s := &ItemSet{items: map[Item]bool{}}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add adds it to the set, returning whether it was newly added.
func (s *ItemSet) Add(it Item) bool {
	if s.items == nil {
		s.items = map[Item]bool{}
	}
	if s.items[it] {
		return false
	}
	s.items[it] = true
	s.order = append(s.order, it)
	return true
}

// Has returns whether it is a member of the set.
func (s *ItemSet) Has(it Item) bool {
	if s == nil {
		return false
	}
	return s.items[it]
}

// Items returns the members of the set in insertion order.
func (s *ItemSet) Items() []Item {
	if s == nil {
		return nil
	}
	out := make([]Item, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of items in the set.
func (s *ItemSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Key returns a canonical string representation of the set's contents,
// independent of insertion order, suitable for use as a deduplication key
// when searching for set-equal states (§9 design note: "Equality of item
// sets"). Items are rendered using g so that the key reflects full item
// identity (production, dot, lookahead) without depending on map iteration
// order.
func (s *ItemSet) Key(g grammar.Grammar) string {
	strs := make([]string, 0, s.Len())
	for _, it := range s.order {
		strs = append(strs, it.String(g))
	}
	sort.Strings(strs)
	return strings.Join(strs, "\x1e")
}

// Equal returns whether s and o contain exactly the same items.
func (s *ItemSet) Equal(o *ItemSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for it := range s.items {
		if !o.Has(it) {
			return false
		}
	}
	return true
}
