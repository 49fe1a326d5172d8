package grammar

import "strings"

// Production is an ordered pair (LHS, RHS) with a stable index assigned at
// grammar construction time. Production 0 is always the augmented start
// production S' -> S. An empty RHS denotes an ε-production.
type Production struct {
	Index int
	LHS   string
	RHS   []string
}

// IsEpsilon returns whether this production's right-hand side is empty.
func (p Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

// Equal compares LHS and RHS only; indices are a representation detail and
// are not considered part of production identity for grammar-equality
// purposes (two grammars built from the same text always assign the same
// indices, but callers comparing a production against a hand-built literal
// should not need to know the index in advance).
func (p Production) Equal(o Production) bool {
	if p.LHS != o.LHS || len(p.RHS) != len(o.RHS) {
		return false
	}
	for i := range p.RHS {
		if p.RHS[i] != o.RHS[i] {
			return false
		}
	}
	return true
}

// String renders the production in "LHS -> A B C" form, or "LHS -> ε" for an
// epsilon production.
func (p Production) String() string {
	rhs := strings.Join(p.RHS, " ")
	if rhs == "" {
		rhs = Epsilon
	}
	return p.LHS + " -> " + rhs
}

// RHSString renders just the right-hand side, "A B C" or "ε" if empty.
func (p Production) RHSString() string {
	if p.IsEpsilon() {
		return Epsilon
	}
	return strings.Join(p.RHS, " ")
}
