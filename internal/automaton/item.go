// Package automaton implements C4 (LR(1) items, CLOSURE, GOTO) and C5 (the
// canonical collection builder).
package automaton

import (
	"fmt"
	"strings"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/grammar"
)

// Item is an LR(1) item: a reference to a production, a dot position in
// [0, len(rhs)], and a single lookahead terminal (or the end-marker). Two
// items are equal iff all three fields are equal (§3); lookahead equality is
// by name.
type Item struct {
	Prod      int
	Dot       int
	Lookahead string
}

// IsComplete returns whether the dot has reached the end of the production's
// right-hand side.
func (it Item) IsComplete(g grammar.Grammar) bool {
	return it.Dot >= len(g.Production(it.Prod).RHS)
}

// NextSymbol returns the symbol immediately after the dot, and false if the
// item is complete.
func (it Item) NextSymbol(g grammar.Grammar) (string, bool) {
	rhs := g.Production(it.Prod).RHS
	if it.Dot >= len(rhs) {
		return "", false
	}
	return rhs[it.Dot], true
}

// Advanced returns a copy of it with the dot moved one position to the
// right. Callers must only call this when NextSymbol reports a symbol.
func (it Item) Advanced() Item {
	return Item{Prod: it.Prod, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

// String renders the item in "A -> alpha. beta , a" form (§3), e.g.
// "S -> a. B , $": the dot follows alpha directly and each symbol of beta is
// followed by a space. It uses "." in place of "·" so the key is plain ASCII
// and trivially hashable/sortable.
func (it Item) String(g grammar.Grammar) string {
	p := g.Production(it.Prod)

	alpha := strings.Join(p.RHS[:it.Dot], " ")

	var beta strings.Builder
	for _, sym := range p.RHS[it.Dot:] {
		beta.WriteString(sym)
		beta.WriteRune(' ')
	}

	return fmt.Sprintf("%s -> %s. %s, %s", p.LHS, alpha, beta.String(), it.Lookahead)
}
