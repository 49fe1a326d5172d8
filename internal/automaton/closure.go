package automaton

import "github.com/Tesfamichael12/compiler-design-clr-parsing/internal/grammar"

// Closure computes the least fixed point of the given initial item set under
// the CLOSURE rule of §4.4: for every [A -> alpha . B beta, a] in the
// closure, for every production B -> gamma, for every terminal b in
// FIRST(beta a) \ {ε}, add [B -> . gamma, b].
//
// A worklist plus the set's own membership check (keyed by the item's
// (production, dot, lookahead) identity) dedupes additions so the fixpoint
// terminates (§4.4 "Implementation discipline"). ε never appears as a
// lookahead in the result.
func Closure(g grammar.Grammar, initial *ItemSet) *ItemSet {
	result := NewItemSet(initial.Items()...)
	worklist := append([]Item(nil), initial.Items()...)

	for len(worklist) > 0 {
		it := worklist[0]
		worklist = worklist[1:]

		sym, ok := it.NextSymbol(g)
		if !ok || !g.IsNonTerminal(sym) {
			continue
		}

		beta := restOf(g, it)
		lookaheads := g.FirstOfSequence(append(append([]string(nil), beta...), it.Lookahead))

		for _, p := range g.ProductionsFor(sym) {
			for _, b := range lookaheads.Elements() {
				if b == grammar.Epsilon {
					continue
				}
				newItem := Item{Prod: p.Index, Dot: 0, Lookahead: b}
				if result.Add(newItem) {
					worklist = append(worklist, newItem)
				}
			}
		}
	}

	return result
}

// restOf returns the symbols of it's production after the symbol currently
// past the dot (i.e. beta in "A -> alpha . B beta").
func restOf(g grammar.Grammar, it Item) []string {
	rhs := g.Production(it.Prod).RHS
	if it.Dot+1 >= len(rhs) {
		return nil
	}
	return rhs[it.Dot+1:]
}

// Goto computes GOTO(I, X) per §4.5: the closure of every item in I whose
// dot can move across X. Returns an empty set if no item in I has X
// immediately after its dot.
func Goto(g grammar.Grammar, items *ItemSet, x string) *ItemSet {
	kernel := NewItemSet()
	for _, it := range items.Items() {
		sym, ok := it.NextSymbol(g)
		if ok && sym == x {
			kernel.Add(it.Advanced())
		}
	}
	if kernel.Len() == 0 {
		return kernel
	}
	return Closure(g, kernel)
}
