package grammar

import "github.com/Tesfamichael12/compiler-design-clr-parsing/internal/set"

// FIRST computes FIRST(X) for a single symbol (§4.2). Terminals and the
// end-marker $ map to the singleton set containing themselves; ε maps to
// {ε}; a non-terminal's FIRST set is the fixpoint over its productions.
//
// Left-recursive non-terminals are handled by tracking which symbols are
// currently being expanded along this call path: re-entering a symbol
// already under expansion contributes nothing further (its non-recursive
// alternatives still contribute via the rest of the fixpoint), which is
// sufficient to terminate without double-counting and without missing any
// terminal that the recursive alternative could otherwise reach.
func (g Grammar) FIRST(x string) *set.Strings {
	return g.firstOf(x, map[string]bool{})
}

// FirstOfSequence computes FIRST(α) for a sequence of symbols by folding
// FIRST over the sequence left to right (§4.2): FIRST(Y1) contributes
// everything but ε; if Y1 admits ε, continue folding in FIRST(Y2), and so
// on. The empty sequence yields {ε}. ε is kept as an explicit member of the
// result until the caller does the final lookahead projection (§9).
func (g Grammar) FirstOfSequence(seq []string) *set.Strings {
	return g.firstOfSeq(seq, map[string]bool{})
}

func (g Grammar) firstOf(x string, visiting map[string]bool) *set.Strings {
	result := set.NewStrings()

	if x == Epsilon {
		result.Add(Epsilon)
		return result
	}
	if x == EndMarker || g.IsTerminal(x) {
		result.Add(x)
		return result
	}

	// x is a non-terminal.
	if visiting[x] {
		return result
	}
	visiting[x] = true

	for _, p := range g.ProductionsFor(x) {
		seqFirst := g.firstOfSeq(p.RHS, visiting)
		for _, s := range seqFirst.Elements() {
			result.Add(s)
		}
	}

	delete(visiting, x)
	return result
}

func (g Grammar) firstOfSeq(seq []string, visiting map[string]bool) *set.Strings {
	result := set.NewStrings()

	if len(seq) == 0 {
		result.Add(Epsilon)
		return result
	}

	allNullable := true
	for _, sym := range seq {
		symFirst := g.firstOf(sym, visiting)
		for _, s := range symFirst.Elements() {
			if s != Epsilon {
				result.Add(s)
			}
		}
		if !symFirst.Has(Epsilon) {
			allNullable = false
			break
		}
	}

	if allNullable {
		result.Add(Epsilon)
	}

	return result
}
