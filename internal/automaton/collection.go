package automaton

import (
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/grammar"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/set"
)

// Collection is the canonical collection of LR(1) item sets (§3, §4.6):
// an ordered sequence of states, state 0 always being
// CLOSURE({[S' -> . S, $]}), plus the transition function over grammar
// symbols.
type Collection struct {
	States []*ItemSet
	Trans  map[int]map[string]int
}

// Goto returns the state reached from state i on symbol x, if any.
func (c Collection) Goto(i int, x string) (int, bool) {
	row, ok := c.Trans[i]
	if !ok {
		return 0, false
	}
	j, ok := row[x]
	return j, ok
}

// Build constructs the canonical collection for g via the worklist
// algorithm of §4.6: starting from state 0, repeatedly compute GOTO(Ii, X)
// for every symbol X appearing after a dot in Ii, merging into an existing
// state when one is already set-equal to the result (detected via the
// state's canonical Key) and otherwise appending a new state and enqueuing
// it. Termination is guaranteed because the universe of LR(1) items over a
// finite grammar is finite.
//
// State indices are assigned in discovery order; the order in which symbols
// are considered within a state does not affect the resulting collection
// (only the order states are appended in, which is itself deterministic
// given a deterministic symbol order), satisfying "determinism of indices"
// in §4.6.
func Build(g grammar.Grammar) Collection {
	initialItem := Item{Prod: 0, Dot: 0, Lookahead: grammar.EndMarker}
	start := Closure(g, NewItemSet(initialItem))

	states := []*ItemSet{start}
	keyToIndex := map[string]int{start.Key(g): 0}
	trans := map[int]map[string]int{}

	worklist := []int{0}
	for len(worklist) > 0 {
		i := worklist[0]
		worklist = worklist[1:]

		symbols := set.NewStrings()
		for _, it := range states[i].Items() {
			if sym, ok := it.NextSymbol(g); ok {
				symbols.Add(sym)
			}
		}

		for _, x := range symbols.Elements() {
			j := Goto(g, states[i], x)
			if j.Len() == 0 {
				continue
			}

			key := j.Key(g)
			idx, exists := keyToIndex[key]
			if !exists {
				idx = len(states)
				states = append(states, j)
				keyToIndex[key] = idx
				worklist = append(worklist, idx)
			}

			if trans[i] == nil {
				trans[i] = map[string]int{}
			}
			trans[i][x] = idx
		}
	}

	return Collection{States: states, Trans: trans}
}
