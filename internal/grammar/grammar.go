package grammar

import (
	"fmt"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/set"
)

// Grammar is the augmented context-free grammar produced by the grammar
// parser (C2). It holds the ordered list of productions (index 0 is always
// the augmented start production S' -> S), the augmented start symbol, and
// the terminal/non-terminal name sets. A Grammar is built once and is
// immutable thereafter; FIRST sets, the canonical collection, and the
// parsing tables are all derived purely from it.
type Grammar struct {
	productions  []Production
	start        string // augmented start symbol, S'
	origStart    string // the grammar's original start symbol, S
	terminals    *set.Strings
	nonTerminals *set.Strings
}

// New assembles a Grammar from an already-augmented production list (index 0
// must be the S' -> S production) and its symbol classification. It does not
// re-derive classification from the productions; callers (the grammar
// parser, or tests building a grammar by hand) are responsible for supplying
// terminals and nonTerminals consistently with the Invariant in §3.
func New(productions []Production, augmentedStart, originalStart string, terminals, nonTerminals *set.Strings) Grammar {
	return Grammar{
		productions:  productions,
		start:        augmentedStart,
		origStart:    originalStart,
		terminals:    terminals,
		nonTerminals: nonTerminals,
	}
}

// Productions returns the ordered production list, index 0 first.
func (g Grammar) Productions() []Production {
	out := make([]Production, len(g.productions))
	copy(out, g.productions)
	return out
}

// Production returns the production at the given stable index.
func (g Grammar) Production(i int) Production {
	return g.productions[i]
}

// ProductionsFor returns, in declaration order, the productions whose LHS is
// nt.
func (g Grammar) ProductionsFor(nt string) []Production {
	var out []Production
	for _, p := range g.productions {
		if p.LHS == nt {
			out = append(out, p)
		}
	}
	return out
}

// StartSymbol returns the augmented start symbol S'.
func (g Grammar) StartSymbol() string {
	return g.start
}

// OriginalStart returns the grammar's original (pre-augmentation) start
// symbol S.
func (g Grammar) OriginalStart() string {
	return g.origStart
}

// Terminals returns the set of terminal names, in the order they were first
// observed while parsing the grammar.
func (g Grammar) Terminals() []string {
	return g.terminals.Elements()
}

// NonTerminals returns the set of non-terminal names (including S'), in the
// order they were first observed.
func (g Grammar) NonTerminals() []string {
	return g.nonTerminals.Elements()
}

// IsTerminal returns whether name classifies as a terminal.
func (g Grammar) IsTerminal(name string) bool {
	return g.terminals.Has(name)
}

// IsNonTerminal returns whether name classifies as a non-terminal.
func (g Grammar) IsNonTerminal(name string) bool {
	return g.nonTerminals.Has(name)
}

// Validate checks the Invariant of §3: every symbol appearing on any RHS is
// classified identically to its classification in the terminal/non-terminal
// sets, and any name appearing as an LHS is a non-terminal. It also requires
// at least one production beyond the augmented start.
func (g Grammar) Validate() error {
	if len(g.productions) <= 1 {
		return fmt.Errorf("grammar defines no productions beyond the augmented start")
	}

	for _, p := range g.productions {
		if !g.nonTerminals.Has(p.LHS) {
			return fmt.Errorf("production %q: LHS %q is not classified as a non-terminal", p.String(), p.LHS)
		}
		for _, sym := range p.RHS {
			isTerm := g.terminals.Has(sym)
			isNonTerm := g.nonTerminals.Has(sym)
			if !isTerm && !isNonTerm {
				return fmt.Errorf("production %q: symbol %q is not classified as a terminal or non-terminal", p.String(), sym)
			}
			if isTerm && isNonTerm {
				return fmt.Errorf("production %q: symbol %q is classified as both a terminal and a non-terminal", p.String(), sym)
			}
		}
	}

	return nil
}

// UniqueAugmentedName returns a name for the augmented start symbol that
// does not collide with any name already in use: "S'" if available,
// otherwise S with as many trailing primes appended as needed to make it
// unique (§4.1).
func UniqueAugmentedName(original string, inUse *set.Strings) string {
	candidate := original + "'"
	for inUse.Has(candidate) {
		candidate += "'"
	}
	return candidate
}
