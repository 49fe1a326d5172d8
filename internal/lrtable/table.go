package lrtable

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/automaton"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/grammar"
)

// Table is the ACTION/GOTO table for a grammar's canonical collection.
// Construction never fails: a cell that would hold two different actions
// keeps the first one written and records the collision in Conflicts
// instead of aborting, so a non-LR(1) grammar still yields a usable (if
// ambiguous) table.
type Table struct {
	Action    map[int]map[string]Action
	Goto      map[int]map[string]int
	Conflicts []Conflict

	g    grammar.Grammar
	coll automaton.Collection
}

// Conflicted reports whether construction found any shift/reduce or
// reduce/reduce collisions.
func (t Table) Conflicted() bool {
	return len(t.Conflicts) > 0
}

// ActionAt returns the entry for (state, terminal), or the zero Error
// action if none is defined.
func (t Table) ActionAt(state int, terminal string) Action {
	row, ok := t.Action[state]
	if !ok {
		return Action{Kind: Error}
	}
	return row[terminal]
}

// GotoAt returns the state GOTO[state, nonTerminal] leads to, if defined.
func (t Table) GotoAt(state int, nonTerminal string) (int, bool) {
	row, ok := t.Goto[state]
	if !ok {
		return 0, false
	}
	j, ok := row[nonTerminal]
	return j, ok
}

// ExpectedTerminals returns, sorted, the terminals for which ACTION[state]
// is defined. Used to report the expected-terminal set alongside a syntax
// error (§4.8, §7).
func (t Table) ExpectedTerminals(state int) []string {
	row, ok := t.Action[state]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(row))
	for term := range row {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}

// Build constructs the ACTION/GOTO table for g from its canonical
// collection coll, following Algorithm 4.56 of the purple dragon book
// (steps 2 and 3): shift entries come from items with a terminal
// immediately past the dot and a defined GOTO on it, reduce entries from
// complete items whose lookahead matches the column, and the accept entry
// from the completed augmented production on the end marker. Every state
// in coll.States produces exactly one row.
func Build(g grammar.Grammar, coll automaton.Collection) Table {
	t := Table{
		Action: map[int]map[string]Action{},
		Goto:   map[int]map[string]int{},
		g:      g,
		coll:   coll,
	}

	for i, state := range coll.States {
		for _, it := range state.Items() {
			sym, hasNext := it.NextSymbol(g)

			if hasNext && g.IsTerminal(sym) {
				if j, ok := coll.Goto(i, sym); ok {
					t.set(i, sym, Action{Kind: Shift, State: j})
				}
				continue
			}

			if !it.IsComplete(g) {
				continue
			}

			prod := g.Production(it.Prod)

			if prod.LHS == g.StartSymbol() {
				t.set(i, grammar.EndMarker, Action{Kind: Accept})
				continue
			}

			t.set(i, it.Lookahead, Action{Kind: Reduce, Production: it.Prod})
		}

		for _, nt := range g.NonTerminals() {
			if j, ok := coll.Goto(i, nt); ok {
				if t.Goto[i] == nil {
					t.Goto[i] = map[string]int{}
				}
				t.Goto[i][nt] = j
			}
		}
	}

	return t
}

// set records act in the cell for (state, terminal). If the cell already
// holds a different action, the existing one is kept (first write wins)
// and the collision is appended to Conflicts. Two shifts to the same
// state, or two identical reduces, are not conflicts.
func (t *Table) set(state int, terminal string, act Action) {
	if t.Action[state] == nil {
		t.Action[state] = map[string]Action{}
	}

	existing, ok := t.Action[state][terminal]
	if !ok {
		t.Action[state][terminal] = act
		return
	}
	if existing.Equal(act) {
		return
	}

	kind := ReduceReduce
	if existing.Kind == Shift || act.Kind == Shift {
		kind = ShiftReduce
	}

	t.Conflicts = append(t.Conflicts, Conflict{
		Kind:     kind,
		State:    state,
		Terminal: terminal,
		First:    existing,
		Second:   act,
	})
	// first write wins: existing entry is left in place.
}

// String renders the table as an ASCII grid, terminals and non-terminals
// side by side, one row per state.
func (t Table) String() string {
	terms := append(append([]string(nil), t.g.Terminals()...), grammar.EndMarker)
	nonTerms := t.g.NonTerminals()

	headers := []string{"state", "|"}
	for _, term := range terms {
		headers = append(headers, "A:"+term)
	}
	headers = append(headers, "|")
	for _, nt := range nonTerms {
		headers = append(headers, "G:"+nt)
	}

	data := [][]string{headers}

	for i := range t.coll.States {
		row := []string{fmt.Sprintf("%d", i), "|"}
		for _, term := range terms {
			row = append(row, t.ActionAt(i, term).String())
		}
		row = append(row, "|")
		for _, nt := range nonTerms {
			cell := ""
			if j, ok := t.GotoAt(i, nt); ok {
				cell = fmt.Sprintf("%d", j)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	out := rosed.Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()

	if len(t.Conflicts) == 0 {
		return out
	}

	lines := make([]string, len(t.Conflicts))
	for i, c := range t.Conflicts {
		lines[i] = c.String()
	}
	sort.Strings(lines)
	return out + "\n\nconflicts:\n" + strings.Join(lines, "\n")
}
