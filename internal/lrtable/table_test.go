package lrtable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/automaton"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/grammar"
)

func build(t *testing.T, text string) (grammar.Grammar, Table) {
	t.Helper()
	g, err := grammar.Parse(text)
	assert.NoError(t, err)
	coll := automaton.Build(g)
	return g, Build(g, coll)
}

func Test_Build_SimpleGrammarHasNoConflicts(t *testing.T) {
	assert := assert.New(t)

	_, tbl := build(t, "S -> C C\nC -> c C | d")
	assert.Empty(tbl.Conflicts)
}

func Test_Build_AcceptOnEndMarkerAfterStartSymbol(t *testing.T) {
	assert := assert.New(t)

	g, tbl := build(t, "S -> C C\nC -> c C | d")

	coll := automaton.Build(g)
	i, ok := coll.Goto(0, g.OriginalStart())
	assert.True(ok)

	act := tbl.ActionAt(i, grammar.EndMarker)
	assert.Equal(Accept, act.Kind)
}

func Test_Build_ShiftActionsPresent(t *testing.T) {
	assert := assert.New(t)

	_, tbl := build(t, "S -> a")
	act := tbl.ActionAt(0, "a")
	assert.Equal(Shift, act.Kind)
}

func Test_Build_ReduceOnEpsilonProduction(t *testing.T) {
	assert := assert.New(t)

	g, tbl := build(t, "S -> A b\nA -> ε")
	coll := automaton.Build(g)

	act := tbl.ActionAt(0, "b")
	assert.Equal(Reduce, act.Kind)
	assert.True(g.Production(act.Production).IsEpsilon())

	_ = coll
}

func Test_Build_DanglingElseReportsShiftReduceConflict(t *testing.T) {
	assert := assert.New(t)

	// Classic dangling-else ambiguity: exercises the non-fatal conflict
	// reporting path instead of aborting construction.
	_, tbl := build(t, "S -> i S e S | i S | x")

	assert.NotEmpty(tbl.Conflicts)
	for _, c := range tbl.Conflicts {
		assert.Equal(ShiftReduce, c.Kind)
	}
}

func Test_Build_GotoEntriesCoverNonTerminals(t *testing.T) {
	assert := assert.New(t)

	g, tbl := build(t, "S -> C C\nC -> c C | d")

	_, ok := tbl.GotoAt(0, g.OriginalStart())
	assert.True(ok, "GOTO(0, S) should be defined via the augmented item S' -> . S")

	_, ok = tbl.GotoAt(0, "C")
	assert.True(ok)
}

func Test_Build_ExpectedTerminalsSortedAndNonEmpty(t *testing.T) {
	assert := assert.New(t)

	_, tbl := build(t, "S -> C C\nC -> c C | d")

	terms := tbl.ExpectedTerminals(0)
	assert.Equal([]string{"c", "d"}, terms)
}

func Test_Build_ExpectedTerminalsEmptyForUnknownState(t *testing.T) {
	assert := assert.New(t)

	_, tbl := build(t, "S -> a")
	assert.Empty(tbl.ExpectedTerminals(999))
}

func Test_Table_StringIncludesConflictsSection(t *testing.T) {
	assert := assert.New(t)

	_, tbl := build(t, "S -> i S e S | i S | x")
	out := tbl.String()
	assert.Contains(out, "conflicts:")
}
