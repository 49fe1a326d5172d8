package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/grammar"
)

func Test_Closure_StartState(t *testing.T) {
	assert := assert.New(t)

	g, err := Parse(t, "S -> C C\nC -> c C | d")
	assert.NoError(err)

	start := Closure(g, NewItemSet(Item{Prod: 0, Dot: 0, Lookahead: grammar.EndMarker}))

	assert.True(start.Has(Item{Prod: 0, Dot: 0, Lookahead: grammar.EndMarker}))
	// C -> .c C, b   for b in FIRST(C $) = {c, d}
	assert.True(start.Has(Item{Prod: 2, Dot: 0, Lookahead: "c"}))
	assert.True(start.Has(Item{Prod: 2, Dot: 0, Lookahead: "d"}))
	assert.True(start.Has(Item{Prod: 3, Dot: 0, Lookahead: "c"}))
	assert.True(start.Has(Item{Prod: 3, Dot: 0, Lookahead: "d"}))

	for _, it := range start.Items() {
		assert.NotEqual(grammar.Epsilon, it.Lookahead, "no item may have epsilon as lookahead")
	}
}

func Test_Closure_Idempotent(t *testing.T) {
	assert := assert.New(t)

	g, err := Parse(t, "E -> E + T | T\nT -> T * F | F\nF -> ( E ) | i")
	assert.NoError(err)

	start := NewItemSet(Item{Prod: 0, Dot: 0, Lookahead: grammar.EndMarker})
	once := Closure(g, start)
	twice := Closure(g, once)

	assert.True(once.Equal(twice))
}

func Test_Goto_EmptyWhenNoMatch(t *testing.T) {
	assert := assert.New(t)

	g, err := Parse(t, "S -> a")
	assert.NoError(err)

	start := Closure(g, NewItemSet(Item{Prod: 0, Dot: 0, Lookahead: grammar.EndMarker}))
	result := Goto(g, start, "nonexistent")
	assert.Equal(0, result.Len())
}

func Test_Goto_OrderIndependent(t *testing.T) {
	assert := assert.New(t)

	g, err := Parse(t, "S -> a B\nB -> b | c")
	assert.NoError(err)

	start := Closure(g, NewItemSet(Item{Prod: 0, Dot: 0, Lookahead: grammar.EndMarker}))

	items := start.Items()
	reversed := make([]Item, len(items))
	for i, it := range items {
		reversed[len(items)-1-i] = it
	}

	forward := Goto(g, start, "a")
	backward := Goto(g, NewItemSet(reversed...), "a")

	assert.True(forward.Equal(backward))
}

func Test_Closure_EpsilonProduction(t *testing.T) {
	assert := assert.New(t)

	g, err := Parse(t, "S -> A b\nA -> ε")
	assert.NoError(err)

	start := Closure(g, NewItemSet(Item{Prod: 0, Dot: 0, Lookahead: grammar.EndMarker}))

	// A -> . , b  (the epsilon production, dot already at the end)
	assert.True(start.Has(Item{Prod: 2, Dot: 0, Lookahead: "b"}))
	assert.True(g.Production(2).IsEpsilon())
}
