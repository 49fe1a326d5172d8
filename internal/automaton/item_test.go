package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/grammar"
)

func Test_Item_NextSymbolAndComplete(t *testing.T) {
	assert := assert.New(t)

	g, err := Parse(t, "S -> a B c")
	assert.NoError(err)

	it := Item{Prod: 1, Dot: 0, Lookahead: grammar.EndMarker}
	sym, ok := it.NextSymbol(g)
	assert.True(ok)
	assert.Equal("a", sym)
	assert.False(it.IsComplete(g))

	it = it.Advanced().Advanced().Advanced()
	assert.True(it.IsComplete(g))
	_, ok = it.NextSymbol(g)
	assert.False(ok)
}

func Test_Item_String(t *testing.T) {
	assert := assert.New(t)

	g, err := Parse(t, "S -> a B")
	assert.NoError(err)

	it := Item{Prod: 1, Dot: 1, Lookahead: grammar.EndMarker}
	assert.Equal("S -> a. B , $", it.String(g))
}

func Test_Item_Equality(t *testing.T) {
	assert := assert.New(t)

	a := Item{Prod: 1, Dot: 0, Lookahead: "x"}
	b := Item{Prod: 1, Dot: 0, Lookahead: "x"}
	c := Item{Prod: 1, Dot: 0, Lookahead: "y"}

	assert.Equal(a, b)
	assert.NotEqual(a, c)
}

// Parse is a small test helper shared across the automaton package's test
// files.
func Parse(t *testing.T, text string) (grammar.Grammar, error) {
	t.Helper()
	return grammar.Parse(text)
}
