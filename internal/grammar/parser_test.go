package grammar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/clrerrors"
)

func Test_Parse_Augments(t *testing.T) {
	assert := assert.New(t)

	g, err := Parse("S -> C C\nC -> c C | d")
	assert.NoError(err)

	assert.Equal("S'", g.StartSymbol())
	assert.Equal("S", g.OriginalStart())
	assert.Equal(Production{Index: 0, LHS: "S'", RHS: []string{"S"}}, g.Production(0))
	assert.True(g.IsNonTerminal("S'"))
	assert.True(g.IsNonTerminal("S"))
	assert.True(g.IsNonTerminal("C"))
	assert.True(g.IsTerminal("c"))
	assert.True(g.IsTerminal("d"))
}

func Test_Parse_AugmentedNameCollision(t *testing.T) {
	assert := assert.New(t)

	// S' is already a non-terminal name in use, so augmentation must keep
	// adding primes until unique.
	g, err := Parse("S -> S' a\nS' -> b")
	assert.NoError(err)

	assert.Equal("S''", g.StartSymbol())
}

func Test_Parse_EpsilonForms(t *testing.T) {
	assert := assert.New(t)

	for _, marker := range []string{"", "ε", "''", `""`} {
		g, err := Parse("S -> A b\nA -> " + marker)
		assert.NoError(err)
		assert.True(g.Production(2).IsEpsilon(), "marker %q should parse to an epsilon production", marker)
	}
}

func Test_Parse_MultipleAlternatives(t *testing.T) {
	assert := assert.New(t)

	g, err := Parse("E -> E + T | T\nT -> T * F | F\nF -> ( E ) | i")
	assert.NoError(err)

	assert.Len(g.ProductionsFor("E"), 2)
	assert.Len(g.ProductionsFor("T"), 2)
	assert.Len(g.ProductionsFor("F"), 2)
	assert.True(g.IsTerminal("+"))
	assert.True(g.IsTerminal("*"))
	assert.True(g.IsTerminal("("))
	assert.True(g.IsTerminal(")"))
	assert.True(g.IsTerminal("i"))
}

func Test_Parse_EmptyGrammar(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("\n\n   \n")
	assert.Error(err)
	assert.True(errors.Is(err, clrerrors.ErrEmptyGrammar))
}

func Test_Parse_MalformedRule(t *testing.T) {
	assert := assert.New(t)

	testCases := []string{
		"S a b c",       // no arrow
		" -> a b c",     // empty LHS
		"   ->   ",      // empty LHS, empty alt
	}

	for _, tc := range testCases {
		_, err := Parse(tc)
		assert.Error(err, "expected error for %q", tc)
		assert.True(errors.Is(err, clrerrors.ErrMalformedRule), "expected MalformedRule for %q", tc)
	}
}
