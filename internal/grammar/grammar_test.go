package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/set"
)

func Test_Grammar_Validate_RejectsUnclassifiedSymbol(t *testing.T) {
	assert := assert.New(t)

	terms := set.NewStrings("a")
	nonterms := set.NewStrings("S'", "S")
	productions := []Production{
		{Index: 0, LHS: "S'", RHS: []string{"S"}},
		{Index: 1, LHS: "S", RHS: []string{"a", "b"}}, // "b" unclassified
	}

	g := New(productions, "S'", "S", terms, nonterms)
	assert.Error(g.Validate())
}

func Test_Grammar_Validate_RejectsLHSNotNonTerminal(t *testing.T) {
	assert := assert.New(t)

	terms := set.NewStrings("a")
	nonterms := set.NewStrings("S'")
	productions := []Production{
		{Index: 0, LHS: "S'", RHS: []string{"S"}},
		{Index: 1, LHS: "S", RHS: []string{"a"}}, // S never classified as non-terminal
	}

	g := New(productions, "S'", "S", terms, nonterms)
	assert.Error(g.Validate())
}

func Test_Grammar_Validate_AcceptsWellFormed(t *testing.T) {
	assert := assert.New(t)

	terms := set.NewStrings("a")
	nonterms := set.NewStrings("S'", "S")
	productions := []Production{
		{Index: 0, LHS: "S'", RHS: []string{"S"}},
		{Index: 1, LHS: "S", RHS: []string{"a"}},
	}

	g := New(productions, "S'", "S", terms, nonterms)
	assert.NoError(g.Validate())
}

func Test_UniqueAugmentedName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("S'", UniqueAugmentedName("S", set.NewStrings("S")))
	assert.Equal("S''", UniqueAugmentedName("S", set.NewStrings("S", "S'")))
	assert.Equal("S'''", UniqueAugmentedName("S", set.NewStrings("S", "S'", "S''")))
}

func Test_Production_String(t *testing.T) {
	assert := assert.New(t)

	p := Production{Index: 1, LHS: "S", RHS: []string{"a", "B"}}
	assert.Equal("S -> a B", p.String())

	eps := Production{Index: 2, LHS: "A", RHS: nil}
	assert.Equal("A -> ε", eps.String())
	assert.True(eps.IsEpsilon())
}
