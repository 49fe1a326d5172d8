package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/automaton"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/grammar"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/lrparse"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/lrtable"
)

func Test_InMemory_SaveAndGetGrammar(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	g, err := grammar.Parse("S -> a")
	assert.NoError(err)
	coll := automaton.Build(g)
	tbl := lrtable.Build(g, coll)

	s := NewInMemory()
	rec, err := s.SaveGrammar(ctx, "S -> a", g, tbl)
	assert.NoError(err)
	assert.NotEqual(uuid.Nil, rec.ID)

	fetched, err := s.GetGrammar(ctx, rec.ID)
	assert.NoError(err)
	assert.Equal(rec.Text, fetched.Text)
}

func Test_InMemory_GetGrammar_NotFound(t *testing.T) {
	assert := assert.New(t)

	s := NewInMemory()
	_, err := s.GetGrammar(context.Background(), uuid.New())
	assert.ErrorIs(err, ErrNotFound)
}

func Test_InMemory_SaveRun_RequiresExistingGrammar(t *testing.T) {
	assert := assert.New(t)

	s := NewInMemory()
	_, err := s.SaveRun(context.Background(), uuid.New(), []string{"a"}, lrparse.Result{Accepted: true})
	assert.ErrorIs(err, ErrNotFound)
}

func Test_InMemory_SaveRun_AppendsRuns(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	g, err := grammar.Parse("S -> a")
	assert.NoError(err)
	coll := automaton.Build(g)
	tbl := lrtable.Build(g, coll)

	s := NewInMemory()
	rec, err := s.SaveGrammar(ctx, "S -> a", g, tbl)
	assert.NoError(err)

	run, err := s.SaveRun(ctx, rec.ID, []string{"a"}, lrparse.Result{Accepted: true})
	assert.NoError(err)
	assert.Equal(rec.ID, run.GrammarID)
	assert.True(run.Result.Accepted)
}
