package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/grammar"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/lrparse"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/lrtable"
)

// InMemory is a Store backed by a guarded map, used for tests and for
// running the server without a data directory, mirroring the teacher's
// dao/inmem package.
type InMemory struct {
	mu       sync.RWMutex
	grammars map[uuid.UUID]GrammarRecord
	runs     map[uuid.UUID][]RunRecord
}

// NewInMemory returns an empty InMemory store.
func NewInMemory() *InMemory {
	return &InMemory{
		grammars: map[uuid.UUID]GrammarRecord{},
		runs:     map[uuid.UUID][]RunRecord{},
	}
}

func (s *InMemory) SaveGrammar(ctx context.Context, text string, g grammar.Grammar, tbl lrtable.Table) (GrammarRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := GrammarRecord{
		ID:        uuid.New(),
		Text:      text,
		Grammar:   g,
		Table:     tbl,
		CreatedAt: time.Now(),
	}
	s.grammars[rec.ID] = rec
	return rec, nil
}

func (s *InMemory) GetGrammar(ctx context.Context, id uuid.UUID) (GrammarRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.grammars[id]
	if !ok {
		return GrammarRecord{}, ErrNotFound
	}
	return rec, nil
}

func (s *InMemory) SaveRun(ctx context.Context, id uuid.UUID, tokens []string, result lrparse.Result) (RunRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.grammars[id]; !ok {
		return RunRecord{}, ErrNotFound
	}

	run := RunRecord{
		GrammarID: id,
		Tokens:    append([]string(nil), tokens...),
		Result:    result,
		CreatedAt: time.Now(),
	}
	s.runs[id] = append(s.runs[id], run)
	return run, nil
}
