// Package store persists submitted grammars, their compiled tables, and
// parse runs, keyed by a generated ID. Store mirrors the shape of the
// teacher's dao.Store interface: a small set of record types plus an
// interface with in-memory and SQLite-backed implementations, selected by
// server configuration.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/grammar"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/lrparse"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/lrtable"
)

// ErrNotFound is returned by Store methods when the requested ID does not
// exist.
var ErrNotFound = errors.New("no grammar with that ID exists")

// GrammarRecord is a stored, compiled grammar: the original submitted text,
// the parsed Grammar, and its ACTION/GOTO table.
type GrammarRecord struct {
	ID        uuid.UUID
	Text      string
	Grammar   grammar.Grammar
	Table     lrtable.Table
	CreatedAt time.Time
}

// RunRecord is a single parse run recorded against a stored grammar.
type RunRecord struct {
	GrammarID uuid.UUID
	Tokens    []string
	Result    lrparse.Result
	CreatedAt time.Time
}

// Store persists grammars and the parse runs made against them.
type Store interface {
	SaveGrammar(ctx context.Context, text string, g grammar.Grammar, tbl lrtable.Table) (GrammarRecord, error)
	GetGrammar(ctx context.Context, id uuid.UUID) (GrammarRecord, error)
	SaveRun(ctx context.Context, id uuid.UUID, tokens []string, result lrparse.Result) (RunRecord, error)
}
