// Package sqlite is a Store implementation backed by modernc.org/sqlite
// (pure Go, no cgo), mirroring the shape of the teacher's
// server/dao/sqlite package: a single connection, tables created on first
// use, and rezi for binary-encoding the blob columns.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/automaton"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/grammar"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/lrparse"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/lrtable"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/store"
)

// Store persists grammars and runs in a SQLite database file. Grammars are
// stored as their original text and recompiled on read; a run is persisted
// via rezi as its token stream, acceptance, error text, rendered trace
// lines, and rendered tree outline.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if necessary) the SQLite file "clrgen.db" in
// dataDir and ensures its schema exists.
func NewStore(dataDir string) (*Store, error) {
	file := filepath.Join(dataDir, "clrgen.db")

	db, err := sql.Open("sqlite", file)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS grammars (
			id TEXT NOT NULL PRIMARY KEY,
			text TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT NOT NULL PRIMARY KEY,
			grammar_id TEXT NOT NULL REFERENCES grammars(id) ON DELETE CASCADE,
			payload TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	return nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

var _ store.Store = (*Store)(nil)

func (s *Store) SaveGrammar(ctx context.Context, text string, g grammar.Grammar, tbl lrtable.Table) (store.GrammarRecord, error) {
	id := uuid.New()
	now := time.Now()

	_, err := s.db.ExecContext(ctx, `INSERT INTO grammars (id, text, created_at) VALUES (?, ?, ?)`,
		id.String(), text, now.Unix())
	if err != nil {
		return store.GrammarRecord{}, fmt.Errorf("insert grammar: %w", err)
	}

	return store.GrammarRecord{
		ID:        id,
		Text:      text,
		Grammar:   g,
		Table:     tbl,
		CreatedAt: now,
	}, nil
}

func (s *Store) GetGrammar(ctx context.Context, id uuid.UUID) (store.GrammarRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT text, created_at FROM grammars WHERE id = ?`, id.String())

	var text string
	var createdUnix int64
	if err := row.Scan(&text, &createdUnix); err != nil {
		if err == sql.ErrNoRows {
			return store.GrammarRecord{}, store.ErrNotFound
		}
		return store.GrammarRecord{}, fmt.Errorf("query grammar: %w", err)
	}

	g, err := grammar.Parse(text)
	if err != nil {
		return store.GrammarRecord{}, fmt.Errorf("reparse stored grammar %s: %w", id, err)
	}
	coll := automaton.Build(g)
	tbl := lrtable.Build(g, coll)

	return store.GrammarRecord{
		ID:        id,
		Text:      text,
		Grammar:   g,
		Table:     tbl,
		CreatedAt: time.Unix(createdUnix, 0),
	}, nil
}

func (s *Store) SaveRun(ctx context.Context, id uuid.UUID, tokens []string, result lrparse.Result) (store.RunRecord, error) {
	if _, err := s.GetGrammar(ctx, id); err != nil {
		return store.RunRecord{}, err
	}

	blob := newRunBlob(tokens, result)
	encoded := rezi.EncBinary(blob)
	payload := base64.StdEncoding.EncodeToString(encoded)

	runID := uuid.New()
	now := time.Now()
	_, err := s.db.ExecContext(ctx, `INSERT INTO runs (id, grammar_id, payload, created_at) VALUES (?, ?, ?, ?)`,
		runID.String(), id.String(), payload, now.Unix())
	if err != nil {
		return store.RunRecord{}, fmt.Errorf("insert run: %w", err)
	}

	return store.RunRecord{
		GrammarID: id,
		Tokens:    tokens,
		Result:    result,
		CreatedAt: now,
	}, nil
}
