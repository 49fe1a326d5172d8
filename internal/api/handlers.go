package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/automaton"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/grammar"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/lrparse"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/lrtable"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/store"
)

// grammarResponse is the JSON shape returned by the grammar-creation and
// grammar-lookup endpoints.
type grammarResponse struct {
	ID           string   `json:"id"`
	Terminals    []string `json:"terminals"`
	NonTerminals []string `json:"non_terminals"`
	Table        string   `json:"table"`
	Conflicts    int      `json:"conflicts"`
}

func toGrammarResponse(rec store.GrammarRecord) grammarResponse {
	return grammarResponse{
		ID:           rec.ID.String(),
		Terminals:    rec.Grammar.Terminals(),
		NonTerminals: rec.Grammar.NonTerminals(),
		Table:        rec.Table.String(),
		Conflicts:    len(rec.Table.Conflicts),
	}
}

// parseResponse is the JSON shape returned by the run endpoint.
type parseResponse struct {
	Accepted bool     `json:"accepted"`
	Error    string   `json:"error,omitempty"`
	Trace    []string `json:"trace"`
	Tree     string   `json:"tree,omitempty"`
}

func toParseResponse(res lrparse.Result) parseResponse {
	out := parseResponse{Accepted: res.Accepted}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	for _, step := range res.Steps {
		out.Trace = append(out.Trace, step.String())
	}
	if res.Tree != nil {
		out.Tree = res.Tree.String()
	}
	return out
}

// tokenRequest is the body of POST /api/v1/token.
type tokenRequest struct {
	APIKey string `json:"api_key"`
}

// server bundles the dependencies every handler needs.
type server struct {
	store      store.Store
	jwtSecret  string
	apiKeyHash string
}

func (s *server) handleIssueToken(w http.ResponseWriter, req *http.Request) {
	var body tokenRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		BadRequest("request body must be JSON", err.Error()).Write(w, req)
		return
	}

	tok, err := IssueToken(body.APIKey, s.apiKeyHash, s.jwtSecret)
	if err != nil {
		Unauthorized("invalid API key", err.Error()).Write(w, req)
		return
	}

	OK(map[string]string{"token": tok}, "issued token").Write(w, req)
}

func (s *server) handleCreateGrammar(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		BadRequest("could not read request body", err.Error()).Write(w, req)
		return
	}

	g, err := grammar.Parse(string(body))
	if err != nil {
		BadRequest(err.Error(), "grammar.Parse: "+err.Error()).Write(w, req)
		return
	}

	coll := automaton.Build(g)
	tbl := lrtable.Build(g, coll)

	rec, err := s.store.SaveGrammar(req.Context(), string(body), g, tbl)
	if err != nil {
		InternalServerError("SaveGrammar: " + err.Error()).Write(w, req)
		return
	}

	Created(toGrammarResponse(rec), "stored grammar "+rec.ID.String()).Write(w, req)
}

func (s *server) handleGetGrammar(w http.ResponseWriter, req *http.Request) {
	id, err := uuid.Parse(chi.URLParam(req, "id"))
	if err != nil {
		BadRequest("id must be a valid UUID", err.Error()).Write(w, req)
		return
	}

	rec, err := s.store.GetGrammar(req.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound("GetGrammar: " + err.Error()).Write(w, req)
			return
		}
		InternalServerError("GetGrammar: " + err.Error()).Write(w, req)
		return
	}

	OK(toGrammarResponse(rec), "fetched grammar "+rec.ID.String()).Write(w, req)
}

func (s *server) handleParse(w http.ResponseWriter, req *http.Request) {
	id, err := uuid.Parse(chi.URLParam(req, "id"))
	if err != nil {
		BadRequest("id must be a valid UUID", err.Error()).Write(w, req)
		return
	}

	rec, err := s.store.GetGrammar(req.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound("GetGrammar: " + err.Error()).Write(w, req)
			return
		}
		InternalServerError("GetGrammar: " + err.Error()).Write(w, req)
		return
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		BadRequest("could not read request body", err.Error()).Write(w, req)
		return
	}

	tokens := splitTokens(string(body))
	result := lrparse.Run(rec.Grammar, rec.Table, tokens)

	if _, err := s.store.SaveRun(req.Context(), id, tokens, result); err != nil {
		InternalServerError("SaveRun: " + err.Error()).Write(w, req)
		return
	}

	OK(toParseResponse(result), "ran parse against "+id.String()).Write(w, req)
}

func splitTokens(text string) []string {
	var tokens []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = nil
		}
	}
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			flush()
			continue
		}
		cur = append(cur, r)
	}
	flush()
	return tokens
}
