// Package api exposes the grammar-parsing pipeline (C1-C7) over HTTP,
// mirroring the shape of the teacher's server package: a chi router, a
// Result type for deferred response writing, and JWT bearer-token
// middleware guarding write endpoints while reads stay open.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/store"
)

// Options configures the router returned by NewRouter.
type Options struct {
	Store      store.Store
	JWTSecret  string
	APIKeyHash string
}

// NewRouter builds the HTTP handler for the C9 API: POST and read
// endpoints for grammars, plus a token-issuance endpoint for obtaining a
// bearer token from the configured API key.
func NewRouter(opts Options) http.Handler {
	s := &server{
		store:      opts.Store,
		jwtSecret:  opts.JWTSecret,
		apiKeyHash: opts.APIKeyHash,
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/token", s.handleIssueToken)

		r.Get("/grammars/{id}", s.handleGetGrammar)

		r.Group(func(r chi.Router) {
			r.Use(func(next http.Handler) http.Handler {
				return RequireAuth(s.jwtSecret, next)
			})
			r.Post("/grammars", s.handleCreateGrammar)
			r.Post("/grammars/{id}/parse", s.handleParse)
		})
	})

	return r
}
