package handler

import (
	"net/http"

	"github.com/msomdec/searchproxy/internal/domain"
	"github.com/msomdec/searchproxy/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
//
// The wildcard search routes sit under the exact-match routes in the
// mux's precedence order, mirroring the catch-all query path of the
// public API: /register, /token, and /healthz always win over /{query}.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	tokens *service.TokenService,
	users domain.UserRepository,
	provider domain.SearchProvider,
) {
	authHandler := NewAuthHandler(auth, tokens)
	searchHandler := NewSearchHandler(provider)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.HandleFunc("GET /{$}", HandleHome)
	mux.HandleFunc("POST /register", authHandler.HandleRegister)
	mux.HandleFunc("POST /token", authHandler.HandleToken)

	// Basic-guarded search; GET and POST so it works from a browser.
	basicSearch := RequireBasicAuth(auth, http.HandlerFunc(searchHandler.HandleSearch))
	mux.Handle("GET /{query}", basicSearch)
	mux.Handle("POST /{query}", basicSearch)

	// Bearer-guarded search.
	mux.Handle("POST /jwt/{query}",
		RequireBearerAuth(tokens, users, http.HandlerFunc(searchHandler.HandleSearch)))

	mux.Handle("GET /me",
		RequireBearerAuth(tokens, users, http.HandlerFunc(HandleMe)))
}
