package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/searchproxy/internal/domain"
)

// SearchHandler forwards authenticated queries to the search provider.
type SearchHandler struct {
	provider domain.SearchProvider
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(provider domain.SearchProvider) *SearchHandler {
	return &SearchHandler{provider: provider}
}

// HandleSearch runs the query from the path and returns the normalized
// result list. The guard mounted in front of this handler has already
// resolved the authenticated user.
// Response: 200 {"result_list":[{"title":"...","url":"..."},...]}
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.PathValue("query")

	results, err := h.provider.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, domain.ErrSearchUnavailable) {
			slog.Error("search provider failure", "query", query, "error", err)
			writeDetail(w, http.StatusBadGateway, "Search provider unavailable")
			return
		}
		slog.Error("search", "query", query, "error", err)
		writeDetail(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, toSearchResultsDTO(results))
}
