package domain

import "context"

// SearchResult is a single entry returned by a search provider.
type SearchResult struct {
	Title string
	URL   string
}

// SearchProvider performs the upstream query. Implementations return
// results in provider order and fail with ErrSearchUnavailable on
// transport or quota failures.
type SearchProvider interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
