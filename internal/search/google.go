// Package search implements the upstream search provider.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/die-net/lrucache"
	"github.com/gregjones/httpcache"

	"github.com/msomdec/searchproxy/internal/domain"
)

const (
	defaultEndpoint = "https://www.googleapis.com/customsearch/v1"

	maxHTTPCacheBytes = 32 * 1024 * 1024 // 32 MiB
	maxHTTPCacheAge   = 300              // seconds; search results go stale quickly
	idleConns         = 100
	idleConnTimeout   = 90 * time.Second
	httpTimeout       = 10 * time.Second
)

// GoogleClient queries the Google Custom Search API and implements
// domain.SearchProvider. Identical queries within the cache window are
// served from an in-memory HTTP cache instead of spending quota.
type GoogleClient struct {
	endpoint string
	apiKey   string
	engineID string
	client   *http.Client
}

// NewGoogleClient creates a client for the given API key and custom
// search engine ID.
func NewGoogleClient(apiKey, engineID string) *GoogleClient {
	return &GoogleClient{
		endpoint: defaultEndpoint,
		apiKey:   apiKey,
		engineID: engineID,
		client: &http.Client{
			Timeout: httpTimeout,
			Transport: &httpcache.Transport{
				Cache: lrucache.New(maxHTTPCacheBytes, maxHTTPCacheAge),
				Transport: &http.Transport{
					Proxy:             http.ProxyFromEnvironment,
					ForceAttemptHTTP2: true,
					MaxIdleConns:      idleConns,
					IdleConnTimeout:   idleConnTimeout,
				},
			},
		},
	}
}

// Search performs the upstream query and returns results in provider
// order. An absent items field means no results, not an error. Transport
// failures and non-200 responses (quota exhaustion included) fail with
// domain.ErrSearchUnavailable.
func (c *GoogleClient) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	q.Set("cx", c.engineID)
	q.Set("q", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream status %d", domain.ErrSearchUnavailable, resp.StatusCode)
	}

	var payload struct {
		Items []struct {
			Title string `json:"title"`
			Link  string `json:"link"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrSearchUnavailable, err)
	}

	results := make([]domain.SearchResult, 0, len(payload.Items))
	for _, item := range payload.Items {
		results = append(results, domain.SearchResult{
			Title: item.Title,
			URL:   item.Link,
		})
	}
	return results, nil
}
