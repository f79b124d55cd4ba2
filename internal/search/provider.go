package search

import "context"

// Result is one ranked search hit.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// Provider returns up to maxResults ranked results for a query. Providers
// never surface transport or parse failures to callers; a failed lookup
// degrades to fallback data or an empty slice.
type Provider interface {
	Search(ctx context.Context, query string, maxResults int) []Result
}
