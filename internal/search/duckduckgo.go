package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lshigami/InterviewBuddy/config"
	"github.com/rs/zerolog/log"
)

const noURLSentinel = "No URL available"

// Client scrapes the DuckDuckGo HTML endpoint. One POST per call, no retries,
// default http.Client timeout semantics.
type Client struct {
	endpoint   string
	locale     string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		endpoint:   cfg.Search.Endpoint,
		locale:     cfg.Search.Locale,
		httpClient: http.DefaultClient,
	}
}

// Search issues the query and parses result elements positionally. Entries
// missing a title or snippet are dropped per-item; a missing URL becomes a
// sentinel string.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	form := url.Values{}
	form.Set("q", query)
	form.Set("kl", c.locale)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; rv:91.0) Gecko/20100101 Firefox/91.0")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	var results []Result
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(results) >= maxResults {
			return false
		}
		title := strings.TrimSpace(sel.Find("a.result__a").First().Text())
		snippet := strings.TrimSpace(sel.Find("a.result__snippet").First().Text())
		if title == "" || snippet == "" {
			return true
		}
		href, ok := sel.Find("a.result__url").First().Attr("href")
		if !ok || href == "" {
			href = noURLSentinel
		}
		results = append(results, Result{Title: title, Snippet: snippet, URL: href})
		return true
	})

	return results, nil
}

// fallbackProvider wraps the live client and substitutes fixed results when
// the client errors out or parses nothing.
type fallbackProvider struct {
	client *Client
}

// NewProvider picks the live provider or a search-disabled one depending on
// configuration. The disabled provider serves fallback sets only.
func NewProvider(cfg *config.Config) Provider {
	if !cfg.Search.Enabled {
		log.Info().Msg("Web search disabled; serving fallback results only")
		return disabledProvider{}
	}
	return &fallbackProvider{client: NewClient(cfg)}
}

func (p *fallbackProvider) Search(ctx context.Context, query string, maxResults int) []Result {
	results, err := p.client.Search(ctx, query, maxResults)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("Search failed, using fallback results")
		return FallbackResults(query)
	}
	if len(results) == 0 {
		return FallbackResults(query)
	}
	return results
}

type disabledProvider struct{}

func (disabledProvider) Search(_ context.Context, query string, _ int) []Result {
	return FallbackResults(query)
}
