// Package search is a minimal REST client for the Google Custom Search
// JSON API. Failures never surface as errors: a failed call returns an
// empty batch, which the feedback loop treats as a terminal state.
package search

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"qexpand/internal/domain"
)

const defaultBaseURL = "https://customsearch.googleapis.com/customsearch/v1"

// Client issues Custom Search queries.
type Client struct {
	baseURL  string
	apiKey   string
	engineID string
	client   *http.Client
	log      *slog.Logger
}

// Config configures the Custom Search client.
type Config struct {
	APIKey   string
	EngineID string
	BaseURL  string
	Timeout  time.Duration
}

// NewClient creates a Custom Search client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		engineID: cfg.EngineID,
		client:   &http.Client{Timeout: cfg.Timeout},
		log:      slog.Default().With("component", "search"),
	}
}

// Search returns up to maxResults ranked documents for the query. The
// Indexable flag is derived from each result URL. Any API failure is
// absorbed into an empty batch; it is never retried.
func (c *Client) Search(ctx context.Context, query string, maxResults int) domain.Batch {
	if maxResults <= 0 || maxResults > domain.MaxResults {
		maxResults = domain.MaxResults
	}
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		c.log.Warn("search request build failed", "error", err)
		return nil
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("search call failed", "error", err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.log.Warn("search call non-200", "status", resp.Status)
		return nil
	}

	var out struct {
		Items []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.log.Warn("search response decode failed", "error", err)
		return nil
	}

	batch := make(domain.Batch, 0, len(out.Items))
	for _, item := range out.Items {
		batch = append(batch, domain.Document{
			Title:     item.Title,
			URL:       item.Link,
			Snippet:   item.Snippet,
			Indexable: domain.LikelyHTML(item.Link),
		})
	}
	return batch
}
