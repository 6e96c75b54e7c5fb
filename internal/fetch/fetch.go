// Package fetch downloads a result page and extracts its visible text.
// Every failure mode degrades to an empty string: the indexer treats a
// failed fetch the same as a page with no text.
package fetch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultTimeout bounds a single page fetch.
const DefaultTimeout = 5 * time.Second

// Fetcher is an HTTP page fetcher implementing domain.TextFetcher.
type Fetcher struct {
	client *http.Client
	log    *slog.Logger
}

// New creates a Fetcher with the given per-request timeout.
func New(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		log:    slog.Default().With("component", "fetch"),
	}
}

// FetchText downloads url and returns its visible text, or an empty
// string on any non-200 status, transport error, or parse failure.
func (f *Fetcher) FetchText(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.log.Debug("bad fetch url", "url", url, "error", err)
		return ""
	}
	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Debug("fetch failed", "url", url, "error", err)
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		f.log.Debug("fetch non-200", "url", url, "status", resp.Status)
		return ""
	}
	text, err := ExtractText(resp.Body)
	if err != nil {
		f.log.Debug("html parse failed", "url", url, "error", err)
		return ""
	}
	return text
}

// ExtractText parses HTML and joins its text nodes with single spaces,
// skipping script and style subtrees.
func ExtractText(r io.Reader) (string, error) {
	root, err := html.Parse(r)
	if err != nil {
		return "", err
	}
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, strings.Join(strings.Fields(s), " "))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return strings.Join(parts, " "), nil
}
