package domain

import (
	"context"
	"net/url"
	"strings"
)

// Document is a single retrieved search result. Documents live for one
// feedback iteration and are discarded afterwards.
type Document struct {
	Title     string
	URL       string
	Snippet   string
	Indexable bool
}

// Batch is the ranked result list for one iteration, at most MaxResults
// documents. The order is retrieval rank and matters only for display.
type Batch []Document

// MaxResults is the number of results requested per iteration.
const MaxResults = 10

// nonHTMLExtensions are URL path suffixes treated as non-indexable.
var nonHTMLExtensions = []string{".pdf", ".doc", ".docx", ".ppt", ".pptx", ".xls", ".xlsx"}

// LikelyHTML reports whether a URL points at an indexable HTML page,
// judged by its path extension. URLs that fail to parse are tested as
// raw strings.
func LikelyHTML(rawURL string) bool {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		path = u.Path
	}
	path = strings.ToLower(path)
	for _, ext := range nonHTMLExtensions {
		if strings.HasSuffix(path, ext) {
			return false
		}
	}
	return true
}

// SearchProvider retrieves a ranked batch for a query string. A failed
// call yields an empty batch, never an error; the loop treats an empty
// batch as a terminal state.
type SearchProvider interface {
	Search(ctx context.Context, query string, maxResults int) Batch
}

// TextFetcher extracts plain text from a page. Any failure yields an
// empty string.
type TextFetcher interface {
	FetchText(ctx context.Context, url string) string
}

// Judge presents a batch to the user and collects one boolean relevance
// judgment per document, aligned by position. It blocks until every
// judgment is in; the only error is user abort.
type Judge interface {
	Judge(ctx context.Context, iteration int, query string, batch Batch) ([]bool, error)
}

// Index is the per-iteration output of the document indexer: one term
// frequency map per document in batch order (empty for non-indexable
// documents) and the batch-wide document frequencies. N is the full
// batch size including non-indexable documents.
type Index struct {
	TermFreqs []map[string]int
	DocFreq   map[string]int
	N         int
}

// TermSelector picks expansion terms from a judged, indexed batch.
// Implementations never return a term already in the query (compared
// case-insensitively). An empty result means the strategy is out of
// candidates and the loop should stop.
type TermSelector interface {
	Name() string
	SelectTerms(query []string, idx Index, relevant []bool) []string
}
