// Package index builds the per-iteration term statistics: one term
// frequency map per document and the batch-wide document frequencies.
// Indexes are rebuilt from scratch every iteration and never merged.
package index

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"qexpand/internal/domain"
	"qexpand/internal/tokenizer"
)

// Indexer turns a result batch into a domain.Index. When full-text mode
// is on, each indexable document's page text is fetched and indexed
// alongside its title; fetch failures degrade to title-only.
type Indexer struct {
	tokenizer   *tokenizer.Tokenizer
	fetcher     domain.TextFetcher
	fullText    bool
	concurrency int
}

// New creates an Indexer. fetcher may be nil when fullText is false.
func New(tk *tokenizer.Tokenizer, fetcher domain.TextFetcher, fullText bool, concurrency int) *Indexer {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Indexer{tokenizer: tk, fetcher: fetcher, fullText: fullText, concurrency: concurrency}
}

// Build indexes the batch. Non-indexable documents get an empty term
// frequency map and contribute nothing to document frequencies, but
// still count toward Index.N.
func (ix *Indexer) Build(ctx context.Context, batch domain.Batch) domain.Index {
	idx := domain.Index{
		TermFreqs: make([]map[string]int, len(batch)),
		DocFreq:   make(map[string]int),
		N:         len(batch),
	}
	texts := ix.documentTexts(ctx, batch)
	for i, doc := range batch {
		tf := map[string]int{}
		idx.TermFreqs[i] = tf
		if !doc.Indexable {
			continue
		}
		for _, term := range ix.tokenizer.Tokenize(texts[i]) {
			tf[term]++
		}
		for term := range tf {
			idx.DocFreq[term]++
		}
	}
	return idx
}

// documentTexts assembles the text to index for each document. Full-text
// fetches fan out with bounded concurrency; each failure independently
// degrades to an empty string, so the slice is always fully populated.
func (ix *Indexer) documentTexts(ctx context.Context, batch domain.Batch) []string {
	texts := make([]string, len(batch))
	if !ix.fullText || ix.fetcher == nil {
		for i, doc := range batch {
			texts[i] = doc.Title + " " + doc.Snippet
		}
		return texts
	}
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ix.concurrency)
	for i, doc := range batch {
		if !doc.Indexable {
			continue
		}
		i, doc := i, doc
		g.Go(func() error {
			body := ix.fetcher.FetchText(gctx, doc.URL)
			mu.Lock()
			texts[i] = doc.Title + " " + body
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return texts
}
