// Package selector implements the interchangeable term-selection
// strategies behind domain.TermSelector: summed-TF-IDF ranking and
// Rocchio vector reformulation.
package selector

import (
	"sort"
	"strings"

	"qexpand/internal/domain"
	"qexpand/internal/weighting"
)

// DefaultMaxNewTerms is the number of expansion terms added per
// iteration when not configured otherwise.
const DefaultMaxNewTerms = 2

// SummedTFIDF ranks candidate terms by their TF-IDF weight summed over
// the documents judged relevant.
type SummedTFIDF struct {
	maxNewTerms int
}

// NewSummedTFIDF creates the summed-TF-IDF strategy.
func NewSummedTFIDF(maxNewTerms int) *SummedTFIDF {
	if maxNewTerms <= 0 {
		maxNewTerms = DefaultMaxNewTerms
	}
	return &SummedTFIDF{maxNewTerms: maxNewTerms}
}

// Name returns the identifier of this strategy.
func (s *SummedTFIDF) Name() string { return "tfidf" }

// SelectTerms sums tf*log2(N/df) per term over relevant documents and
// returns the top candidates not already in the query.
func (s *SummedTFIDF) SelectTerms(query []string, idx domain.Index, relevant []bool) []string {
	sums := make(map[string]float64)
	var order []string
	for i, tf := range idx.TermFreqs {
		if i >= len(relevant) || !relevant[i] {
			continue
		}
		for term, count := range tf {
			df := idx.DocFreq[term]
			if df == 0 {
				continue
			}
			if _, seen := sums[term]; !seen {
				order = append(order, term)
			}
			sums[term] += weighting.TFIDF(count, df, idx.N)
		}
	}
	sort.SliceStable(order, func(a, b int) bool { return sums[order[a]] > sums[order[b]] })
	return takeNew(order, query, s.maxNewTerms, nil)
}

// takeNew filters candidates already in the query (case-insensitively)
// and keeps at most limit terms. A non-nil accept gate can reject
// candidates before the limit applies.
func takeNew(candidates, query []string, limit int, accept func(term string) bool) []string {
	present := make(map[string]struct{}, len(query))
	for _, q := range query {
		present[strings.ToLower(q)] = struct{}{}
	}
	var out []string
	for _, term := range candidates {
		if _, ok := present[strings.ToLower(term)]; ok {
			continue
		}
		if accept != nil && !accept(term) {
			continue
		}
		out = append(out, term)
		if len(out) == limit {
			break
		}
	}
	return out
}
