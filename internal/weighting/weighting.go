// Package weighting computes TF-IDF weights over a single iteration's
// index: scalar weights for summed-TF-IDF ranking and length-normalized
// document vectors for Rocchio reformulation.
package weighting

import (
	"math"
	"strings"

	"qexpand/internal/domain"
)

// Vector maps terms to real-valued weights. Vectors are rebuilt every
// iteration and never shared across iterations.
type Vector map[string]float64

// AddScaled accumulates scale*other into v, term by term.
func (v Vector) AddScaled(other Vector, scale float64) {
	for term, w := range other {
		v[term] += scale * w
	}
}

// TFIDF is the scalar weight tf * log2(N/df) for one term in one
// document. df must be positive; the indexer guarantees df >= 1 for any
// term present in a term frequency map.
func TFIDF(tf, df, n int) float64 {
	return float64(tf) * math.Log2(float64(n)/float64(df))
}

// DocVector builds the normalized TF-IDF vector for one document:
// (tf/T) * log2(N/df) per term, where T is the document's total token
// count. A document with no tokens maps to an empty vector. N is the
// full batch size, non-indexable documents included.
func DocVector(termFreq map[string]int, idx domain.Index) Vector {
	total := 0
	for _, tf := range termFreq {
		total += tf
	}
	vec := make(Vector, len(termFreq))
	if total == 0 {
		return vec
	}
	for term, tf := range termFreq {
		df := idx.DocFreq[term]
		if df == 0 {
			continue
		}
		vec[term] = (float64(tf) / float64(total)) * math.Log2(float64(idx.N)/float64(df))
	}
	return vec
}

// QueryVector counts occurrences of each lowercased query term. Repeated
// terms get their multiplicity as weight, not a binary flag.
func QueryVector(query []string) Vector {
	vec := make(Vector, len(query))
	for _, term := range query {
		vec[strings.ToLower(term)]++
	}
	return vec
}
