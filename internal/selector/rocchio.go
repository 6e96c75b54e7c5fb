package selector

import (
	"sort"

	"qexpand/internal/domain"
	"qexpand/internal/weighting"
)

// Default Rocchio coefficients.
const (
	DefaultAlpha = 1.0
	DefaultBeta  = 0.75
	DefaultGamma = 0.15
)

// Rocchio reformulates the query vector against the centroids of the
// relevant and non-relevant document vectors and ranks the resulting
// terms. Only strictly positive scores qualify as candidates.
type Rocchio struct {
	alpha, beta, gamma float64
	maxNewTerms        int
}

// NewRocchio creates the Rocchio strategy. Non-positive coefficients
// fall back to the defaults.
func NewRocchio(alpha, beta, gamma float64, maxNewTerms int) *Rocchio {
	if alpha <= 0 {
		alpha = DefaultAlpha
	}
	if beta <= 0 {
		beta = DefaultBeta
	}
	if gamma <= 0 {
		gamma = DefaultGamma
	}
	if maxNewTerms <= 0 {
		maxNewTerms = DefaultMaxNewTerms
	}
	return &Rocchio{alpha: alpha, beta: beta, gamma: gamma, maxNewTerms: maxNewTerms}
}

// Name returns the identifier of this strategy.
func (r *Rocchio) Name() string { return "rocchio" }

// SelectTerms computes Qnew = alpha*Q0 + beta*relCentroid -
// gamma*nonRelCentroid and returns the best-scoring terms that are not
// already in the query and score strictly above zero.
func (r *Rocchio) SelectTerms(query []string, idx domain.Index, relevant []bool) []string {
	qnew := make(weighting.Vector)
	qnew.AddScaled(weighting.QueryVector(query), r.alpha)

	relCentroid, relCount := centroid(idx, relevant, true)
	nonRelCentroid, nonRelCount := centroid(idx, relevant, false)
	if relCount > 0 {
		qnew.AddScaled(relCentroid, r.beta)
	}
	if nonRelCount > 0 {
		qnew.AddScaled(nonRelCentroid, -r.gamma)
	}

	candidates := make([]string, 0, len(qnew))
	for term := range qnew {
		candidates = append(candidates, term)
	}
	// Map iteration order is random; anchor it before the stable sort.
	sort.Strings(candidates)
	sort.SliceStable(candidates, func(a, b int) bool { return qnew[candidates[a]] > qnew[candidates[b]] })
	return takeNew(candidates, query, r.maxNewTerms, func(term string) bool {
		return qnew[term] > 0
	})
}

// centroid averages the normalized vectors of the documents whose
// judgment equals wantRelevant. Zero matching documents yield an empty
// vector and a zero count.
func centroid(idx domain.Index, relevant []bool, wantRelevant bool) (weighting.Vector, int) {
	sum := make(weighting.Vector)
	count := 0
	for i, tf := range idx.TermFreqs {
		if i >= len(relevant) || relevant[i] != wantRelevant {
			continue
		}
		sum.AddScaled(weighting.DocVector(tf, idx), 1.0)
		count++
	}
	if count > 0 {
		for term := range sum {
			sum[term] /= float64(count)
		}
	}
	return sum, count
}
