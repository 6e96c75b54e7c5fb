// Package feedback holds the precision evaluator and the iteration
// state machine that drives retrieval, judgment, and query expansion.
package feedback

import "qexpand/internal/domain"

// Precision is the fraction of indexable documents judged relevant.
// Judgments align with the batch by position; judgments on
// non-indexable documents are ignored. A batch with no indexable
// documents scores exactly 0.0.
func Precision(batch domain.Batch, judgments []bool) float64 {
	indexable, relevant := 0, 0
	for i, doc := range batch {
		if !doc.Indexable {
			continue
		}
		indexable++
		if i < len(judgments) && judgments[i] {
			relevant++
		}
	}
	if indexable == 0 {
		return 0.0
	}
	return float64(relevant) / float64(indexable)
}
