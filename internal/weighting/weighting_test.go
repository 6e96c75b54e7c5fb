package weighting

import (
	"math"
	"testing"

	"qexpand/internal/domain"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestTFIDF(t *testing.T) {
	// tf=3, df=2, N=8 -> 3 * log2(4) = 6
	if got := TFIDF(3, 2, 8); !almostEqual(got, 6.0) {
		t.Errorf("TFIDF(3,2,8) = %v, want 6", got)
	}
	// df == N -> zero weight
	if got := TFIDF(5, 10, 10); !almostEqual(got, 0.0) {
		t.Errorf("TFIDF(5,10,10) = %v, want 0", got)
	}
}

func TestDocVector(t *testing.T) {
	idx := domain.Index{
		DocFreq: map[string]int{"galaxy": 2, "star": 4},
		N:       8,
	}
	tf := map[string]int{"galaxy": 3, "star": 1}
	vec := DocVector(tf, idx)
	// T = 4; galaxy: (3/4)*log2(8/2) = 1.5; star: (1/4)*log2(8/4) = 0.25
	if !almostEqual(vec["galaxy"], 1.5) {
		t.Errorf("galaxy weight = %v, want 1.5", vec["galaxy"])
	}
	if !almostEqual(vec["star"], 0.25) {
		t.Errorf("star weight = %v, want 0.25", vec["star"])
	}
}

func TestDocVectorEmptyDocument(t *testing.T) {
	idx := domain.Index{DocFreq: map[string]int{}, N: 10}
	vec := DocVector(map[string]int{}, idx)
	if len(vec) != 0 {
		t.Errorf("empty document produced vector %v", vec)
	}
}

func TestDocVectorBatchSizeIncludesNonIndexable(t *testing.T) {
	// N counts the whole batch even when some documents contributed no
	// tokens; a term in every indexable doc still gets nonzero weight.
	idx := domain.Index{DocFreq: map[string]int{"nebula": 5}, N: 10}
	vec := DocVector(map[string]int{"nebula": 2}, idx)
	want := (2.0 / 2.0) * math.Log2(10.0/5.0)
	if !almostEqual(vec["nebula"], want) {
		t.Errorf("nebula weight = %v, want %v", vec["nebula"], want)
	}
}

func TestQueryVector(t *testing.T) {
	vec := QueryVector([]string{"Milky", "way", "milky"})
	if !almostEqual(vec["milky"], 2) || !almostEqual(vec["way"], 1) {
		t.Errorf("QueryVector = %v, want milky=2 way=1", vec)
	}
}

func TestVectorAddScaled(t *testing.T) {
	v := Vector{"a": 1}
	v.AddScaled(Vector{"a": 2, "b": 4}, 0.5)
	if !almostEqual(v["a"], 2) || !almostEqual(v["b"], 2) {
		t.Errorf("AddScaled result %v, want a=2 b=2", v)
	}
}
