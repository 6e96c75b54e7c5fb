package selector

import (
	"reflect"
	"testing"

	"qexpand/internal/domain"
)

// fourDocIndex: four documents, all indexable, with term stats chosen so
// weights come out to round numbers (N=4).
func fourDocIndex() domain.Index {
	return domain.Index{
		TermFreqs: []map[string]int{
			{"galaxy": 2, "nebula": 1, "way": 1},
			{"galaxy": 1, "cluster": 3},
			{"quasar": 2},
			{"nebula": 1, "quasar": 1},
		},
		DocFreq: map[string]int{"galaxy": 2, "nebula": 2, "way": 1, "cluster": 1, "quasar": 2},
		N:       4,
	}
}

func TestSummedTFIDFSelect(t *testing.T) {
	s := NewSummedTFIDF(2)
	// Relevant: docs 0 and 1.
	// galaxy: (2+1)*log2(4/2) = 3; nebula: 1*log2(2) = 1;
	// way: 1*log2(4) = 2; cluster: 3*log2(4) = 6.
	got := s.SelectTerms([]string{"milky", "way"}, fourDocIndex(), []bool{true, true, false, false})
	want := []string{"cluster", "galaxy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SelectTerms = %v, want %v", got, want)
	}
}

func TestSummedTFIDFExcludesQueryTerms(t *testing.T) {
	s := NewSummedTFIDF(10)
	got := s.SelectTerms([]string{"Cluster", "GALAXY", "nebula", "way", "quasar"}, fourDocIndex(), []bool{true, true, true, true})
	if len(got) != 0 {
		t.Errorf("expected no candidates outside the query, got %v", got)
	}
}

func TestSummedTFIDFRespectsLimit(t *testing.T) {
	s := NewSummedTFIDF(1)
	got := s.SelectTerms(nil, fourDocIndex(), []bool{true, true, true, true})
	if len(got) != 1 {
		t.Errorf("limit 1 returned %v", got)
	}
}

func TestSummedTFIDFNoRelevantDocs(t *testing.T) {
	s := NewSummedTFIDF(2)
	got := s.SelectTerms([]string{"milky"}, fourDocIndex(), []bool{false, false, false, false})
	if len(got) != 0 {
		t.Errorf("no relevant docs should yield no terms, got %v", got)
	}
}

func TestRocchioSelect(t *testing.T) {
	r := NewRocchio(1.0, 0.75, 0.15, 2)
	got := r.SelectTerms([]string{"milky", "way"}, fourDocIndex(), []bool{true, true, false, false})
	if len(got) == 0 || len(got) > 2 {
		t.Fatalf("SelectTerms = %v, want 1..2 terms", got)
	}
	for _, term := range got {
		if term == "milky" || term == "way" {
			t.Errorf("query term %q re-selected", term)
		}
	}
}

func TestRocchioOnlyPositiveScores(t *testing.T) {
	// All documents non-relevant: every non-query term scores
	// -gamma * centroid weight < 0 and must be filtered.
	r := NewRocchio(1.0, 0.75, 0.15, 5)
	got := r.SelectTerms([]string{"milky"}, fourDocIndex(), []bool{false, false, false, false})
	if len(got) != 0 {
		t.Errorf("negative-score terms selected: %v", got)
	}
}

func TestRocchioNoJudgedDocsReturnsNothing(t *testing.T) {
	// Zero relevant and zero non-relevant documents: Qnew = alpha*Q0,
	// all of whose terms are query terms, so selection is empty.
	r := NewRocchio(1.0, 0.75, 0.15, 2)
	idx := domain.Index{TermFreqs: nil, DocFreq: map[string]int{}, N: 10}
	got := r.SelectTerms([]string{"milky", "way"}, idx, nil)
	if len(got) != 0 {
		t.Errorf("expected empty selection, got %v", got)
	}
}
