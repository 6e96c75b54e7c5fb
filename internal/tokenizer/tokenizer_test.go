package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tk := New()
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"lowercases and keeps content words", "The Milky Way Galaxy", []string{"milky", "way", "galaxy"}},
		{"drops numbers and punctuation", "covid-19 cases: 1,234 (2021)!", []string{"covid", "cases"}},
		{"drops stopwords", "this is the best of all", []string{"best"}},
		{"empty input", "", nil},
		{"only stopwords", "the of and", []string{}},
		{"mixed alnum splits on digits", "web2.0 apps", []string{"web", "apps"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tk.Tokenize(tc.in)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	tk := New()
	in := "Saturn is the sixth planet from the Sun and the second largest"
	first := tk.Tokenize(in)
	for i := 0; i < 10; i++ {
		if got := tk.Tokenize(in); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced %v, want %v", i, got, first)
		}
	}
}

func TestTokenizeWithStemming(t *testing.T) {
	tk := New(WithStemming())
	got := tk.Tokenize("running runs")
	if len(got) != 2 {
		t.Fatalf("got %v, want two stemmed tokens", got)
	}
	if got[0] != got[1] {
		t.Errorf("expected both tokens to stem alike, got %v", got)
	}
}
