// Package tokenizer normalizes raw text into lowercase content words:
// alphabetic tokens only, English stopwords removed, no stemming unless
// explicitly enabled.
package tokenizer

import (
	"regexp"
	"strings"

	snowballeng "github.com/kljensen/snowball/english"
)

// Tokenizer splits text into content words.
type Tokenizer struct {
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
	stemming     bool
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithStemming applies Snowball stemming to each kept token. The
// feedback engine leaves this off so expansion terms stay real words.
func WithStemming() Option {
	return func(t *Tokenizer) { t.stemming = true }
}

// New creates a tokenizer with the default English stopword set.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{
		tokenPattern: regexp.MustCompile(`[a-zA-Z]+`),
		stopwords:    defaultStopwords(),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Tokenize returns the lowercase alphabetic tokens of text with
// stopwords removed. Empty or non-alphabetic input yields nil.
func (t *Tokenizer) Tokenize(text string) []string {
	lower := strings.ToLower(text)
	raw := t.tokenPattern.FindAllString(lower, -1)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, isStop := t.stopwords[tok]; isStop {
			continue
		}
		if t.stemming {
			tok = snowballeng.Stem(tok, false)
			if tok == "" {
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "its", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now", "i", "you", "he", "she", "we", "they", "them", "his", "her", "their", "our", "your", "my", "me", "him", "us", "what", "which", "who", "whom", "when", "where", "why", "how", "all", "any", "both", "each", "few", "more", "most", "other", "some", "no", "nor", "not", "only", "do", "does", "did", "have", "has", "had", "having", "would", "could",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
