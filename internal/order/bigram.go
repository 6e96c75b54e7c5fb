// Package order decides the relative order of a freshly selected term
// pair using adjacent-pair frequencies from a reference corpus. The
// table is built once at startup and read-only afterwards.
package order

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// Table maps a space-joined lowercase word pair to the number of times
// the pair occurred adjacently in the reference corpus. Absent pairs
// have frequency zero.
type Table map[string]int

// Orderer reorders exactly-two-term selections; anything else passes
// through unchanged.
type Orderer struct {
	table Table
}

// New creates an Orderer over the given table. A nil table behaves as
// an empty one, under which Order always keeps the input order.
func New(table Table) *Orderer {
	if table == nil {
		table = Table{}
	}
	return &Orderer{table: table}
}

// Order returns the two terms in their more frequent adjacent order,
// keeping the original order on ties. Zero or one term, or more than
// two, are returned unchanged.
func (o *Orderer) Order(terms []string) []string {
	if len(terms) != 2 {
		return terms
	}
	forward := o.table[pairKey(terms[0], terms[1])]
	backward := o.table[pairKey(terms[1], terms[0])]
	if forward >= backward {
		return terms
	}
	return []string{terms[1], terms[0]}
}

// BuildTable counts adjacent lowercase word pairs in text. Stopwords
// are kept: adjacency in the raw corpus is what the lookup models.
func BuildTable(text string) Table {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	table := make(Table)
	for i := 0; i+1 < len(words); i++ {
		table[pairKey(words[i], words[i+1])]++
	}
	return table
}

// LoadTable builds a table from a corpus file, streaming line by line
// so word pairs never span lines. An empty path yields an empty table.
func LoadTable(path string) (Table, error) {
	if path == "" {
		return Table{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	table := make(Table)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		words := wordPattern.FindAllString(strings.ToLower(scanner.Text()), -1)
		for i := 0; i+1 < len(words); i++ {
			table[pairKey(words[i], words[i+1])]++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

func pairKey(a, b string) string { return a + " " + b }
