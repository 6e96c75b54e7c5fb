package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"qexpand/internal/domain"
)

// PlainJudge prompts for judgments line by line on a plain terminal.
// Invalid answers re-prompt until a y or n arrives.
type PlainJudge struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPlainJudge creates a prompt-based judge over the given streams.
func NewPlainJudge(in io.Reader, out io.Writer) *PlainJudge {
	return &PlainJudge{in: bufio.NewScanner(in), out: out}
}

// Judge displays the batch and collects a y/n answer per document.
func (p *PlainJudge) Judge(_ context.Context, iteration int, query string, batch domain.Batch) ([]bool, error) {
	fmt.Fprintf(p.out, "\n==================== Iteration %d ====================\n", iteration)
	fmt.Fprintf(p.out, "Current query: %s\n", query)
	for i, doc := range batch {
		fmt.Fprintf(p.out, "\nResult %d:\n", i+1)
		fmt.Fprintf(p.out, "  Title:   %s\n", doc.Title)
		fmt.Fprintf(p.out, "  URL:     %s\n", doc.URL)
		fmt.Fprintf(p.out, "  Summary: %s\n", doc.Snippet)
		if !doc.Indexable {
			fmt.Fprintf(p.out, "  (non-HTML)\n")
		}
	}

	answers := make([]bool, len(batch))
	for i, doc := range batch {
		fmt.Fprintf(p.out, "\nResult %d: %s\n", i+1, doc.Title)
		for {
			fmt.Fprintf(p.out, "Relevant (y/n)? ")
			if !p.in.Scan() {
				if err := p.in.Err(); err != nil {
					return nil, err
				}
				return nil, ErrAborted
			}
			switch strings.ToLower(strings.TrimSpace(p.in.Text())) {
			case "y":
				answers[i] = true
			case "n":
				answers[i] = false
			default:
				fmt.Fprintf(p.out, "Please enter 'y' or 'n'.\n")
				continue
			}
			break
		}
	}
	return answers, nil
}
