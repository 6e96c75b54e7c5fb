package tui

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"qexpand/internal/domain"
)

func judgeBatch() domain.Batch {
	return domain.Batch{
		{Title: "First", URL: "https://a.example/", Snippet: "one", Indexable: true},
		{Title: "Second", URL: "https://b.example/file.pdf", Snippet: "two", Indexable: false},
		{Title: "Third", URL: "https://c.example/", Snippet: "three", Indexable: true},
	}
}

func TestPlainJudgeCollectsAnswers(t *testing.T) {
	var out bytes.Buffer
	j := NewPlainJudge(strings.NewReader("y\nn\ny\n"), &out)
	got, err := j.Judge(context.Background(), 1, "milky way", judgeBatch())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []bool{true, false, true}) {
		t.Errorf("answers = %v", got)
	}
	display := out.String()
	for _, want := range []string{"Iteration 1", "milky way", "First", "https://b.example/file.pdf", "(non-HTML)"} {
		if !strings.Contains(display, want) {
			t.Errorf("display missing %q", want)
		}
	}
}

func TestPlainJudgeRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	j := NewPlainJudge(strings.NewReader("maybe\nY\nN \ny\n"), &out)
	got, err := j.Judge(context.Background(), 2, "q", judgeBatch())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []bool{true, false, true}) {
		t.Errorf("answers = %v", got)
	}
	if !strings.Contains(out.String(), "Please enter 'y' or 'n'.") {
		t.Error("missing re-prompt message")
	}
}

func TestPlainJudgeAbortOnEOF(t *testing.T) {
	var out bytes.Buffer
	j := NewPlainJudge(strings.NewReader("y\n"), &out)
	_, err := j.Judge(context.Background(), 1, "q", judgeBatch())
	if !errors.Is(err, ErrAborted) {
		t.Errorf("err = %v, want ErrAborted", err)
	}
}
