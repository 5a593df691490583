package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/cognicore/factgraph/pkg/factgraph/internalerr"
)

func TestExampleFacts(t *testing.T) {
	facts := ExampleFacts()
	if len(facts) != 5 {
		t.Fatalf("expected 5 example facts, got %d", len(facts))
	}
	for i, f := range facts {
		if f.Category1 == "" || f.Value1 == "" || f.Category2 == "" || f.Value2 == "" {
			t.Errorf("fact %d has an empty field: %+v", i, f)
		}
		if f.Trust <= 0 || f.Trust > 100 {
			t.Errorf("fact %d has trust %v outside 0-100", i, f.Trust)
		}
	}
}

func TestPromptCandidate(t *testing.T) {
	var out bytes.Buffer
	sc := bufio.NewScanner(strings.NewReader("Name\nAlex\nJob\nDoctor\n"))

	cat1, val1, cat2, val2, err := PromptCandidate(&out, sc)
	if err != nil {
		t.Fatalf("PromptCandidate: %v", err)
	}
	if cat1 != "Name" || val1 != "Alex" || cat2 != "Job" || val2 != "Doctor" {
		t.Errorf("got (%s,%s,%s,%s)", cat1, val1, cat2, val2)
	}
	if !strings.Contains(out.String(), "Enter first category:") {
		t.Errorf("missing prompt in output %q", out.String())
	}
	if !strings.Contains(out.String(), "Enter Name value:") {
		t.Errorf("prompt should echo the category, got %q", out.String())
	}
}

func TestPromptPairTrimsWhitespace(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader("  House  \n  Blue \n"))
	cat, val, err := PromptPair(io.Discard, sc, "first")
	if err != nil {
		t.Fatalf("PromptPair: %v", err)
	}
	if cat != "House" || val != "Blue" {
		t.Errorf("got (%q, %q), want trimmed values", cat, val)
	}
}

func TestPromptPairEmptyInput(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader("\n"))
	if _, _, err := PromptPair(io.Discard, sc, "first"); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for blank category, got %v", err)
	}
}

func TestPromptPairEOF(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader(""))
	if _, _, err := PromptPair(io.Discard, sc, "first"); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF on closed input, got %v", err)
	}
}
