package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/factgraph/pkg/factgraph/internalerr"
)

func writeFacts(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "facts.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFacts(t *testing.T) {
	path := writeFacts(t, `facts:
  - category1: Name
    value1: Alex
    category2: House
    value2: Blue
    trust: 90
  - category1: House
    value1: Blue
    category2: Job
    value2: Doctor
    trust: 80.5
`)

	facts, err := LoadFacts(path)
	if err != nil {
		t.Fatalf("LoadFacts: %v", err)
	}
	if len(facts) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(facts))
	}
	if facts[0].Category1 != "Name" || facts[0].Value2 != "Blue" || facts[0].Trust != 90 {
		t.Errorf("unexpected first fact: %+v", facts[0])
	}
	if facts[1].Trust != 80.5 {
		t.Errorf("expected fractional trust 80.5, got %v", facts[1].Trust)
	}
}

func TestLoadFactsEmptyField(t *testing.T) {
	path := writeFacts(t, `facts:
  - category1: Name
    value1: ""
    category2: House
    value2: Blue
    trust: 90
`)

	if _, err := LoadFacts(path); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for empty value, got %v", err)
	}
}

func TestLoadFactsTrustOutOfRange(t *testing.T) {
	path := writeFacts(t, `facts:
  - category1: Name
    value1: Alex
    category2: House
    value2: Blue
    trust: 120
`)

	if _, err := LoadFacts(path); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for trust 120, got %v", err)
	}
}

func TestLoadFactsMalformedYAML(t *testing.T) {
	path := writeFacts(t, "facts: [\n")
	if _, err := LoadFacts(path); err == nil {
		t.Error("expected a parse error for malformed YAML")
	}
}

func TestLoadFactsMissingFile(t *testing.T) {
	if _, err := LoadFacts(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
