package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/factgraph/pkg/factgraph/graph"
	"github.com/cognicore/factgraph/pkg/factgraph/internalerr"
)

// FactsFile is the on-disk fixture format:
//
//	facts:
//	  - category1: Name
//	    value1: Alex
//	    category2: House
//	    value2: Blue
//	    trust: 90
type FactsFile struct {
	Facts []FactEntry `yaml:"facts"`
}

// FactEntry is one fact in a fixture file.
type FactEntry struct {
	Category1 string  `yaml:"category1"`
	Value1    string  `yaml:"value1"`
	Category2 string  `yaml:"category2"`
	Value2    string  `yaml:"value2"`
	Trust     float64 `yaml:"trust"`
}

// LoadFacts loads fact fixtures from a YAML file. Fixture files are
// validated here so typos fail loudly at load time; the graph itself
// keeps accepting arbitrary strings and unclamped trust.
func LoadFacts(path string) ([]graph.Fact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file FactsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse facts file: %w", err)
	}

	facts := make([]graph.Fact, 0, len(file.Facts))
	for i, e := range file.Facts {
		if e.Category1 == "" || e.Value1 == "" || e.Category2 == "" || e.Value2 == "" {
			return nil, fmt.Errorf("fact %d: empty category or value: %w", i+1, internalerr.ErrInvalidConfig)
		}
		if e.Trust < 0 || e.Trust > 100 {
			return nil, fmt.Errorf("fact %d: trust %v outside 0-100: %w", i+1, e.Trust, internalerr.ErrInvalidConfig)
		}
		facts = append(facts, graph.Fact{
			Category1: e.Category1,
			Value1:    e.Value1,
			Category2: e.Category2,
			Value2:    e.Value2,
			Trust:     e.Trust,
		})
	}

	return facts, nil
}
