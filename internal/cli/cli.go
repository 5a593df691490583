// Package cli holds the glue shared by the command-line tools: the
// built-in example fixture and the interactive prompts. The engine
// itself carries no seed data.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cognicore/factgraph/pkg/factgraph/graph"
	"github.com/cognicore/factgraph/pkg/factgraph/internalerr"
)

// ExampleFacts returns the logic-puzzle seed used when no fixture file
// is given on the command line.
func ExampleFacts() []graph.Fact {
	return []graph.Fact{
		{Category1: "Name", Value1: "Alex", Category2: "House", Value2: "Blue", Trust: 90},
		{Category1: "House", Value1: "Blue", Category2: "Job", Value2: "Doctor", Trust: 80},
		{Category1: "Job", Value1: "Doctor", Category2: "Drink", Value2: "Coffee", Trust: 70},
		{Category1: "Name", Value1: "Brooke", Category2: "Job", Value2: "Teacher", Trust: 85},
		{Category1: "House", Value1: "Red", Category2: "Job", Value2: "Teacher", Trust: 75},
	}
}

// PromptPair reads one category and its value from the scanner,
// prompting on w. It returns io.EOF when the input ends.
func PromptPair(w io.Writer, sc *bufio.Scanner, ordinal string) (category, value string, err error) {
	fmt.Fprintf(w, "Enter %s category: ", ordinal)
	if !sc.Scan() {
		return "", "", io.EOF
	}
	category = strings.TrimSpace(sc.Text())
	if category == "" {
		return "", "", fmt.Errorf("empty category: %w", internalerr.ErrInvalidInput)
	}

	fmt.Fprintf(w, "Enter %s value: ", category)
	if !sc.Scan() {
		return "", "", io.EOF
	}
	value = strings.TrimSpace(sc.Text())
	if value == "" {
		return "", "", fmt.Errorf("empty %s value: %w", category, internalerr.ErrInvalidInput)
	}

	return category, value, nil
}

// PromptCandidate reads both sides of a candidate fact.
func PromptCandidate(w io.Writer, sc *bufio.Scanner) (cat1, val1, cat2, val2 string, err error) {
	cat1, val1, err = PromptPair(w, sc, "first")
	if err != nil {
		return "", "", "", "", err
	}
	cat2, val2, err = PromptPair(w, sc, "second")
	if err != nil {
		return "", "", "", "", err
	}
	return cat1, val1, cat2, val2, nil
}
