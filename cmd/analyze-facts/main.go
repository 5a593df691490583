package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cognicore/factgraph/internal/cli"
	"github.com/cognicore/factgraph/pkg/factgraph"
	"github.com/cognicore/factgraph/pkg/factgraph/config"
	"github.com/cognicore/factgraph/pkg/factgraph/report"
)

func main() {
	var (
		factsPath = flag.String("facts", "", "Facts fixture file (YAML, optional; built-in example otherwise)")
		cat1      = flag.String("cat1", "", "First category (one-shot mode)")
		val1      = flag.String("val1", "", "First value (one-shot mode)")
		cat2      = flag.String("cat2", "", "Second category (one-shot mode)")
		val2      = flag.String("val2", "", "Second value (one-shot mode)")
	)
	flag.Parse()

	engine, err := buildEngine(*factsPath)
	if err != nil {
		log.Fatal(err)
	}
	builder := report.New()

	// One-shot mode
	if *cat1 != "" || *val1 != "" || *cat2 != "" || *val2 != "" {
		if *cat1 == "" || *val1 == "" || *cat2 == "" || *val2 == "" {
			log.Fatal("one-shot mode needs all of --cat1, --val1, --cat2, --val2")
		}
		printAnalysis(engine, builder, *cat1, *val1, *cat2, *val2)
		return
	}

	// Interactive mode
	fmt.Println("Analyze relationships for a new statement")
	fmt.Println("(Ctrl+D to exit)")
	fmt.Println()

	sc := bufio.NewScanner(os.Stdin)
	for {
		c1, v1, c2, v2, err := cli.PromptCandidate(os.Stdout, sc)
		if errors.Is(err, io.EOF) {
			fmt.Println("\nGoodbye!")
			return
		}
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		printAnalysis(engine, builder, c1, v1, c2, v2)
	}
}

func buildEngine(factsPath string) (*factgraph.Engine, error) {
	facts := cli.ExampleFacts()
	if factsPath != "" {
		loaded, err := config.LoadFacts(factsPath)
		if err != nil {
			return nil, fmt.Errorf("load facts: %w", err)
		}
		facts = loaded
	}
	return factgraph.NewWithFacts(facts, factgraph.Options{}), nil
}

func printAnalysis(engine *factgraph.Engine, builder *report.Builder, cat1, val1, cat2, val2 string) {
	trust := engine.TrustScore(cat1, val1, cat2, val2)
	analysis := engine.Analyze(cat1, val1, cat2, val2)
	fmt.Println()
	fmt.Print(builder.Build(cat1, val1, cat2, val2, trust, analysis).Render())
}
