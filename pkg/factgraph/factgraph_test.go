package factgraph

import (
	"testing"

	"github.com/cognicore/factgraph/pkg/factgraph/graph"
)

func TestTrustScoreMatchesGraph(t *testing.T) {
	facts := []graph.Fact{
		{Category1: "Name", Value1: "Alex", Category2: "House", Value2: "Blue", Trust: 90},
		{Category1: "House", Value1: "Blue", Category2: "Job", Value2: "Doctor", Trust: 80},
	}
	engine := NewWithFacts(facts, Options{})
	bare := graph.NewWithFacts(facts)

	candidates := [][4]string{
		{"Name", "Alex", "Job", "Doctor"},
		{"Name", "Brooke", "House", "Blue"},
		{"Planet", "Mars", "Moon", "Phobos"},
	}
	for _, c := range candidates {
		want := bare.FactTrust(c[0], c[1], c[2], c[3])
		// Twice: the second answer comes from the cache.
		for i := 0; i < 2; i++ {
			if got := engine.TrustScore(c[0], c[1], c[2], c[3]); got != want {
				t.Errorf("TrustScore(%v) call %d = %v, want %v", c, i+1, got, want)
			}
		}
	}
}

func TestAddFactInvalidatesCache(t *testing.T) {
	engine := New(Options{TrustCacheSize: 8})

	if got := engine.TrustScore("Name", "Alex", "House", "Red"); got != 50 {
		t.Fatalf("trust on empty engine = %v, want 50", got)
	}

	engine.AddFact(graph.Fact{Category1: "Name", Value1: "Alex", Category2: "House", Value2: "Blue", Trust: 90})

	if got := engine.TrustScore("Name", "Alex", "House", "Red"); got != 10 {
		t.Errorf("trust after contradicting fact = %v, want 10 (stale cache?)", got)
	}
	if engine.Len() != 1 {
		t.Errorf("Len = %d, want 1", engine.Len())
	}
}

func TestAnalyzeAndRelatedFactsPassThrough(t *testing.T) {
	engine := NewWithFacts([]graph.Fact{
		{Category1: "Name", Value1: "Alex", Category2: "House", Value2: "Blue", Trust: 90},
		{Category1: "House", Value1: "Blue", Category2: "Job", Value2: "Doctor", Trust: 80},
	}, Options{})

	a := engine.Analyze("Name", "Alex", "Job", "Doctor")
	if len(a.SupportingPaths) != 1 {
		t.Errorf("expected 1 supporting path, got %d", len(a.SupportingPaths))
	}

	related := engine.RelatedFacts("House", "Blue")
	if len(related) != 2 {
		t.Errorf("expected 2 related facts, got %d", len(related))
	}
}
