// Package factgraph is the engine facade over the fact graph: graph
// construction from caller-supplied fact literals plus a small memo
// cache for trust queries.
package factgraph

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cognicore/factgraph/pkg/factgraph/graph"
)

const defaultTrustCacheSize = 256

// Options configures an Engine.
type Options struct {
	// TrustCacheSize bounds the TrustScore memo cache. Zero or negative
	// selects the default.
	TrustCacheSize int
}

// Engine wraps a fact graph and memoizes trust queries. The cache is
// purged on every AddFact, so cached answers always equal fresh ones.
// Like the graph itself, an Engine is not safe for concurrent use.
type Engine struct {
	graph *graph.Graph
	cache *lru.Cache[graph.Key, float64]
}

// New creates an Engine over an empty graph.
func New(opts Options) *Engine {
	size := opts.TrustCacheSize
	if size <= 0 {
		size = defaultTrustCacheSize
	}
	cache, _ := lru.New[graph.Key, float64](size)
	return &Engine{
		graph: graph.New(),
		cache: cache,
	}
}

// NewWithFacts creates an Engine seeded with the given facts. The
// engine itself carries no built-in data; seed fixtures belong to the
// caller.
func NewWithFacts(facts []graph.Fact, opts Options) *Engine {
	e := New(opts)
	for _, f := range facts {
		e.graph.AddFact(f)
	}
	return e
}

// AddFact inserts or overwrites a fact and invalidates cached trust
// scores.
func (e *Engine) AddFact(f graph.Fact) {
	e.graph.AddFact(f)
	e.cache.Purge()
}

// TrustScore returns the trust score for a candidate fact, memoized
// per candidate address pair.
func (e *Engine) TrustScore(category1, value1, category2, value2 string) float64 {
	key := graph.Key{
		A: graph.Node{Category: category1, Value: value1},
		B: graph.Node{Category: category2, Value: value2},
	}
	if trust, ok := e.cache.Get(key); ok {
		return trust
	}
	trust := e.graph.FactTrust(category1, value1, category2, value2)
	e.cache.Add(key, trust)
	return trust
}

// Analyze returns the full diagnostic view for a candidate fact.
func (e *Engine) Analyze(category1, value1, category2, value2 string) graph.Analysis {
	return e.graph.Analyze(category1, value1, category2, value2)
}

// RelatedFacts returns every fact touching the given node.
func (e *Engine) RelatedFacts(category, value string) []graph.Fact {
	return e.graph.RelatedFacts(category, value)
}

// Len returns the number of stored facts.
func (e *Engine) Len() int {
	return e.graph.Len()
}
