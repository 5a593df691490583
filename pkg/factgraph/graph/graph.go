// Package graph implements the in-memory fact graph: a store of
// trust-weighted relations between (category, value) pairs, with
// contradiction detection and path-based trust propagation over it.
package graph

import "math"

// neutralTrust is returned for a candidate fact that nothing in the
// store supports or contradicts.
const neutralTrust = 50

// maxPathDepth bounds the supporting-path search. The check happens on
// entry to each recursive extension, after a hop has already been taken,
// so paths of maxPathDepth+1 edges are still recorded. Historical
// behavior, kept deliberately; see the boundary test.
const maxPathDepth = 3

// Node identifies one endpoint of a fact.
type Node struct {
	Category string
	Value    string
}

// Key is the ordered address pair a fact is stored under.
type Key struct {
	A Node
	B Node
}

// Fact is a trust-weighted undirected edge between two nodes.
// Trust is caller-assigned, nominally 0-100; the store never clamps it.
type Fact struct {
	Category1 string
	Value1    string
	Category2 string
	Value2    string
	Trust     float64
}

// Key returns the address pair the fact is stored under.
func (f Fact) Key() Key {
	return Key{
		A: Node{Category: f.Category1, Value: f.Value1},
		B: Node{Category: f.Category2, Value: f.Value2},
	}
}

// Node1 returns the first endpoint.
func (f Fact) Node1() Node { return Node{Category: f.Category1, Value: f.Value1} }

// Node2 returns the second endpoint.
func (f Fact) Node2() Node { return Node{Category: f.Category2, Value: f.Value2} }

// Graph is the in-memory fact store plus the trust queries over it.
// It is not safe for concurrent use; callers needing that must add
// their own synchronization around the whole graph.
type Graph struct {
	facts map[Key]Fact
	order []Key // insertion order; overwrites keep the original slot
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{facts: make(map[Key]Fact)}
}

// NewWithFacts creates a graph seeded with the given facts, added in
// slice order.
func NewWithFacts(facts []Fact) *Graph {
	g := New()
	for _, f := range facts {
		g.AddFact(f)
	}
	return g
}

// AddFact inserts the fact at its address pair. A fact already stored
// under the same pair is silently replaced (last write wins) and keeps
// its original position in store-encounter order. Values and trust are
// stored as given, without validation.
func (g *Graph) AddFact(f Fact) {
	key := f.Key()
	if _, ok := g.facts[key]; !ok {
		g.order = append(g.order, key)
	}
	g.facts[key] = f
}

// Len returns the number of stored facts.
func (g *Graph) Len() int { return len(g.facts) }

// DirectlyContradicts reports whether two address pairs directly
// contradict: same ordered category pair, one value matching and the
// paired value differing. Identical pairs do not contradict, nor do
// pairs that differ on both sides.
func DirectlyContradicts(a, b Key) bool {
	if a.A.Category != b.A.Category || a.B.Category != b.B.Category {
		return false
	}
	return (a.A.Value == b.A.Value && a.B.Value != b.B.Value) ||
		(a.B.Value == b.B.Value && a.A.Value != b.A.Value)
}

// PathTrust computes the trust score for a chain of facts. The first
// fact's trust seeds the score; every further hop applies a compounding
// decay so long chains and weak links shrink the result super-linearly.
// A single-fact path keeps that fact's own trust; an empty path is 0.
func PathTrust(path []Fact) float64 {
	if len(path) == 0 {
		return 0
	}
	trust := path[0].Trust
	for _, f := range path[1:] {
		decay := f.Trust * trust / 10000
		trust = math.Min(trust, f.Trust) * decay
	}
	return trust
}

// ContradictionImpact scores an indirect contradiction: the path trust
// halved once per edge beyond the first, so longer inferential chains
// carry weaker contradiction evidence.
func ContradictionImpact(path []Fact) float64 {
	return PathTrust(path) * math.Pow(0.5, float64(len(path)-1))
}

// FactTrust computes the trust score for a hypothetical new fact.
// Direct contradictions dominate: if any stored fact contradicts the
// candidate the result is max(0, 100 - strongest contradicting trust),
// regardless of support. Otherwise the best supporting-path trust is
// returned, and with neither evidence the neutral default.
func (g *Graph) FactTrust(category1, value1, category2, value2 string) float64 {
	candidate := Key{
		A: Node{Category: category1, Value: value1},
		B: Node{Category: category2, Value: value2},
	}

	strongest, contradicted := 0.0, false
	for _, key := range g.order {
		if !DirectlyContradicts(candidate, key) {
			continue
		}
		contradicted = true
		if t := g.facts[key].Trust; t > strongest {
			strongest = t
		}
	}
	if contradicted {
		return math.Max(0, 100-strongest)
	}

	best, supported := 0.0, false
	for _, path := range g.SupportingPaths(candidate.A, candidate.B) {
		supported = true
		if t := PathTrust(path); t > best {
			best = t
		}
	}
	if supported {
		return best
	}

	return neutralTrust
}

// ScoredFact pairs a stored fact with its trust score.
type ScoredFact struct {
	Fact  Fact
	Trust float64
}

// ScoredPath pairs a path of facts with its trust or impact score.
type ScoredPath struct {
	Path  []Fact
	Trust float64
}

// Analysis is the full diagnostic view of how a candidate fact relates
// to the store: every directly contradicting fact, every supporting
// path with its propagated trust, and every indirect contradiction with
// its impact. Unlike FactTrust, nothing short-circuits.
type Analysis struct {
	DirectContradictions   []ScoredFact
	SupportingPaths        []ScoredPath
	IndirectContradictions []ScoredPath
}

// Analyze runs all three relationship scans for a candidate fact.
func (g *Graph) Analyze(category1, value1, category2, value2 string) Analysis {
	candidate := Key{
		A: Node{Category: category1, Value: value1},
		B: Node{Category: category2, Value: value2},
	}

	var a Analysis
	for _, key := range g.order {
		if DirectlyContradicts(candidate, key) {
			f := g.facts[key]
			a.DirectContradictions = append(a.DirectContradictions, ScoredFact{Fact: f, Trust: f.Trust})
		}
	}
	for _, path := range g.SupportingPaths(candidate.A, candidate.B) {
		a.SupportingPaths = append(a.SupportingPaths, ScoredPath{Path: path, Trust: PathTrust(path)})
	}
	for _, path := range g.IndirectContradictions(candidate) {
		a.IndirectContradictions = append(a.IndirectContradictions, ScoredPath{Path: path, Trust: ContradictionImpact(path)})
	}
	return a
}

// RelatedFacts returns every fact touching the given node, in
// store-encounter order.
func (g *Graph) RelatedFacts(category, value string) []Fact {
	node := Node{Category: category, Value: value}
	var related []Fact
	for _, key := range g.order {
		f := g.facts[key]
		if f.Node1() == node || f.Node2() == node {
			related = append(related, f)
		}
	}
	return related
}
