package graph

import (
	"sort"
	"strings"
)

// SupportingPaths finds every distinct chain of facts linking from to
// to, walking edges in store-encounter order. An edge placed on the
// in-progress path is off limits for the rest of that branch and is
// released on backtrack, so it can reappear in sibling branches but
// never twice within one path. Paths are not extended through the
// target, and two discoveries covering the same edge set count once.
func (g *Graph) SupportingPaths(from, to Node) [][]Fact {
	s := pathSearch{
		g:       g,
		target:  to,
		visited: make(map[Key]bool),
		seen:    make(map[string]bool),
	}
	s.explore(from, nil, 0)
	return s.paths
}

type pathSearch struct {
	g       *Graph
	target  Node
	visited map[Key]bool
	seen    map[string]bool // edge-set keys of recorded paths
	paths   [][]Fact
}

func (s *pathSearch) explore(current Node, path []Fact, depth int) {
	if depth > maxPathDepth {
		return
	}

	for _, key := range s.g.order {
		if s.visited[key] {
			continue
		}

		f := s.g.facts[key]
		var next Node
		switch current {
		case f.Node1():
			next = f.Node2()
		case f.Node2():
			next = f.Node1()
		default:
			continue
		}

		s.visited[key] = true
		extended := make([]Fact, len(path), len(path)+1)
		copy(extended, path)
		extended = append(extended, f)

		if next == s.target {
			if ek := edgeSetKey(extended); !s.seen[ek] {
				s.seen[ek] = true
				s.paths = append(s.paths, extended)
			}
		} else {
			s.explore(next, extended, depth+1)
		}
		delete(s.visited, key)
	}
}

// edgeSetKey canonicalizes a path as its unordered set of edge
// addresses, so discovery order does not distinguish paths.
func edgeSetKey(path []Fact) string {
	keys := make([]string, len(path))
	for i, f := range path {
		keys[i] = f.Key().addr()
	}
	sort.Strings(keys)
	return strings.Join(keys, "\x1e")
}

// addr is a collision-safe string form of the address pair, used only
// for path deduplication.
func (k Key) addr() string {
	return strings.Join([]string{k.A.Category, k.A.Value, k.B.Category, k.B.Value}, "\x1f")
}

// IndirectContradictions finds chains of reasoning that end in a fact
// incompatible with the candidate. For every node one hop away from
// either candidate endpoint, supporting paths from that endpoint to the
// neighbor are searched, and any path whose last edge directly
// contradicts the candidate's address pair is kept.
func (g *Graph) IndirectContradictions(candidate Key) [][]Fact {
	var contradicting [][]Fact
	for _, endpoint := range []Node{candidate.A, candidate.B} {
		for _, neighbor := range g.connections(endpoint) {
			for _, path := range g.SupportingPaths(endpoint, neighbor) {
				if len(path) == 0 {
					continue
				}
				if DirectlyContradicts(path[len(path)-1].Key(), candidate) {
					contradicting = append(contradicting, path)
				}
			}
		}
	}
	return contradicting
}

// connections returns the nodes directly linked to the given node, in
// first-encounter order.
func (g *Graph) connections(node Node) []Node {
	seen := make(map[Node]bool)
	var out []Node
	for _, key := range g.order {
		f := g.facts[key]
		var other Node
		switch node {
		case f.Node1():
			other = f.Node2()
		case f.Node2():
			other = f.Node1()
		default:
			continue
		}
		if !seen[other] {
			seen[other] = true
			out = append(out, other)
		}
	}
	return out
}
