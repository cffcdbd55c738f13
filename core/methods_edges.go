// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Multiplicity/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order with the endpoint order given to AddEdge.
// AI-HINT (file):
//   - If Looped()==false and from==to, AddEdge returns ErrLoopNotAllowed.
//   - If Multigraph()==false and {from,to} already has an edge, AddEdge returns ErrMultiEdgeNotAllowed.

package core

import "fmt"

// AddEdge appends the undirected edge from--to.
//
// Steps:
//  1. Validate both endpoints are in [1, N].
//  2. Reject loops unless WithLoops.
//  3. Reject repeated pairs unless WithMultiEdges.
//  4. Record edge, pair multiplicity and endpoint degrees.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) error {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return fmt.Errorf("AddEdge(%d,%d): order=%d: %w", from, to, g.order, ErrVertexNotFound)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}
	key := newPairKey(from, to)
	if !g.allowMulti && g.pairs[key] > 0 {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	g.edges = append(g.edges, Edge{From: from, To: to})
	g.pairs[key]++
	g.degree[from]++
	g.degree[to]++

	return nil
}

// HasEdge reports whether at least one edge joins u and v (either order).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	return g.pairs[newPairKey(u, v)] > 0
}

// Multiplicity returns how many edges join u and v (either order).
// Complexity: O(1).
func (g *Graph) Multiplicity(u, v int) int {
	return g.pairs[newPairKey(u, v)]
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns total number of edges, parallel edges included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// IsSimple reports whether the graph has neither loops nor repeated pairs,
// regardless of which modes it was created with.
// Complexity: O(E).
func (g *Graph) IsSimple() bool {
	for key, n := range g.pairs {
		if n > 1 || key.lo == key.hi {
			return false
		}
	}

	return true
}
