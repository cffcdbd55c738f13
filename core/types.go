// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound      - an endpoint lies outside [1, N].
//	ErrBadVertexCount      - a negative number of vertices was requested.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - repeated pair when multi-edges are disabled.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex id outside [1, N].
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadVertexCount indicates a negative vertex count.
	ErrBadVertexCount = errors.New("core: negative vertex count")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one undirected edge, kept with the endpoint order it was added in.
type Edge struct {
	// From is the first endpoint as emitted.
	From int

	// To is the second endpoint as emitted.
	To int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits repeated edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// pairKey identifies an unordered vertex pair with lo <= hi.
type pairKey struct{ lo, hi int }

// newPairKey canonicalizes (u,v) so that the smaller id comes first.
func newPairKey(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{lo: u, hi: v}
}

// Graph is the in-memory undirected graph.
//
// Vertices are the integers 1..order; there are no vertex records beyond the
// count. edges preserves insertion order, which is the emission order of the
// Graph Description format. pairs counts multiplicity per unordered pair and
// degree counts endpoint occurrences per vertex (a loop adds two).
//
// A Graph is not safe for concurrent mutation.
type Graph struct {
	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	order  int             // number of vertices, ids 1..order
	edges  []Edge          // insertion order
	pairs  map[pairKey]int // unordered pair → multiplicity
	degree []int           // degree[id], index 0 unused
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph has no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		pairs:  make(map[pairKey]int),
		degree: make([]int, 1),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
