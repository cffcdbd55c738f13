// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing mode getters and Stats.
// Policy:
//   - No algorithms or hidden state here.
// AI-HINT (file):
//   - Stats() is the single call the aggregator needs for its n/m/max.deg columns.

package core

// GraphStats is a value snapshot of the graph's modes and counters.
type GraphStats struct {
	AllowsMulti bool // parallel edges permitted
	AllowsLoops bool // self-loops permitted

	VertexCount     int // N
	EdgeCount       int // M, parallel edges included
	MaxDegree       int // highest endpoint-occurrence count
	MaxDegreeVertex int // smallest id reaching MaxDegree (0 if N == 0)
}

// Looped reports the construction-time "loops" capability flag.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Multigraph reports the construction-time "multi-edges" capability flag.
func (g *Graph) Multigraph() bool {
	return g.allowMulti
}

// Stats returns a snapshot of flags and counts.
//
// Complexity:
//   - Time O(V) for the degree scan, Space O(1).
func (g *Graph) Stats() GraphStats {
	vertex, degree := g.MaxDegree()

	return GraphStats{
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		VertexCount:     g.order,
		EdgeCount:       len(g.edges),
		MaxDegree:       degree,
		MaxDegreeVertex: vertex,
	}
}
