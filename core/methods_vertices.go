// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertices/HasVertex/VertexCount/Degree.
// Determinism:
//   - New vertices always take the next consecutive ids.
// AI-HINT (file):
//   - There is no AddVertex(id): ids are implicit, 1..VertexCount().

package core

import "fmt"

// AddVertices appends n vertices and returns the id of the first one.
// For n == 0 the returned id is VertexCount()+1 and nothing changes.
//
// Errors:
//   - ErrBadVertexCount: if n < 0.
//
// Complexity: O(n) amortized (degree slice growth).
func (g *Graph) AddVertices(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("AddVertices(%d): %w", n, ErrBadVertexCount)
	}
	first := g.order + 1
	g.order += n
	g.degree = append(g.degree, make([]int, n)...)

	return first, nil
}

// HasVertex reports whether id is one of 1..VertexCount().
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	return id >= 1 && id <= g.order
}

// VertexCount returns N.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return g.order
}

// Degree returns the number of edge endpoints equal to id.
// Self-loops count twice, parallel edges count once each.
//
// Errors:
//   - ErrVertexNotFound: if id is outside [1, N].
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasVertex(id) {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}

	return g.degree[id], nil
}

// MaxDegree returns the vertex with the highest degree and that degree.
// Ties resolve to the smallest id. An empty graph yields (0, 0); a graph with
// vertices but no edges yields (1, 0).
//
// Complexity: O(V).
func (g *Graph) MaxDegree() (vertex, degree int) {
	for id := 1; id <= g.order; id++ {
		// strict comparison keeps the first (smallest) id on ties
		if vertex == 0 || g.degree[id] > degree {
			vertex, degree = id, g.degree[id]
		}
	}

	return vertex, degree
}
