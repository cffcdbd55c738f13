// Package core provides the in-memory Graph shared by every graphbench
// component.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are the integers 1..N; AddVertices(n) appends n more.
//   - Edges are undirected and unweighted, stored in insertion order so that a
//     serialized graph reproduces the exact emission order of its constructor.
//   - Self-loops (WithLoops) and parallel edges (WithMultiEdges) are off by
//     default; the reader and the Mycielski constructor switch them on.
//   - Degrees count endpoint occurrences, so a loop adds two.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertices(n int) (first int, err error) // O(n)
//	HasVertex(id int) bool                    // O(1)
//	VertexCount() int                         // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to int) error               // O(1)†
//	HasEdge(u, v int) bool                    // O(1)
//	Multiplicity(u, v int) int                // O(1)
//	Edges() []Edge                            // O(E), insertion order
//	EdgeCount() int                           // O(1)
//	IsSimple() bool                           // O(E)
//
//	// Degrees & statistics
//	Degree(id int) (int, error)               // O(1)
//	MaxDegree() (vertex, degree int)          // O(V), smallest id wins ties
//	Stats() GraphStats                        // O(V)
//
// Errors:
//
//	ErrVertexNotFound      – endpoint outside [1, N]
//	ErrBadVertexCount      – AddVertices(n < 0)
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// † amortized: slice append + map insertion.
package core
