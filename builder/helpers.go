// Package builder provides internal helper functions used by Constructor
// implementations.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the method tag for uniform reporting.
package builder

import (
	"fmt"

	"github.com/katalvlaran/graphbench/core"
)

// addVertexBlock appends n vertices to g and returns the offset to add to a
// local 1-based index to obtain the graph id (local i ↦ off+i).
//
// Complexity: O(n) time, O(1) extra space.
func addVertexBlock(g *core.Graph, method string, n int) (int, error) {
	first, err := g.AddVertices(n)
	if err != nil {
		return 0, fmt.Errorf("%s: AddVertices(%d): %w", method, n, err)
	}

	return first - 1, nil
}

// addEdge adds the edge u--v, wrapping any core error with method context.
//
// Complexity: O(1) amortized.
func addEdge(g *core.Graph, method string, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}
