// SPDX-License-Identifier: MIT
// Package: graphbench/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • n(n-1)/2 ≤ MaxEdges, i.e. n ≤ 4096 (else ErrTooManyEdges).
//   • Emits each unordered pair {i,j} with i<j exactly once,
//     in lexicographic order by (i,j).
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges emission.
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/graphbench/core"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		// Early parameter validation: K_n is defined for n≥1.
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		if err := validateSize(MethodComplete, n, pairCount(n)); err != nil {
			return err
		}

		off, err := addVertexBlock(g, MethodComplete, n)
		if err != nil {
			return err
		}

		for i := 1; i <= n; i++ { // outer endpoint index
			for j := i + 1; j <= n; j++ { // right endpoint strictly greater
				if err = addEdge(g, MethodComplete, off+i, off+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
