// SPDX-License-Identifier: MIT
// Package: graphbench/builder
//
// impl_bipartite.go: implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side takes local ids 1..n1, right side n1+1..n1+n2.
//   • Emits edges i -- n1+j for i=1..n1 (outer), j=1..n2 (inner).
//
// Complexity:
//   • Time: O(n1+n2) vertices + O(n1·n2) edges.
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/graphbench/core"

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		// Early validation: both partitions must be non-empty.
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}

		if err := validateSize(MethodCompleteBipartite, sumCount(n1, n2), productCount(n1, n2)); err != nil {
			return err
		}

		off, err := addVertexBlock(g, MethodCompleteBipartite, n1+n2)
		if err != nil {
			return err
		}

		// Emit all cross edges in stable (i over left, j over right) order.
		for i := 1; i <= n1; i++ {
			for j := 1; j <= n2; j++ {
				if err = addEdge(g, MethodCompleteBipartite, off+i, off+n1+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
