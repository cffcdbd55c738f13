// SPDX-License-Identifier: MIT
// Package: graphbench/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); P_1 has no edges.
//   - Emits edges i -- i+1 for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import "github.com/katalvlaran/graphbench/core"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		if err := validateSize(MethodPath, n, n-1); err != nil {
			return err
		}

		off, err := addVertexBlock(g, MethodPath, n)
		if err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err = addEdge(g, MethodPath, off+i, off+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
