// SPDX-License-Identifier: MIT
// Package: graphbench/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Local vertex 1 is the center; leaves are 2..n.
//   • Emits spokes 1 -- i for i=2..n in ascending order.
//
// Complexity:
//   • Time: O(n) vertices + O(n-1) edges.
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/graphbench/core"

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		if err := validateSize(MethodStar, n, n-1); err != nil {
			return err
		}

		off, err := addVertexBlock(g, MethodStar, n)
		if err != nil {
			return err
		}

		center := off + 1
		for i := 2; i <= n; i++ {
			if err = addEdge(g, MethodStar, center, off+i); err != nil {
				return err
			}
		}

		return nil
	}
}
