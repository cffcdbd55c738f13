// SPDX-License-Identifier: MIT
// Package: graphbench/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i -- (i mod n)+1 for i=1..n; the last one closes the ring.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/graphbench/core"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		if err := validateSize(MethodCycle, n, n); err != nil {
			return err
		}

		off, err := addVertexBlock(g, MethodCycle, n)
		if err != nil {
			return err
		}

		// Emit edges in ascending i; for i==n, connect back to 1.
		for i := 1; i <= n; i++ {
			if err = addEdge(g, MethodCycle, off+i, off+i%n+1); err != nil {
				return err
			}
		}

		return nil
	}
}
