// SPDX-License-Identifier: MIT
// Package: graphbench/builder
//
// impl_skip_path.go: implementation of SkipPath(n) constructor (code "LD").
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • For i=1..n-1 emits i -- i+2, or i -- i+1 when i+2 > n. Only the final
//     edge (n-1 -- n) takes the fallback, so the result is a spanning tree
//     with n-1 edges: two interleaved paths over odd and even ids joined at
//     the top.
//
// Complexity:
//   • Time: O(n) vertices + O(n-1) edges.
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/graphbench/core"

// SkipPath returns a Constructor that builds the "almost-path" i -- i+2.
func SkipPath(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodSkipPath, "n", n, MinSkipPathNodes); err != nil {
			return err
		}

		if err := validateSize(MethodSkipPath, n, n-1); err != nil {
			return err
		}

		off, err := addVertexBlock(g, MethodSkipPath, n)
		if err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			j := i + 2
			if j > n {
				j = i + 1
			}
			if err = addEdge(g, MethodSkipPath, off+i, off+j); err != nil {
				return err
			}
		}

		return nil
	}
}
