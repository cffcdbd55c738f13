// SPDX-License-Identifier: MIT
// Package: graphbench/builder
//
// impl_tree.go: implementation of BinaryTree(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Heap layout: the parent of local vertex c is c/2 (integer division), so
//     vertex 1 is the root and vertices 2c, 2c+1 are the children of c.
//   • Emits parent -- child for c=2..n in ascending order.
//
// Complexity:
//   • Time: O(n) vertices + O(n-1) edges.
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/graphbench/core"

// BinaryTree returns a Constructor that builds the n-vertex binary-heap tree.
func BinaryTree(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodBinaryTree, "n", n, MinTreeNodes); err != nil {
			return err
		}

		if err := validateSize(MethodBinaryTree, n, n-1); err != nil {
			return err
		}

		off, err := addVertexBlock(g, MethodBinaryTree, n)
		if err != nil {
			return err
		}

		for c := 2; c <= n; c++ {
			if err = addEdge(g, MethodBinaryTree, off+c/2, off+c); err != nil {
				return err
			}
		}

		return nil
	}
}
