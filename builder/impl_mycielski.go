// SPDX-License-Identifier: MIT
// Package: graphbench/builder
//
// impl_mycielski.go: implementation of Mycielski(k) constructor.
//
// Level recurrence (local ids, 1-based):
//   • Level 2: 2 vertices, edge list [1--2].
//   • Level k from level k-1 with pv vertices and edge list pe:
//       1. every edge of pe, unchanged and in order;
//       2. for each (u,v) in pe in order: u -- u+pv, then v -- v+pv;
//       3. for w = 0..pv-1: w+1+pv -- 2pv+1 (the apex).
//     The new level has 2pv+1 vertices and 3|pe|+pv edges.
//
// Step 2 yields one shadow edge per endpoint occurrence, so from level 4 on
// the same pair can repeat. The benchmark instance family this reproduces was
// generated with exactly this rule, repeats included.
//
// Contract:
//   • MinMycielskiOrder ≤ k ≤ MaxMycielskiOrder (else ErrTooFewVertices / ErrTooManyEdges).
//   • k ≥ 4 requires g.Multigraph() (else ErrUnsupportedGraphMode).
//
// Complexity:
//   • Time: O(V_k + E_k); each level is derived once from the previous one.
//   • Space: O(E_k) for the working edge list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphbench/core"
)

// firstRepeatingMycielskiOrder is the first level whose shadow rule repeats a pair.
const firstRepeatingMycielskiOrder = 4

// Mycielski returns a Constructor that builds the order-k Mycielski instance.
func Mycielski(k int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodMycielski, "k", k, MinMycielskiOrder); err != nil {
			return err
		}
		if err := validateMax(MethodMycielski, "k", k, MaxMycielskiOrder); err != nil {
			return err
		}
		if k >= firstRepeatingMycielskiOrder && !g.Multigraph() {
			return fmt.Errorf("%s: k=%d repeats edges, graph must allow multi-edges: %w",
				MethodMycielski, k, ErrUnsupportedGraphMode)
		}

		order, edges := mycielskiLevel(k)

		off, err := addVertexBlock(g, MethodMycielski, order)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if err = addEdge(g, MethodMycielski, off+e.From, off+e.To); err != nil {
				return err
			}
		}

		return nil
	}
}

// mycielskiLevel carries (vertex count, edge list) forward from level 2 up to
// level k and returns the final pair. k must already be validated.
func mycielskiLevel(k int) (int, []core.Edge) {
	pv := 2
	pe := []core.Edge{{From: 1, To: 2}}

	for level := 3; level <= k; level++ {
		next := make([]core.Edge, 0, 3*len(pe)+pv)
		next = append(next, pe...)
		for _, e := range pe {
			next = append(next,
				core.Edge{From: e.From, To: e.From + pv},
				core.Edge{From: e.To, To: e.To + pv})
		}
		apex := 2*pv + 1
		for w := 0; w < pv; w++ {
			next = append(next, core.Edge{From: w + 1 + pv, To: apex})
		}
		pv, pe = apex, next
	}

	return pv, pe
}
