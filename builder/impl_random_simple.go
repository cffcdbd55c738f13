// SPDX-License-Identifier: MIT
// Package: graphbench/builder
//
// impl_random_simple.go - implementation of RandomSimple(n, m) constructor.
//
// Canonical model:
//   - m distinct unordered pairs drawn uniformly without replacement from all
//     n(n-1)/2 pairs over n vertices (the G(n, m) model).
//   - Each draw: v1 ~ U[1,n], v2 ~ U[1,n-1]; if v2 ≥ v1 then v2++ (a uniform
//     second vertex distinct from v1), otherwise swap so the smaller id comes
//     first. Pairs already drawn are redrawn.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ m (else ErrTooFewVertices).
//   - m ≤ n(n-1)/2 (else ErrTooManyEdges), so the draw loop always terminates.
//   - cfg.rng must be non-nil when m > 0 (else ErrNeedRandSource).
//   - Emits pairs in draw order, smaller id first.
//
// Complexity:
//   - Expected time O(m · H) where H ≤ ln(n(n-1)/2) + 1 redraw factor near saturation.
//   - Space: O(m) for the drawn-pair set.
//
// Determinism:
//   - Deterministic outcomes for a fixed seed: draw order and redraws are fixed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphbench/core"
)

// RandomSimple returns a Constructor that samples a uniform simple graph with
// exactly m edges over n vertices.
func RandomSimple(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodRandomSimple, "n", n, MinRandomVertices); err != nil {
			return err
		}
		if err := validateMin(MethodRandomSimple, "m", m, MinRandomEdges); err != nil {
			return err
		}
		if err := validateSize(MethodRandomSimple, n, m); err != nil {
			return err
		}
		if err := validateMax(MethodRandomSimple, "m", m, pairCount(n)); err != nil {
			return err
		}
		if cfg.rng == nil && m > 0 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSimple, ErrNeedRandSource)
		}

		// 2) Add the vertex block.
		off, err := addVertexBlock(g, MethodRandomSimple, n)
		if err != nil {
			return err
		}

		// 3) Draw until m distinct pairs are collected.
		rng := cfg.rng
		drawn := make(map[core.Edge]struct{}, m)
		var v1, v2 int
		for len(drawn) < m {
			v1 = rng.Intn(n) + 1
			v2 = rng.Intn(n-1) + 1
			if v2 >= v1 {
				v2++
			} else {
				v1, v2 = v2, v1
			}

			key := core.Edge{From: v1, To: v2}
			if _, dup := drawn[key]; dup {
				continue
			}
			drawn[key] = struct{}{}

			if err = addEdge(g, MethodRandomSimple, off+v1, off+v2); err != nil {
				return err
			}
		}

		return nil
	}
}
