// SPDX-License-Identifier: MIT
// Package: graphbench/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices).
//
// Priority when several validations fail:
//   • ErrTooFewVertices / ErrTooManyEdges: size/domain checks first.
//   • ErrNeedRandSource: then RNG presence.
//   • ErrUnsupportedGraphMode: then mode compatibility.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, n1, n2, k, m) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyEdges indicates that a numeric parameter exceeds what the topology
// can realize: more edges than the simple graph on n vertices has, or a
// Mycielski order beyond MaxMycielskiOrder.
var ErrTooManyEdges = errors.New("builder: parameter too large")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the target core.Graph mode cannot hold the
// topology (e.g., Mycielski(k≥4) repeats pairs but the graph is simple).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates that construction could not complete for a
// reason other than parameter validation (e.g., a nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
