// Package builder provides “functional-options”-style graph constructors for
// the benchmark instance families: complete bipartite, cycle, complete, path,
// star, binary-heap tree, skip path, Mycielski and random simple graphs.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:     creates a core.Graph, resolves options, runs constructors.
//     – Constructor:    func(*core.Graph, builderConfig) error.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithRand / WithSeed: the explicit random source for RandomSimple.
//   - Topologies (one impl_*.go each):
//     – CompleteBipartite(n1,n2), Cycle(n), Complete(n), Path(n), Star(n),
//     BinaryTree(n), SkipPath(n), Mycielski(k), RandomSimple(n,m).
//   - Shared constants: Method* tags and Min*/Max* parameter bounds.
//
// Guarantees:
//
//   - Vertices are appended as one consecutive block per constructor, so
//     several constructors in one BuildGraph call produce a disjoint union.
//   - Edges are emitted in a fixed, documented order; for a fixed seed the
//     whole output is reproducible.
//   - Structured runtime errors wrap the sentinels below with the method name.
//   - Option constructors panic on nil arguments; constructors never panic.
//
// Errors:
//
//	ErrTooFewVertices       - a size parameter is below its minimum.
//	ErrTooManyEdges         - a size parameter exceeds its maximum.
//	ErrNeedRandSource       - RandomSimple without WithRand/WithSeed.
//	ErrUnsupportedGraphMode - the target graph rejects what the topology emits.
//	ErrConstructFailed      - nil constructor or other construction failure.
package builder
