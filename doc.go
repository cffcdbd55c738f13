// Package graphbench generates graph instances for benchmarking graph
// algorithms and aggregates the results that solvers report on them.
//
// Two workflows share one small graph model:
//
//	generate:  topology code + parameters ─► builder ─► core.Graph ─► graphio
//	aggregate: results/<alg>/<file> + data/<file> ─► results.Table ─► TSV
//
// Subpackages:
//
//	core/     - undirected Graph with 1-based ids, insertion-ordered edges and degree counts
//	builder/  - functional constructors: bipartite, cycle, complete, path, star,
//	            binary tree, skip path, Mycielski, uniform random simple
//	topology/ - command-line codes (BK, C, K, L, S, T, LD, M, R) mapped to builders
//	graphio/  - "N M" + edge-lines reader/writer, graph6 and DOT via gonum
//	results/  - Result Record parsing and the aggregation report
//	config/   - YAML configuration for the CLI
//
// The command is cmd/graphbench.
package graphbench
