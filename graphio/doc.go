// Package graphio reads and writes the Graph Description format exchanged
// with the benchmarking harness, and re-encodes graphs through gonum.
//
// Graph Description (the wire contract):
//
//	N M        header: vertex count, edge count
//	u v        M lines, one undirected edge each, 1-based ids
//
// Write emits edges in core.Graph insertion order. Read is tolerant of blank
// lines and of a header without M; it counts the edge lines it actually sees
// and ignores a header M that disagrees. Loops and repeated pairs are kept.
//
// Alternative encodings (Format):
//
//	edgelist – the wire format above (default)
//	graph6   – gonum graph/encoding/graph6, simple graphs only
//	dot      – gonum graph/encoding/dot, multigraphs allowed
package graphio
