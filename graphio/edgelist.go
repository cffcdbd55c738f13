// SPDX-License-Identifier: MIT
// Package: graphbench/graphio
//
// edgelist.go: Graph Description reader and writer.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphbench/core"
)

// Write serializes g as "N M" followed by one "u v" line per edge.
//
// Complexity: O(E) time, O(1) extra space beyond the bufio buffer.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32) // two ints, a space and a newline

	buf = appendPair(buf[:0], g.VertexCount(), g.EdgeCount())
	if _, err := bw.Write(buf); err != nil {
		return fmt.Errorf("graphio: write header: %w", err)
	}
	for _, e := range g.Edges() {
		buf = appendPair(buf[:0], e.From, e.To)
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("graphio: write edge %d-%d: %w", e.From, e.To, err)
		}
	}

	return bw.Flush()
}

// appendPair appends "a b\n" to buf.
func appendPair(buf []byte, a, b int) []byte {
	buf = strconv.AppendInt(buf, int64(a), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(b), 10)

	return append(buf, '\n')
}

// maxLineBytes caps a single input line; bufio's 64 KiB default is too
// small for hand-edited inputs with long comment or padding lines.
const maxLineBytes = 1 << 30

// Read parses a Graph Description. The graph is created with loops and
// multi-edges enabled (plus any extra opts), so every edge line that names
// two vertices in [1, N] is kept.
//
// Errors:
//   - ErrEmptyInput: no non-blank line.
//   - ErrBadHeader: the first token is not a non-negative integer.
//   - ErrBadEdge: an edge line is not exactly two integers.
//   - core.ErrVertexNotFound: an endpoint is outside [1, N].
//
// Complexity: O(bytes) time, O(E) space.
func Read(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	gopts := append([]core.GraphOption{core.WithLoops(), core.WithMultiEdges()}, opts...)
	g := core.NewGraph(gopts...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	header := false
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if !header {
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("line %d: %q: %w", lineNo, fields[0], ErrBadHeader)
			}
			if _, err = g.AddVertices(n); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			header = true
			continue
		}

		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %d fields: %w", lineNo, len(fields), ErrBadEdge)
		}
		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		if errU != nil || errV != nil {
			return nil, fmt.Errorf("line %d: %q: %w", lineNo, sc.Text(), ErrBadEdge)
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}
	if !header {
		return nil, ErrEmptyInput
	}

	return g, nil
}
