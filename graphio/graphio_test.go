package graphio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphbench/core"
	"github.com/katalvlaran/graphbench/graphio"
)

// newGraph builds a tolerant graph with n vertices and the given edges.
func newGraph(t *testing.T, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	_, err := g.AddVertices(n)
	require.NoError(t, err)
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1]))
	}
	return g
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	g := newGraph(t, 4, [2]int{3, 4}, [2]int{1, 2})
	require.NoError(t, graphio.Write(&buf, g))
	assert.Equal(t, "4 2\n3 4\n1 2\n", buf.String())
}

func TestWriteHeaderMatchesEdgeLines(t *testing.T) {
	var buf bytes.Buffer
	g := newGraph(t, 3, [2]int{1, 2}, [2]int{1, 2}, [2]int{2, 3})
	require.NoError(t, graphio.Write(&buf, g))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, "3 3", lines[0])
	assert.Len(t, lines[1:], 3)
}

func TestReadStar(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("4\n1 2\n1 3\n1 4\n"))
	require.NoError(t, err)
	st := g.Stats()
	assert.Equal(t, 4, st.VertexCount)
	assert.Equal(t, 3, st.EdgeCount)
	assert.Equal(t, 3, st.MaxDegree)
}

func TestReadRoundTrip(t *testing.T) {
	src := newGraph(t, 5, [2]int{1, 3}, [2]int{2, 4}, [2]int{3, 5}, [2]int{4, 5}, [2]int{5, 5})
	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, src))

	got, err := graphio.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, src.VertexCount(), got.VertexCount())
	assert.Equal(t, src.Edges(), got.Edges())
}

func TestReadTolerance(t *testing.T) {
	// blank lines, CRLF endings, a header without M and a header M that disagrees
	g, err := graphio.Read(strings.NewReader("\n3 7\r\n1 2\r\n\n2 3\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())

	g, err = graphio.Read(strings.NewReader("2"))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())
}

func TestReadLongLine(t *testing.T) {
	// an edge line padded past bufio.Scanner's default 64 KiB token size
	in := "3 2\n1" + strings.Repeat(" ", 80000) + "2\n2 3\n"
	g, err := graphio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 1, To: 2}, {From: 2, To: 3}}, g.Edges())
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", graphio.ErrEmptyInput},
		{"blank only", "\n \n", graphio.ErrEmptyInput},
		{"header not int", "x 2\n", graphio.ErrBadHeader},
		{"negative order", "-1 0\n", graphio.ErrBadHeader},
		{"three fields", "3 1\n1 2 3\n", graphio.ErrBadEdge},
		{"non-int edge", "3 1\n1 b\n", graphio.ErrBadEdge},
		{"out of range", "3 1\n1 4\n", core.ErrVertexNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGraph6(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteGraph6(&buf, newGraph(t, 3, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3})))
	assert.Equal(t, "Bw\n", buf.String())

	buf.Reset()
	require.NoError(t, graphio.Encode(&buf, newGraph(t, 3, [2]int{1, 2}, [2]int{2, 3}), graphio.FormatGraph6, ""))
	assert.Equal(t, "Bg\n", buf.String())

	err := graphio.WriteGraph6(&buf, newGraph(t, 2, [2]int{1, 2}, [2]int{2, 1}))
	assert.ErrorIs(t, err, graphio.ErrNotSimple)
}

func TestDOTKeepsRepeatedEdges(t *testing.T) {
	var buf bytes.Buffer
	g := newGraph(t, 3, [2]int{1, 2}, [2]int{1, 2})
	require.NoError(t, graphio.Encode(&buf, g, graphio.FormatDOT, "M4"))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "graph M4 {"), out)
	assert.Equal(t, 2, strings.Count(out, "1 -- 2"), out)
	assert.Contains(t, out, "3", "isolated vertices are kept")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]graphio.Format{
		"":         graphio.FormatEdgeList,
		"EdgeList": graphio.FormatEdgeList,
		"graph6":   graphio.FormatGraph6,
		" dot ":    graphio.FormatDOT,
	} {
		got, err := graphio.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := graphio.ParseFormat("json")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
}
