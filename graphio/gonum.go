// SPDX-License-Identifier: MIT
// Package: graphbench/graphio
//
// gonum.go: adapters from core.Graph to gonum graphs and the graph6/DOT
// encoders built on them. Node ids are the 1-based vertex ids; every vertex
// is added, isolated ones included.

package graphio

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/encoding/graph6"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/graphbench/core"
)

// ToSimple copies g into a gonum simple undirected graph.
// Returns ErrNotSimple if g has loops or repeated pairs.
func ToSimple(g *core.Graph) (*simple.UndirectedGraph, error) {
	if !g.IsSimple() {
		return nil, ErrNotSimple
	}
	sg := simple.NewUndirectedGraph()
	for id := 1; id <= g.VertexCount(); id++ {
		sg.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		sg.SetEdge(simple.Edge{F: simple.Node(e.From), T: simple.Node(e.To)})
	}

	return sg, nil
}

// ToMulti copies g into a gonum undirected multigraph, one line per edge.
func ToMulti(g *core.Graph) *multi.UndirectedGraph {
	mg := multi.NewUndirectedGraph()
	for id := 1; id <= g.VertexCount(); id++ {
		mg.AddNode(multi.Node(id))
	}
	for _, e := range g.Edges() {
		mg.SetLine(mg.NewLine(multi.Node(e.From), multi.Node(e.To)))
	}

	return mg
}

// WriteGraph6 writes the graph6 string of g followed by a newline.
func WriteGraph6(w io.Writer, g *core.Graph) error {
	sg, err := ToSimple(g)
	if err != nil {
		return fmt.Errorf("graph6: %w", err)
	}
	if _, err = io.WriteString(w, string(graph6.Encode(sg))+"\n"); err != nil {
		return fmt.Errorf("graph6: %w", err)
	}

	return nil
}

// WriteDOT writes g as an undirected DOT multigraph named name.
func WriteDOT(w io.Writer, g *core.Graph, name string) error {
	b, err := dot.MarshalMulti(ToMulti(g), name, "", "\t")
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	b = append(b, '\n')
	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("dot: %w", err)
	}

	return nil
}
