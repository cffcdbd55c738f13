// SPDX-License-Identifier: MIT
// Package: graphbench/results
//
// table.go: report model and TSV rendering.

package results

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// NA marks a run that produced no record.
	NA = "NA"
	// ERR marks a run, record or input graph that could not be used.
	ERR = "ERR"
)

// Cell is one (algorithm, graph) triple.
type Cell struct {
	Result    string // best value
	Secondary string // max clique size
	Time      string // elapsed seconds
}

var (
	// NACell is the cell of a missing record.
	NACell = Cell{Result: NA, Secondary: NA, Time: NA}
	// ERRCell is the cell of a failed run or unreadable record.
	ERRCell = Cell{Result: ERR, Secondary: ERR, Time: ERR}
)

// Stats holds the n, m and max.deg columns as printed.
type Stats struct {
	N         string
	M         string
	MaxDegree string
}

// ERRStats replaces the statistics of an unusable input graph.
var ERRStats = Stats{N: ERR, M: ERR, MaxDegree: ERR}

func newStats(n, m, maxDeg int) Stats {
	return Stats{N: strconv.Itoa(n), M: strconv.Itoa(m), MaxDegree: strconv.Itoa(maxDeg)}
}

// Row is one graph: Cells[i] belongs to Table.Algorithms[i].
type Row struct {
	Name  string
	File  string
	Cells []Cell
	Stats Stats
}

// Table is the whole report.
type Table struct {
	Algorithms []string
	Rows       []Row
}

// Header returns the column names.
func (t *Table) Header() []string {
	h := make([]string, 0, 1+3*len(t.Algorithms)+3)
	h = append(h, "name")
	for _, alg := range t.Algorithms {
		h = append(h, alg+".result", alg+".maxc", alg+".time")
	}

	return append(h, "n", "m", "max.deg")
}

// Fields flattens r in header order.
func (r Row) Fields() []string {
	f := make([]string, 0, 1+3*len(r.Cells)+3)
	f = append(f, r.Name)
	for _, c := range r.Cells {
		f = append(f, c.Result, c.Secondary, c.Time)
	}

	return append(f, r.Stats.N, r.Stats.M, r.Stats.MaxDegree)
}

// WriteTSV prints the header and every row, tab-separated.
func (t *Table) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, strings.Join(t.Header(), "\t")); err != nil {
		return fmt.Errorf("results: write header: %w", err)
	}
	for _, r := range t.Rows {
		if _, err := fmt.Fprintln(bw, strings.Join(r.Fields(), "\t")); err != nil {
			return fmt.Errorf("results: write row %s: %w", r.Name, err)
		}
	}

	return bw.Flush()
}
