// SPDX-License-Identifier: MIT
// Package: graphbench/results
//
// aggregate.go: directory discovery and the aggregation pass.
//
// Algorithms are the sorted subdirectories of ResultsRoot, graphs the sorted
// regular files of InputsRoot; symlinks count as what they point to. The
// pass is sequential: one record file and one input file open at a time.

package results

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/graphbench/graphio"
)

const methodAggregate = "Aggregate"

// Options configures Aggregate.
type Options struct {
	ResultsRoot string
	InputsRoot  string

	// StrictInputs makes an unreadable or malformed input graph fatal
	// (ErrInputGraph) instead of an ERR statistics triple.
	StrictInputs bool

	// Logger receives one warning per degraded cell; nil discards.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Aggregate walks both roots and builds the report.
func Aggregate(opts Options) (*Table, error) {
	if opts.ResultsRoot == "" || opts.InputsRoot == "" {
		return nil, fmt.Errorf("%s: %w", methodAggregate, ErrNoRoot)
	}
	log := opts.logger()

	algs, err := listEntries(opts.ResultsRoot, fs.FileMode.IsDir)
	if err != nil {
		return nil, fmt.Errorf("%s: results root: %w", methodAggregate, err)
	}
	inputs, err := listEntries(opts.InputsRoot, fs.FileMode.IsRegular)
	if err != nil {
		return nil, fmt.Errorf("%s: inputs root: %w", methodAggregate, err)
	}
	log.Debug("aggregate discovered", "algorithms", len(algs), "inputs", len(inputs))

	t := &Table{Algorithms: algs, Rows: make([]Row, 0, len(inputs))}
	for _, file := range inputs {
		row := Row{Name: RowName(file), File: file, Cells: make([]Cell, len(algs))}
		for i, alg := range algs {
			row.Cells[i] = readCell(log, filepath.Join(opts.ResultsRoot, alg, file), alg, file)
		}

		stats, err := InputStats(filepath.Join(opts.InputsRoot, file))
		if err != nil {
			if opts.StrictInputs {
				return nil, fmt.Errorf("%s: %s: %v: %w", methodAggregate, file, err, ErrInputGraph)
			}
			log.Warn("input graph unusable", "file", file, "err", err)
			stats = ERRStats
		}
		row.Stats = stats
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// RowName is the file name up to its first '.'.
func RowName(file string) string {
	name, _, _ := strings.Cut(file, ".")

	return name
}

// readCell never fails: absence is NA, anything else unusable is ERR.
func readCell(log *slog.Logger, path, alg, file string) Cell {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NACell
	}
	if err != nil {
		log.Warn("result record unreadable", "algorithm", alg, "file", file, "err", err)
		return ERRCell
	}
	defer f.Close()

	rec, err := ParseRecord(f)
	switch {
	case errors.Is(err, ErrRunError):
		log.Debug("run reported an error", "algorithm", alg, "file", file)
		return ERRCell
	case err != nil:
		log.Warn("result record malformed", "algorithm", alg, "file", file, "err", err)
		return ERRCell
	}

	return rec.Cell()
}

// InputStats reads a Graph Description and returns its n, m and max.deg.
func InputStats(path string) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, err
	}
	defer f.Close()

	g, err := graphio.Read(f)
	if err != nil {
		return Stats{}, err
	}
	st := g.Stats()

	return newStats(st.VertexCount, st.EdgeCount, st.MaxDegree), nil
}

// listEntries returns the sorted names of dir's entries whose mode is
// accepted by keep. Symlinks are judged by their target; dangling links are
// skipped.
func listEntries(dir string, keep func(fs.FileMode) bool) ([]string, error) {
	entries, err := os.ReadDir(dir) // sorted by name
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		mode := e.Type()
		if mode&fs.ModeSymlink != 0 {
			fi, err := os.Stat(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			mode = fi.Mode()
		}
		if keep(mode) {
			names = append(names, e.Name())
		}
	}

	return names, nil
}
