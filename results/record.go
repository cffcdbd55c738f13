// SPDX-License-Identifier: MIT
// Package: graphbench/results
//
// record.go: Result Record parsing.

package results

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the d/m/Y H:M:S layout of record timestamps. The
// millisecond part is accepted by time.Parse as a trailing fraction.
const TimestampLayout = "2/1/2006 15:04:05"

// maxLineBytes caps a single record line. Solvers print whole colourings on
// one progress line, far beyond bufio's 64 KiB default.
const maxLineBytes = 1 << 30

// Markers that turn line 1 into a run error.
var errorMarkers = []string{"error", "bad"}

// Record is one parsed Result Record.
type Record struct {
	Start     time.Time
	End       time.Time
	MaxClique string // first token of line 1
	Best      string // second token of line 1
}

// Elapsed is End - Start.
func (r Record) Elapsed() time.Duration {
	return r.End.Sub(r.Start)
}

// Cell renders the record as (best, maxClique, elapsed seconds).
func (r Record) Cell() Cell {
	return Cell{
		Result:    r.Best,
		Secondary: r.MaxClique,
		Time:      FormatSeconds(r.Elapsed()),
	}
}

// FormatSeconds prints d in fractional seconds using the shortest decimal
// that round-trips, e.g. 1.5 or 0.125.
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

// ParseTimestamp parses a record timestamp in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: %w", s, ErrMalformedRecord)
	}

	return t, nil
}

// ParseRecord reads a Result Record.
//
// Line 1 is inspected before anything else: if it contains an error marker
// the result is ErrRunError and the timestamps are not looked at.
func ParseRecord(r io.Reader) (Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var first, second, last string
	i := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch i {
		case 0:
			first = line
		case 1:
			second = line
			for _, m := range errorMarkers {
				if strings.Contains(line, m) {
					return Record{}, fmt.Errorf("%q: %w", line, ErrRunError)
				}
			}
		}
		if line != "" {
			last = line
		}
		i++
	}
	if err := sc.Err(); err != nil {
		return Record{}, fmt.Errorf("results: read record: %w", err)
	}
	if i < 3 {
		return Record{}, fmt.Errorf("%d lines, need at least 3: %w", i, ErrMalformedRecord)
	}

	tokens := strings.Fields(second)
	if len(tokens) != 2 {
		return Record{}, fmt.Errorf("line 1 %q: want 2 tokens: %w", second, ErrMalformedRecord)
	}

	start, err := ParseTimestamp(first)
	if err != nil {
		return Record{}, fmt.Errorf("start %w", err)
	}
	end, err := ParseTimestamp(last)
	if err != nil {
		return Record{}, fmt.Errorf("end %w", err)
	}

	return Record{Start: start, End: end, MaxClique: tokens[0], Best: tokens[1]}, nil
}
