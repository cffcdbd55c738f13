// SPDX-License-Identifier: MIT
// Package: graphbench/results
//
// errors.go: sentinel errors. Only ErrInputGraph (strict mode) and root
// discovery failures abort Aggregate; the rest degrade a single cell.

package results

import "errors"

var (
	// ErrRunError indicates line 1 of a record reports a failed run.
	ErrRunError = errors.New("results: run reported an error")

	// ErrMalformedRecord indicates a record that is too short, has the wrong
	// number of result tokens or carries an unparsable timestamp.
	ErrMalformedRecord = errors.New("results: malformed result record")

	// ErrInputGraph indicates an input graph that is unreadable or malformed
	// while StrictInputs is set.
	ErrInputGraph = errors.New("results: bad input graph")

	// ErrNoRoot indicates an empty ResultsRoot or InputsRoot.
	ErrNoRoot = errors.New("results: root directory not set")
)
