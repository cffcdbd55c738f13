// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an error wrapping the matching sentinel
// when its precondition is violated.
package builder

import (
	"fmt"
	"math"
)

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: <name>=<got> < min=<min>: builder: parameter too small" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateMax ensures that the provided integer 'got' is ≤ 'max'.
// Returns "<Method>: <name>=<got> > max=<max>: builder: parameter too large" otherwise.
//
// Complexity: O(1) time and space.
func validateMax(method, name string, got, max int) error {
	if got > max {
		return fmt.Errorf("%s: %s=%d > max=%d: %w", method, name, got, max, ErrTooManyEdges)
	}

	return nil
}

// validateSize rejects a graph with more than MaxVertices vertices or more
// than MaxEdges edges. Callers compute counts with pairCount/productCount so
// that huge parameters saturate instead of overflowing.
//
// Complexity: O(1) time and space.
func validateSize(method string, vertices, edges int) error {
	if vertices > MaxVertices {
		return fmt.Errorf("%s: %d vertices > max=%d: %w", method, vertices, MaxVertices, ErrTooManyEdges)
	}
	if edges > MaxEdges {
		return fmt.Errorf("%s: %d edges > max=%d: %w", method, edges, MaxEdges, ErrTooManyEdges)
	}

	return nil
}

// pairCount is n(n-1)/2, saturated at math.MaxInt.
func pairCount(n int) int {
	if n > 1<<31 {
		return math.MaxInt
	}

	return n * (n - 1) / 2
}

// productCount is a*b for non-negative a and b, saturated at math.MaxInt.
func productCount(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}

	return a * b
}

// sumCount is a+b for non-negative a and b, saturated at math.MaxInt.
func sumCount(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}

	return a + b
}

// validatePartition checks that the two integers n1 and n2 are each ≥ MinPartitionSize.
// Used by CompleteBipartite to enforce non-empty partitions.
//
// Complexity: O(1) time and space.
func validatePartition(method string, n1, n2 int) error {
	if n1 < MinPartitionSize || n2 < MinPartitionSize {
		return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
			method, n1, n2, MinPartitionSize, ErrTooFewVertices)
	}

	return nil
}
