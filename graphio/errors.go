package graphio

import "errors"

var (
	// ErrEmptyInput indicates a description with no header line.
	ErrEmptyInput = errors.New("graphio: empty graph description")

	// ErrBadHeader indicates a header whose first token is not a vertex count.
	ErrBadHeader = errors.New("graphio: malformed header")

	// ErrBadEdge indicates an edge line that is not two integers.
	ErrBadEdge = errors.New("graphio: malformed edge line")

	// ErrNotSimple indicates an encoding that cannot represent loops or repeated pairs.
	ErrNotSimple = errors.New("graphio: graph has loops or repeated edges")

	// ErrUnknownFormat indicates an unsupported Format name.
	ErrUnknownFormat = errors.New("graphio: unknown format")
)
