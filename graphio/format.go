package graphio

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/graphbench/core"
)

// Format names an output encoding.
type Format string

const (
	FormatEdgeList Format = "edgelist"
	FormatGraph6   Format = "graph6"
	FormatDOT      Format = "dot"
)

// ParseFormat maps a case-insensitive name to a Format; empty means edgelist.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatEdgeList, nil
	case FormatEdgeList, FormatGraph6, FormatDOT:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Encode writes g in format f. name is used by formats that carry a graph
// name (DOT) and ignored otherwise.
func Encode(w io.Writer, g *core.Graph, f Format, name string) error {
	switch f {
	case FormatEdgeList, "":
		return Write(w, g)
	case FormatGraph6:
		return WriteGraph6(w, g)
	case FormatDOT:
		return WriteDOT(w, g, name)
	default:
		return fmt.Errorf("%q: %w", string(f), ErrUnknownFormat)
	}
}
