// Package topology maps the generator's command-line vocabulary (a topology
// code plus one or two integer parameters) onto builder constructors.
//
//	BK n1 n2   complete bipartite K(n1,n2)
//	C  n       cycle
//	K  n       complete graph
//	L  n       path
//	S  n       star
//	T  n       binary-heap tree
//	LD n       skip path (i -- i+2)
//	M  k       Mycielski instance of order k
//	R  n m     uniform random simple graph with m edges
package topology

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphbench/builder"
	"github.com/katalvlaran/graphbench/core"
)

var (
	// ErrUnrecognizedTopology indicates a code outside the table above.
	ErrUnrecognizedTopology = errors.New("topology: unrecognized topology")

	// ErrMalformedArgument indicates missing, surplus or non-integer parameters.
	ErrMalformedArgument = errors.New("topology: malformed argument")
)

// Code is a topology identifier as typed on the command line.
type Code string

const (
	CompleteBipartite Code = "BK"
	Cycle             Code = "C"
	Complete          Code = "K"
	Path              Code = "L"
	Star              Code = "S"
	BinaryTree        Code = "T"
	SkipPath          Code = "LD"
	Mycielski         Code = "M"
	Random            Code = "R"
)

// Codes lists every supported code in help-text order.
var Codes = []Code{CompleteBipartite, Cycle, Complete, Path, Star, BinaryTree, Mycielski, SkipPath, Random}

// ParseCode accepts an exact, case-sensitive topology code.
func ParseCode(s string) (Code, error) {
	for _, c := range Codes {
		if string(c) == s {
			return c, nil
		}
	}

	return "", fmt.Errorf("%q (want one of %s): %w", s, codeList(), ErrUnrecognizedTopology)
}

// NeedsSecond reports whether the code requires PAR2.
func (c Code) NeedsSecond() bool {
	return c == CompleteBipartite || c == Random
}

// Params are the integer arguments; Second is meaningful only when HasSecond.
type Params struct {
	First     int
	Second    int
	HasSecond bool
}

// ParseParams parses PAR1 and the optional PAR2 for code c. PAR2 is required
// for BK and R; for the others it is parsed, so garbage is still rejected,
// and otherwise ignored.
func ParseParams(c Code, args []string) (Params, error) {
	if len(args) == 0 {
		return Params{}, fmt.Errorf("%s: PAR1 is missing: %w", c, ErrMalformedArgument)
	}
	if len(args) > 2 {
		return Params{}, fmt.Errorf("%s: %d parameters, at most 2 allowed: %w", c, len(args), ErrMalformedArgument)
	}

	var p Params
	var err error
	if p.First, err = parseInt("PAR1", args[0]); err != nil {
		return Params{}, fmt.Errorf("%s: %w", c, err)
	}
	if len(args) == 2 {
		if p.Second, err = parseInt("PAR2", args[1]); err != nil {
			return Params{}, fmt.Errorf("%s: %w", c, err)
		}
		p.HasSecond = true
	}
	if c.NeedsSecond() && !p.HasSecond {
		return Params{}, fmt.Errorf("%s: PAR2 is required: %w", c, ErrMalformedArgument)
	}

	return p, nil
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not an integer: %w", name, s, ErrMalformedArgument)
	}

	return v, nil
}

// Constructor returns the builder constructor and the graph options the
// topology needs.
func Constructor(c Code, p Params) (builder.Constructor, []core.GraphOption, error) {
	switch c {
	case CompleteBipartite:
		return builder.CompleteBipartite(p.First, p.Second), nil, nil
	case Cycle:
		return builder.Cycle(p.First), nil, nil
	case Complete:
		return builder.Complete(p.First), nil, nil
	case Path:
		return builder.Path(p.First), nil, nil
	case Star:
		return builder.Star(p.First), nil, nil
	case BinaryTree:
		return builder.BinaryTree(p.First), nil, nil
	case SkipPath:
		return builder.SkipPath(p.First), nil, nil
	case Mycielski:
		return builder.Mycielski(p.First), []core.GraphOption{core.WithMultiEdges()}, nil
	case Random:
		return builder.RandomSimple(p.First, p.Second), nil, nil
	default:
		return nil, nil, fmt.Errorf("%q: %w", string(c), ErrUnrecognizedTopology)
	}
}

// Generate builds the graph for (c, p). opts carry the random source used
// by R; the other codes ignore it.
func Generate(c Code, p Params, opts ...builder.BuilderOption) (*core.Graph, error) {
	ctor, gopts, err := Constructor(c, p)
	if err != nil {
		return nil, err
	}

	return builder.BuildGraph(gopts, opts, ctor)
}

func codeList() string {
	names := make([]string, len(Codes))
	for i, c := range Codes {
		names[i] = string(c)
	}

	return strings.Join(names, ",")
}
