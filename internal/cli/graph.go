// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/trigraph/builder"
	"github.com/katalvlaran/trigraph/core"
)

var (
	// ErrEdgeSyntax is returned for an --edge value that is not u-v or u-v:w.
	ErrEdgeSyntax = errors.New("cli: edge must be u-v or u-v:w")

	// ErrEdgeWeight is returned when the :w suffix is not a base-10 int64.
	ErrEdgeWeight = errors.New("cli: edge weight must be an integer")

	// ErrEmptyVertex is returned for an empty --vertex value.
	ErrEmptyVertex = errors.New("cli: vertex label must not be empty")

	// ErrTopology is returned for an unknown or malformed --gen value.
	ErrTopology = errors.New("cli: topology must be path:n, cycle:n, star:n, wheel:n, complete:n, grid:RxC or random:n:p")
)

// edgeArg is one parsed --edge value.
type edgeArg struct {
	u, v     string
	weight   int64
	weighted bool
}

// parseEdge parses "u-v" or "u-v:w". Labels may not contain '-' or ':'.
// The weight may be negative ("a-b:-2"); the weight separator is the last ':'.
func parseEdge(s string) (edgeArg, error) {
	var e edgeArg

	body := s
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		w, err := strconv.ParseInt(s[i+1:], 10, 64)
		if err != nil {
			return edgeArg{}, fmt.Errorf("%w: %q", ErrEdgeWeight, s)
		}
		e.weight, e.weighted = w, true
		body = s[:i]
	}

	u, v, ok := strings.Cut(body, "-")
	if !ok || u == "" || v == "" || strings.ContainsAny(v, "-:") || strings.Contains(u, ":") {
		return edgeArg{}, fmt.Errorf("%w: %q", ErrEdgeSyntax, s)
	}
	e.u, e.v = u, v

	return e, nil
}

// parseTopology maps a --gen value such as "grid:3x4" or "random:20:0.1"
// to a builder constructor.
func parseTopology(s string) (builder.Constructor, error) {
	kind, args, _ := strings.Cut(s, ":")
	bad := fmt.Errorf("%w: %q", ErrTopology, s)

	if kind == "grid" {
		r, c, ok := strings.Cut(args, "x")
		if !ok {
			return nil, bad
		}
		rows, err1 := strconv.Atoi(r)
		cols, err2 := strconv.Atoi(c)
		if err1 != nil || err2 != nil {
			return nil, bad
		}
		return builder.Grid(rows, cols), nil
	}

	if kind == "random" {
		ns, ps, ok := strings.Cut(args, ":")
		if !ok {
			return nil, bad
		}
		n, err1 := strconv.Atoi(ns)
		p, err2 := strconv.ParseFloat(ps, 64)
		if err1 != nil || err2 != nil {
			return nil, bad
		}
		return builder.RandomSparse(n, p), nil
	}

	n, err := strconv.Atoi(args)
	if err != nil {
		return nil, bad
	}
	switch kind {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "complete":
		return builder.Complete(n), nil
	}
	return nil, bad
}

// graphFlags collects the inline graph description shared by every subcommand.
type graphFlags struct {
	gen      string
	seed     uint64
	maxW     int64
	vertices []string
	edges    []string
}

func (f *graphFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.gen, "gen", "", "start from a generated topology (path:n, cycle:n, star:n, wheel:n, complete:n, grid:RxC, random:n:p)")
	fs.Uint64Var(&f.seed, "seed", 1, "random seed for --gen")
	fs.Int64Var(&f.maxW, "max-weight", 1, "draw --gen edge weights uniformly from [1, max-weight]")
	fs.StringArrayVar(&f.vertices, "vertex", nil, "add an isolated vertex (repeatable)")
	fs.StringArrayVarP(&f.edges, "edge", "e", nil, "add an edge u-v or u-v:w (repeatable)")
}

// build materializes the flags into a graph. The generated topology comes
// first, then vertices in flag order, then edge endpoints in edge order, so
// vertex indices are deterministic. A repeated edge keeps the weight given last.
func (f *graphFlags) build(opts ...core.GraphOption) (*core.Graph[string], error) {
	edges := make([]edgeArg, 0, len(f.edges))
	for _, raw := range f.edges {
		e, err := parseEdge(raw)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	opts = append(opts, core.WithCapacity(len(f.vertices)+2*len(edges)))
	var (
		cons  []builder.Constructor
		bopts []builder.BuilderOption
	)
	if f.gen != "" {
		if f.maxW < 1 {
			return nil, fmt.Errorf("%w: max-weight %d", ErrEdgeWeight, f.maxW)
		}
		c, err := parseTopology(f.gen)
		if err != nil {
			return nil, err
		}
		cons = append(cons, c)
		bopts = append(bopts,
			builder.WithSeed(f.seed),
			builder.WithWeightFn(builder.UniformWeightFn(1, f.maxW)),
		)
	}
	g, err := builder.BuildGraph(opts, bopts, cons...)
	if err != nil {
		return nil, err
	}

	for _, v := range f.vertices {
		if v == "" {
			return nil, ErrEmptyVertex
		}
		g.AddVertex(v)
	}
	for _, e := range edges {
		g.AddVertex(e.u)
		g.AddVertex(e.v)
		if e.weighted {
			g.AddWeightedEdge(e.u, e.v, e.weight)
		} else {
			g.AddEdge(e.u, e.v)
		}
	}

	return g, nil
}
