// Package bfs provides tunable options and error definitions
// for bidirectional breadth-first search over a junction.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Sentinel errors for Bidirectional.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNodeNotFound is returned when an endpoint is not a node of the graph.
	ErrNodeNotFound = errors.New("bfs: node not found")

	// ErrNoPath is returned when the frontiers exhaust without meeting.
	ErrNoPath = errors.New("bfs: no path")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative hop limit), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per level.
	Ctx context.Context

	// Avoid holds region ids whose edges are never traversed.
	Avoid mapset.Set[int]

	// MaxHops, if > 0, gives up on paths longer than this many edges.
	// A value of 0 disables the limit.
	MaxHops int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - no avoided regions
//   - no hop limit
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Avoid: mapset.New[int](),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAvoidRegions excludes every edge labeled with one of ids.
func WithAvoidRegions(ids ...int) Option {
	return func(o *Options) {
		for _, id := range ids {
			o.Avoid.Put(id)
		}
	}
}

// WithMaxHops limits the path length in edges.
//
//	h > 0: limit to h edges
//	h == 0: explicit no limit
//	h < 0: invalid option → ErrOptionViolation
func WithMaxHops(h int) Option {
	return func(o *Options) {
		if h < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, h)
			return
		}
		o.MaxHops = h
	}
}

// Result is a shortest path between two nodes.
//   - Nodes: the node sequence, from first to last.
//   - Edges: indexes into junction.Graph.Edges, one per step.
//   - Regions: the region of every step, parallel to Edges.
//   - Meet: the node where the two frontiers met.
type Result struct {
	Nodes   []int
	Edges   []int
	Regions []int
	Meet    int
}

// Hops returns the number of edges on the path.
func (r *Result) Hops() int { return len(r.Edges) }
