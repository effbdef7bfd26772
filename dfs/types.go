package dfs

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *junction.Graph is passed to Cycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Cycle is one simple cycle of the junction graph.
// Regions[i] labels the edge from Nodes[i] to Nodes[i+1]; the last entry
// labels the closing edge back to Nodes[0].
type Cycle struct {
	Nodes   []int
	Regions []int
}

// Len returns the number of nodes on the cycle.
func (c Cycle) Len() int { return len(c.Nodes) }

// Result is the outcome of Cycles.
type Result struct {
	// Cycles lists the distinct cycles, ordered by node sequence.
	Cycles []Cycle

	// Truncated reports that a cap stopped the search early.
	// The cycles found up to that point are still valid.
	Truncated bool
}

// Option configures cycle enumeration.
// Use with Cycles(gr, opts...).
type Option func(*Options)

// Options holds the caps and the node filter of Cycles.
type Options struct {
	// RecursionLimit caps the number of edges on a path before closing.
	RecursionLimit int

	// LoopSearchLimit caps the number of recorded cycles.
	LoopSearchLimit int

	// StepLimit caps the total number of path extensions across all seeds.
	// Dense multigraphs reach it long before the other two caps.
	StepLimit int

	// FilterNode, if non-nil, is called for every node before it is entered.
	// Return false to keep the node off every cycle.
	FilterNode func(node int) bool

	err error
}

// DefaultOptions returns Options with:
//   - RecursionLimit  64
//   - LoopSearchLimit 256
//   - StepLimit       1<<18
//   - no node filter
func DefaultOptions() Options {
	return Options{
		RecursionLimit:  64,
		LoopSearchLimit: 256,
		StepLimit:       DefaultStepLimit,
	}
}

// DefaultStepLimit is the StepLimit of DefaultOptions.
const DefaultStepLimit = 1 << 18

// WithRecursionLimit sets the maximum path length in edges; n must be ≥ 1.
func WithRecursionLimit(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: RecursionLimit must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.RecursionLimit = n
	}
}

// WithLoopSearchLimit sets the maximum number of cycles; n must be ≥ 1.
func WithLoopSearchLimit(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: LoopSearchLimit must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.LoopSearchLimit = n
	}
}

// WithStepLimit sets the maximum number of path extensions; n must be ≥ 1.
func WithStepLimit(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: StepLimit must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.StepLimit = n
	}
}

// WithFilterNode installs fn as the node filter.
func WithFilterNode(fn func(node int) bool) Option {
	return func(o *Options) {
		o.FilterNode = fn
	}
}

// WithExcluded keeps every node whose flag in excluded is set off the
// cycles, typically prune.Result.Unloopable.
func WithExcluded(excluded []bool) Option {
	return func(o *Options) {
		o.FilterNode = func(node int) bool {
			return node >= len(excluded) || !excluded[node]
		}
	}
}
