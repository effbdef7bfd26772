package prune

import (
	"errors"
	"fmt"
)

// Sentinel errors for Prune.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("prune: graph is nil")

	// ErrSetNil is returned when a nil region set is passed.
	ErrSetNil = errors.New("prune: region set is nil")

	// ErrWeights is returned when the weight slice does not cover every region.
	ErrWeights = errors.New("prune: weights do not match regions")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("prune: invalid option supplied")
)

// Area is an isolated-area set: regions reachable from the rest of the
// graph only through its entry points.
type Area struct {
	// Regions lists member region ids, ascending.
	Regions []int
	// EntryPoints lists member cells that also belong to a non-member region.
	EntryPoints []int
	// Weight is the summed weight of the members.
	Weight float64
}

// Result is the outcome of Prune. Unloopable and Exit are indexed by node.
type Result struct {
	// Unloopable marks nodes outside the 2-core: no cycle passes them.
	Unloopable []bool
	// Exit holds, per unloopable node, the edge index it was peeled
	// through, or -1.
	Exit []int
	// Areas lists the trimmed isolated-area sets, ordered by first region.
	Areas []Area
	// UnloopableCells lists, ascending, the cells of isolated regions other
	// than entry points, plus the cells of unloopable nodes.
	UnloopableCells []int
}

// Option configures Prune.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Prune.
type Option func(*Options)

// Options holds the isolated-area weight thresholds, as shares of all
// walkable cells.
type Options struct {
	// MaxWeight caps the running weight of a set during walks and merges.
	MaxWeight float64
	// MinWeight is the smallest split-off intersection kept as its own set.
	MinWeight float64
	// PairMaxWeight caps the merge of two single-region sets that share a
	// junction.
	PairMaxWeight float64

	err error
}

// DefaultOptions returns the default thresholds.
func DefaultOptions() Options {
	return Options{
		MaxWeight:     0.25,
		MinWeight:     0.02,
		PairMaxWeight: 0.05,
	}
}

// WithMaxWeight sets MaxWeight; w must lie in (0, 1].
func WithMaxWeight(w float64) Option {
	return func(o *Options) {
		if w <= 0 || w > 1 {
			o.err = fmt.Errorf("%w: MaxWeight must be in (0,1] (%g)", ErrOptionViolation, w)
			return
		}
		o.MaxWeight = w
	}
}

// WithMinWeight sets MinWeight; w must be non-negative.
func WithMinWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: MinWeight cannot be negative (%g)", ErrOptionViolation, w)
			return
		}
		o.MinWeight = w
	}
}

// WithPairMaxWeight sets PairMaxWeight; w must be non-negative.
func WithPairMaxWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: PairMaxWeight cannot be negative (%g)", ErrOptionViolation, w)
			return
		}
		o.PairMaxWeight = w
	}
}
