// Package region provides options, result types and sentinel errors for
// region assembly and refinement over a gridgraph.Grid.
package region

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazegraph/gridgraph"
)

// Sentinel errors for region builds.
var (
	// ErrGridNil is returned when a nil grid is passed to Build.
	ErrGridNil = errors.New("region: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("region: invalid option supplied")

	// ErrInconsistent is returned when the finished set breaks a partition
	// or junction invariant.
	ErrInconsistent = errors.New("region: inconsistent region set")
)

// Region is a maximal connected set of same-state cells after refinement.
type Region struct {
	ID    int
	State gridgraph.State
	// All holds every cell of the region in ascending id order, ends included.
	All []int
	// Ends holds the locked junction cells bounding the region.
	Ends []int
	// DeadEnds holds degree-1 cells. They never appear in Ends.
	DeadEnds []int
	// Loop is set on simple rings whose corners were promoted to ends.
	Loop bool
}

// Set is the output of Build. Membership, Locked and DeadEnd are indexed by
// cell id.
type Set struct {
	Regions    []Region
	Membership [][]int
	Locked     []bool
	DeadEnd    []bool
	// Walkable is the number of walkable cells in the grid.
	Walkable int
	// Passes is the number of assemble/refine rounds that ran.
	Passes int
}

// Region returns the region with the given id.
func (s *Set) Region(id int) (*Region, bool) {
	if s == nil || id < 0 || id >= len(s.Regions) {
		return nil, false
	}
	return &s.Regions[id], true
}

// Option configures Build.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Build.
type Option func(*Options)

// Options holds the refinement policy.
type Options struct {
	// MaxPasses caps assemble/refine rounds.
	MaxPasses int

	// A merge candidate may be unlocked when it touches each region it bounds
	// through at most MergeMaxTouch cells, or MergeMaxTouchLarge cells when
	// that region has at least MergeLargeRegionCells cells.
	MergeMaxTouch         int
	MergeMaxTouchLarge    int
	MergeLargeRegionCells int

	// Consolidate merges diagonal internal-corner regions.
	Consolidate bool

	// PromoteLoops turns simple rings into loop regions.
	PromoteLoops bool

	err error
}

// DefaultOptions returns the policy used by a plain Build call.
func DefaultOptions() Options {
	return Options{
		MaxPasses:             8,
		MergeMaxTouch:         1,
		MergeMaxTouchLarge:    2,
		MergeLargeRegionCells: 3,
		Consolidate:           true,
		PromoteLoops:          true,
	}
}

// WithMaxPasses caps the number of refinement rounds. n must be ≥ 1.
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxPasses must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPasses = n
	}
}

// WithMergeThresholds sets the touch limits of merge eligibility. Zero
// touch limits disable merging altogether.
func WithMergeThresholds(touch, touchLarge, largeCells int) Option {
	return func(o *Options) {
		if touch < 0 || touchLarge < 0 || largeCells < 1 {
			o.err = fmt.Errorf("%w: merge thresholds (%d, %d, %d)", ErrOptionViolation, touch, touchLarge, largeCells)
			return
		}
		o.MergeMaxTouch = touch
		o.MergeMaxTouchLarge = touchLarge
		o.MergeLargeRegionCells = largeCells
	}
}

// WithConsolidate toggles internal-corner consolidation.
func WithConsolidate(on bool) Option {
	return func(o *Options) { o.Consolidate = on }
}

// WithPromoteLoops toggles loop-region promotion.
func WithPromoteLoops(on bool) Option {
	return func(o *Options) { o.PromoteLoops = on }
}
