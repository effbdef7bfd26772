package mazegraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazegraph/config"
)

// Sentinel errors returned by BuildGraph and Model queries.
var (
	// ErrGridNil is returned when BuildGraph receives a nil grid.
	ErrGridNil = errors.New("mazegraph: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mazegraph: invalid option supplied")

	// ErrInconsistent marks an internal contradiction found during a build.
	// The grid keeps its previous annotations; rerun the build after fixing
	// the input.
	ErrInconsistent = errors.New("mazegraph: inconsistent build")

	// ErrNoPath is returned by FindPath and FindCellPath when no route exists.
	ErrNoPath = errors.New("mazegraph: no path")

	// ErrNoLoop is returned when a loop index is out of range or the maze
	// has no loops.
	ErrNoLoop = errors.New("mazegraph: no loop")

	// ErrUnknownNode is returned when a node id is not part of the model.
	ErrUnknownNode = errors.New("mazegraph: unknown node")
)

// Option configures BuildGraph.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*options)

type options struct {
	cfg config.Config
	err error
}

// WithConfig replaces every tunable with cfg. Later options still override
// individual values.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		if cfg == nil {
			o.err = fmt.Errorf("%w: config is nil", ErrOptionViolation)
			return
		}
		o.cfg = *cfg
	}
}

// WithSeed seeds random loop and area selection. Zero selects the fixed
// default seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.cfg.Seed = seed
	}
}

// WithLoopSearchLimit caps the number of enumerated loops.
func WithLoopSearchLimit(n int) Option {
	return func(o *options) {
		o.cfg.Cycles.LoopSearchLimit = n
	}
}

// WithRecursionLimit caps the number of edges on a loop.
func WithRecursionLimit(n int) Option {
	return func(o *options) {
		o.cfg.Cycles.RecursionLimit = n
	}
}

// WithStepLimit caps the total work of loop enumeration.
func WithStepLimit(n int) Option {
	return func(o *options) {
		o.cfg.Cycles.StepLimit = n
	}
}

// WithIsolationMaxWeight sets the weight cap of isolated-area sets.
func WithIsolationMaxWeight(w float64) Option {
	return func(o *options) {
		o.cfg.Isolation.MaxWeight = w
	}
}
