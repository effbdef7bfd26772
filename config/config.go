// Package config loads the tunables of a mazegraph build from YAML.
//
// Every value has a default, so an empty or missing file yields a working
// configuration. Environment variables override file values for the knobs
// most often adjusted when profiling large mazes.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazegraph/logger"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the top-level configuration document.
type Config struct {
	Refine    RefineConfig    `yaml:"refine"`
	Isolation IsolationConfig `yaml:"isolation"`
	Cycles    CyclesConfig    `yaml:"cycles"`
	Search    SearchConfig    `yaml:"search"`
	Logging   logger.Config   `yaml:"logging"`

	// Seed drives random loop selection. Zero picks the fixed default seed.
	Seed int64 `yaml:"seed"`
}

// RefineConfig holds region refinement settings.
type RefineConfig struct {
	MaxPasses             int  `yaml:"max_passes"`
	MergeMaxTouch         int  `yaml:"merge_max_touch"`
	MergeMaxTouchLarge    int  `yaml:"merge_max_touch_large"`
	MergeLargeRegionCells int  `yaml:"merge_large_region_cells"`
	ConsolidateCorners    bool `yaml:"consolidate_corners"`
	PromoteLoops          bool `yaml:"promote_loops"`
}

// IsolationConfig holds isolated-area thresholds, as shares of walkable cells.
type IsolationConfig struct {
	MaxWeight     float64 `yaml:"max_weight"`
	MinWeight     float64 `yaml:"min_weight"`
	PairMaxWeight float64 `yaml:"pair_max_weight"`
}

// CyclesConfig caps loop enumeration. LoopSearchLimit 0 disables it.
// StepLimit bounds the total search work on dense mazes.
type CyclesConfig struct {
	RecursionLimit  int `yaml:"recursion_limit"`
	LoopSearchLimit int `yaml:"loop_search_limit"`
	StepLimit       int `yaml:"step_limit"`
}

// SearchConfig bounds point-to-point search. MaxHops 0 means unbounded.
type SearchConfig struct {
	MaxHops int `yaml:"max_hops"`
}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		Refine: RefineConfig{
			MaxPasses:             8,
			MergeMaxTouch:         1,
			MergeMaxTouchLarge:    2,
			MergeLargeRegionCells: 3,
			ConsolidateCorners:    true,
			PromoteLoops:          true,
		},
		Isolation: IsolationConfig{
			MaxWeight:     0.25,
			MinWeight:     0.02,
			PairMaxWeight: 0.05,
		},
		Cycles: CyclesConfig{
			RecursionLimit:  64,
			LoopSearchLimit: 256,
			StepLimit:       1 << 18,
		},
		Search:  SearchConfig{MaxHops: 0},
		Logging: logger.DefaultConfig(),
		Seed:    0,
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides values from MAZEGRAPH_* and LOG_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("MAZEGRAPH_LOOP_SEARCH_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: MAZEGRAPH_LOOP_SEARCH_LIMIT: %w", err)
		}
		c.Cycles.LoopSearchLimit = n
	}

	if v := os.Getenv("MAZEGRAPH_RECURSION_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: MAZEGRAPH_RECURSION_LIMIT: %w", err)
		}
		c.Cycles.RecursionLimit = n
	}

	if v := os.Getenv("MAZEGRAPH_STEP_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: MAZEGRAPH_STEP_LIMIT: %w", err)
		}
		c.Cycles.StepLimit = n
	}

	if v := os.Getenv("MAZEGRAPH_ISOLATION_MAX_WEIGHT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: MAZEGRAPH_ISOLATION_MAX_WEIGHT: %w", err)
		}
		c.Isolation.MaxWeight = f
	}

	c.Logging.ApplyEnv()

	return nil
}

// Validate rejects values no build could use.
func (c *Config) Validate() error {
	switch {
	case c.Refine.MaxPasses < 1:
		return fmt.Errorf("%w: refine.max_passes must be ≥ 1, got %d", ErrInvalid, c.Refine.MaxPasses)
	case c.Refine.MergeMaxTouch < 0 || c.Refine.MergeMaxTouchLarge < 0:
		return fmt.Errorf("%w: refine merge touch limits must be non-negative", ErrInvalid)
	case c.Refine.MergeLargeRegionCells < 1:
		return fmt.Errorf("%w: refine.merge_large_region_cells must be ≥ 1", ErrInvalid)
	case c.Isolation.MaxWeight <= 0 || c.Isolation.MaxWeight > 1:
		return fmt.Errorf("%w: isolation.max_weight must be in (0,1], got %g", ErrInvalid, c.Isolation.MaxWeight)
	case c.Isolation.MinWeight < 0 || c.Isolation.MinWeight > c.Isolation.MaxWeight:
		return fmt.Errorf("%w: isolation.min_weight must be in [0,max_weight], got %g", ErrInvalid, c.Isolation.MinWeight)
	case c.Isolation.PairMaxWeight < 0:
		return fmt.Errorf("%w: isolation.pair_max_weight must be non-negative", ErrInvalid)
	case c.Cycles.RecursionLimit < 1:
		return fmt.Errorf("%w: cycles.recursion_limit must be ≥ 1, got %d", ErrInvalid, c.Cycles.RecursionLimit)
	case c.Cycles.LoopSearchLimit < 0:
		return fmt.Errorf("%w: cycles.loop_search_limit must be non-negative", ErrInvalid)
	case c.Cycles.StepLimit < 1:
		return fmt.Errorf("%w: cycles.step_limit must be ≥ 1, got %d", ErrInvalid, c.Cycles.StepLimit)
	case c.Search.MaxHops < 0:
		return fmt.Errorf("%w: search.max_hops must be non-negative", ErrInvalid)
	}

	return nil
}
