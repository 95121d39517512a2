package hashmap

import (
	"math/bits"

	"github.com/molecula/coffer/errors"
	"github.com/molecula/coffer/logger"
)

// Defaults for the construction-time knobs. All of them can be overridden
// per map with the With* options.
const (
	DefaultCapacity           = 16
	DefaultLoadFactor         = 0.75
	DefaultTreeifyThreshold   = 8
	DefaultUntreeifyThreshold = 6
	DefaultMinTreeifyCapacity = 64
)

// Config holds the resolved construction-time knobs of a Map. There is no
// module-level mutable state: every map carries its own copy.
type Config struct {
	// InitialCapacity is rounded up to the next power of two.
	InitialCapacity int

	// LoadFactor is the size/capacity ratio which triggers a grow after
	// an insert. Must be in (0, 1].
	LoadFactor float64

	// TreeifyThreshold is the chain length at which a bucket escalates
	// to a tree, provided the bucket array has reached
	// MinTreeifyCapacity; below that the table grows instead.
	TreeifyThreshold int

	// UntreeifyThreshold is the population at or below which a tree
	// bucket reverts to a chain during a grow-driven split. Must be
	// less than TreeifyThreshold.
	UntreeifyThreshold int

	// MinTreeifyCapacity guards against escalating buckets in tables
	// small enough that growing is the better fix.
	MinTreeifyCapacity int

	Logger logger.Logger
}

// DefaultConfig returns the default knobs.
func DefaultConfig() Config {
	return Config{
		InitialCapacity:    DefaultCapacity,
		LoadFactor:         DefaultLoadFactor,
		TreeifyThreshold:   DefaultTreeifyThreshold,
		UntreeifyThreshold: DefaultUntreeifyThreshold,
		MinTreeifyCapacity: DefaultMinTreeifyCapacity,
		Logger:             logger.NopLogger,
	}
}

func (c Config) validate() error {
	if c.InitialCapacity < 0 {
		return errors.Newf(errors.InvalidConfiguration, "initial capacity %d is negative", c.InitialCapacity)
	}
	if c.LoadFactor <= 0 || c.LoadFactor > 1 {
		return errors.Newf(errors.InvalidConfiguration, "load factor %v outside (0,1]", c.LoadFactor)
	}
	if c.TreeifyThreshold < 2 {
		return errors.Newf(errors.InvalidConfiguration, "treeify threshold %d below 2", c.TreeifyThreshold)
	}
	if c.UntreeifyThreshold < 1 || c.UntreeifyThreshold >= c.TreeifyThreshold {
		return errors.Newf(errors.InvalidConfiguration, "untreeify threshold %d must be in [1,%d)", c.UntreeifyThreshold, c.TreeifyThreshold)
	}
	if c.MinTreeifyCapacity < 1 {
		return errors.Newf(errors.InvalidConfiguration, "min treeify capacity %d below 1", c.MinTreeifyCapacity)
	}
	return nil
}

// Option configures a Map at construction time.
type Option func(*Config)

// WithInitialCapacity sets the initial bucket array size; it is rounded
// up to the next power of two.
func WithInitialCapacity(n int) Option {
	return func(c *Config) { c.InitialCapacity = n }
}

// WithLoadFactor sets the grow trigger ratio.
func WithLoadFactor(f float64) Option {
	return func(c *Config) { c.LoadFactor = f }
}

// WithTreeifyThresholds sets the chain length that escalates a bucket and
// the split population that de-escalates one.
func WithTreeifyThresholds(treeify, untreeify int) Option {
	return func(c *Config) {
		c.TreeifyThreshold = treeify
		c.UntreeifyThreshold = untreeify
	}
}

// WithMinTreeifyCapacity sets the bucket-array capacity below which a
// long chain grows the table instead of escalating.
func WithMinTreeifyCapacity(n int) Option {
	return func(c *Config) { c.MinTreeifyCapacity = n }
}

// WithLogger sets the logger used for debug output on grows and bucket
// state transitions.
func WithLogger(log logger.Logger) Option {
	return func(c *Config) { c.Logger = log }
}

// nextPow2 rounds n up to the next power of two; capacities below 1 clamp
// to 1 so the bucket mask stays valid.
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
