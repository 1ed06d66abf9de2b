package gomap

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultMaxDepth       = 3
	MinMaxDepth           = 1
	MaxMaxDepth           = 10
	DefaultRecursionLimit = 1000
)

// MapOption is an option for controlling the mapping from Go values to
// tagged items.
type MapOption func(*mapConfig)

type mapConfig struct {
	maxDepth       int
	recursionLimit int
}

func newMapConfig(opts ...MapOption) *mapConfig {
	cfg := &mapConfig{
		maxDepth:       DefaultMaxDepth,
		recursionLimit: DefaultRecursionLimit,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// MaxDepth bounds the mapping levels any top-level key may consume. It must
// lie in [1, 10].
func MaxDepth(n int) MapOption {
	return func(c *mapConfig) { c.maxDepth = n }
}

// RecursionLimit bounds the total nesting of maps and lists. Values below 1
// select DefaultRecursionLimit.
func RecursionLimit(n int) MapOption {
	return func(c *mapConfig) {
		if n < 1 {
			n = DefaultRecursionLimit
		}
		c.recursionLimit = n
	}
}

func (c *mapConfig) validate() error {
	if c.maxDepth < MinMaxDepth || c.maxDepth > MaxMaxDepth {
		return depthBoundError(c.maxDepth)
	}
	return nil
}

// ParseMaxDepth reads a depth bound from text, e.g. a flag or config value.
func ParseMaxDepth(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, depthBoundError(strconv.Quote(s))
	}
	if n < MinMaxDepth || n > MaxMaxDepth {
		return 0, depthBoundError(n)
	}
	return n, nil
}

func depthBoundError(got any) error {
	return &MarshalError{
		Message: fmt.Sprintf("expected an integer between %d and %d inclusive for max depth, got %v", MinMaxDepth, MaxMaxDepth, got),
		Err:     ErrInvalidDepthBound,
	}
}
