// Package dijkstra defines configuration options and sentinel errors for the
// objective-wise shortest-path search.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil graph or index was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source (or target) vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates a negative or NaN cost component on some edge.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadObjective indicates an objective index outside [0, d).
	ErrBadObjective = errors.New("dijkstra: objective index out of range")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the search.
//
// Source           – starting vertex ID (must be non-empty and present).
// Objective        – which cost component is minimized (default 0).
// ReturnPath       – if true, return the predecessor map.
// MaxDistance      – vertices farther than this are not explored. Default +Inf.
// InfEdgeThreshold – edges whose objective cost is ≥ this are impassable. Default +Inf.
type Options struct {
	Source           string
	Objective        int
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// Objective selects the cost component to minimize. Panics if k < 0; an index
// beyond the graph dimension is reported as ErrBadObjective by Dijkstra.
func Objective(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("%s: got %d", ErrBadObjective.Error(), k))
	}
	return func(o *Options) {
		o.Objective = k
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Panics on negative or NaN values.
func WithMaxDistance(max float64) Option {
	if !(max >= 0) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks edges whose objective cost is ≥ threshold as impassable.
// Panics on zero, negative or NaN thresholds.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		Objective:        0,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
