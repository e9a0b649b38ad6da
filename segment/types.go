// Package segment defines the options, result types and sentinel errors of
// the segmentation engine.
package segment

import (
	"errors"

	"github.com/katalvlaran/lvlseg/component"
	"github.com/katalvlaran/lvlseg/edgestore"
	"go.uber.org/zap"
)

// ErrNilStore indicates that Segment was called without an edge store.
var ErrNilStore = errors.New("segment: edge store is nil")

// Strategy selects how edges are visited in ascending weight order.
// Both strategies produce identical merge decisions.
type Strategy int

const (
	// StrategySorted stable-sorts the edges by weight and makes one pass.
	// Time O(E log E).
	StrategySorted Strategy = iota

	// StrategyBuckets scans thresholds 0..MaxWeight and, for each threshold,
	// the edges of exactly that weight in input order. Empty thresholds are
	// skipped through the store's weight index.
	StrategyBuckets
)

// String returns the lower-case name used in configuration files.
func (s Strategy) String() string {
	switch s {
	case StrategySorted:
		return "sorted"
	case StrategyBuckets:
		return "buckets"
	default:
		return "unknown"
	}
}

// ParseStrategy maps "sorted" or "buckets" to a Strategy.
func ParseStrategy(name string) (Strategy, bool) {
	switch name {
	case "sorted", "":
		return StrategySorted, true
	case "buckets":
		return StrategyBuckets, true
	default:
		return StrategySorted, false
	}
}

// MergeEvent describes one successful merge, reported to the OnMerge hook.
type MergeEvent struct {
	Edge          edgestore.Edge // edge that triggered the merge
	Origin        component.ID   // surviving component
	Destination   component.ID   // absorbed component
	Dissimilarity int64          // value compared against both confidences
	Confidence    int64          // confidence of the merged component
	Size          int            // member count of the merged component
}

// Options configures Segment.
//
// Constant – the confidence constant c; must be ≥ 0.
// Strategy – edge visiting order implementation (default StrategySorted).
// Logger   – structured logger; merges at Debug, summary at Info.
// OnMerge  – optional hook called after every successful merge.
type Options struct {
	Constant int64
	Strategy Strategy
	Logger   *zap.Logger
	OnMerge  func(MergeEvent)
}

// Option is a functional option for Segment.
type Option func(*Options)

// WithConstant sets the confidence constant.
// A negative constant is reported by Segment as edgestore.ErrNegativeWeight.
func WithConstant(c int64) Option {
	return func(o *Options) {
		o.Constant = c
	}
}

// WithStrategy selects the edge visiting strategy.
// Panics on an unknown Strategy value.
func WithStrategy(s Strategy) Option {
	if s != StrategySorted && s != StrategyBuckets {
		panic("segment: WithStrategy(unknown)")
	}
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithLogger attaches a zap logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("segment: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnMerge registers a hook invoked after each merge. Panics on nil.
func WithOnMerge(fn func(MergeEvent)) Option {
	if fn == nil {
		panic("segment: WithOnMerge(nil)")
	}
	return func(o *Options) {
		o.OnMerge = fn
	}
}

// DefaultOptions returns Constant=0, StrategySorted, a no-op logger and no hook.
func DefaultOptions() Options {
	return Options{
		Constant: 0,
		Strategy: StrategySorted,
		Logger:   zap.NewNop(),
	}
}

// Component is one emitted segment.
type Component struct {
	Members    []component.Member // chain order, origin first
	Confidence int64              // shared by every member
}

// Vertices returns the member vertex ids in chain order.
func (c Component) Vertices() []int {
	out := make([]int, len(c.Members))
	for i, m := range c.Members {
		out[i] = m.Vertex
	}

	return out
}

// Result is the outcome of a segmentation run.
type Result struct {
	VertexCount int
	Constant    int64
	Merges      int
	Components  []Component // ordered by lowest member vertex id
}

// Len returns the number of components.
func (r *Result) Len() int {
	return len(r.Components)
}

// Partition returns the member vertex ids of every component, in output order.
func (r *Result) Partition() [][]int {
	out := make([][]int, len(r.Components))
	for i, c := range r.Components {
		out[i] = c.Vertices()
	}

	return out
}

// Labels maps each vertex to the index of its component in Components.
func (r *Result) Labels() []int {
	labels := make([]int, r.VertexCount)
	for i, c := range r.Components {
		for _, m := range c.Members {
			labels[m.Vertex] = i
		}
	}

	return labels
}
