package segment

import (
	"fmt"

	"github.com/katalvlaran/lvlseg/component"
	"github.com/katalvlaran/lvlseg/edgestore"
	"go.uber.org/zap"
)

// Segment runs the segmentation over store and returns the compacted result.
//
// Preconditions and validation (in order):
//  1. store must be non-nil (ErrNilStore).
//  2. Constant must be ≥ 0 (wrapped edgestore.ErrNegativeWeight).
//
// Edge validation already happened in edgestore.New, so nothing inside the
// merge loop can fail. A store with zero vertices yields an empty result.
func Segment(store *edgestore.Store, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if store == nil {
		return nil, ErrNilStore
	}
	if cfg.Constant < 0 {
		return nil, fmt.Errorf("%w: constant=%d", edgestore.ErrNegativeWeight, cfg.Constant)
	}

	r := &runner{
		store: store,
		table: component.NewTable(store.VertexCount(), cfg.Constant),
		opts:  cfg,
		log:   cfg.Logger.With(zap.String("strategy", cfg.Strategy.String())),
	}
	r.process()

	res := &Result{
		VertexCount: store.VertexCount(),
		Constant:    cfg.Constant,
		Merges:      r.table.Merges(),
		Components:  compact(r.table),
	}
	r.log.Info("segmentation finished",
		zap.Int("vertices", res.VertexCount),
		zap.Int("edges", store.Len()),
		zap.Int64("constant", res.Constant),
		zap.Int("merges", res.Merges),
		zap.Int("components", res.Len()),
	)

	return res, nil
}

// runner holds the mutable state of one Segment call.
type runner struct {
	store *edgestore.Store
	table *component.Table
	opts  Options
	log   *zap.Logger
}

// process feeds every edge to consider in ascending weight order.
func (r *runner) process() {
	switch r.opts.Strategy {
	case StrategyBuckets:
		// Thresholds with no edges contribute nothing, so only the populated
		// buckets are visited; the order is the same as 0..MaxWeight.
		for _, w := range r.store.Weights() {
			for _, e := range r.store.AtWeight(w) {
				r.consider(e)
			}
		}
	default:
		for _, e := range r.store.SortedByWeight() {
			r.consider(e)
		}
	}
}

// consider applies the merge rule to a single edge.
func (r *runner) consider(e edgestore.Edge) {
	a := r.table.Find(e.Origin)
	b := r.table.Find(e.Destination)
	if a == b {
		// Already joined, directly or through earlier merges.
		return
	}

	d := r.table.Dissimilarity(e, a, b)
	if e.Weight == 0 || d >= r.table.Confidence(a) || d >= r.table.Confidence(b) {
		return
	}

	r.table.Merge(a, b, e.Weight)

	ev := MergeEvent{
		Edge:          e,
		Origin:        a,
		Destination:   b,
		Dissimilarity: d,
		Confidence:    r.table.Confidence(a),
		Size:          r.table.Size(a),
	}
	if ce := r.log.Check(zap.DebugLevel, "merge"); ce != nil {
		ce.Write(
			zap.Int("origin", e.Origin),
			zap.Int("destination", e.Destination),
			zap.Int64("weight", e.Weight),
			zap.Int64("confidence", ev.Confidence),
			zap.Int("size", ev.Size),
		)
	}
	if r.opts.OnMerge != nil {
		r.opts.OnMerge(ev)
	}
}
