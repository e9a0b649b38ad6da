// Package builder generates segmentation problems with well-known topologies.
//
// What:
//
//	Constructors (Path, Cycle, Star, Complete, Grid, RandomSparse) produce a
//	vertex count and an edge list; Build validates them into an
//	edgestore.Store. Edge weights come from a WeightFn, optionally driven by
//	a seeded *rand.Rand, so every fixture is reproducible.
//
// Why:
//
//	Benchmarks, property tests and the "lvlseg generate" command need graphs
//	of a chosen shape and size without hand-writing edge lists.
//
// Determinism:
//
//	Vertices are numbered 0..n-1. Edges are emitted in a fixed, documented
//	order per constructor, so equal options and seed give an identical store.
//
// Errors:
//
//   - ErrTooFewVertices:     a size parameter is below the constructor minimum.
//   - ErrInvalidProbability: RandomSparse p outside [0,1].
//   - ErrNeedRandSource:     a stochastic choice has no RNG (use WithSeed).
//   - ErrUnknownTopology:    ByName got an unrecognized name.
//
// Option constructors panic on meaningless values (nil RNG, negative weight).
package builder
