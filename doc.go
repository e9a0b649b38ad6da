// Package lvlseg is a confidence-bounded graph segmentation toolkit.
//
// A weighted undirected graph is partitioned by visiting edges in ascending
// weight order and merging the two segments an edge joins when its weight
// is below the confidence of both. A segment's confidence is the largest
// weight that attached one of its members plus a constant divided by its
// size, so small segments merge readily and large ones only across cheap
// edges.
//
// Packages:
//
//	edgestore/  validated, immutable edge list with a weight index
//	component/  arena of member chains with confidences and the vertex→segment map
//	segment/    the engine (sorted and bucket strategies) and the compacted Result
//	gridgraph/  intensity grids as 4- or 8-connected edge sources
//	builder/    reproducible path, cycle, star, complete, grid and random problems
//	graphio/    text and YAML problems in, text, JSON and YAML results out
//	store/      SQLite persistence of named problems and their runs
//	config/     viper configuration validated with struct tags
//	cmd/lvlseg  the command-line interface
//
// Quick ASCII example (constant 6):
//
//	0 ─1─ 1 ─1─ 2 ─9─ 3
//
// The two weight-1 edges merge {0,1,2} (confidence 1+6/3 = 3); the weight-9
// edge exceeds it, so 3 stays alone.
package lvlseg
