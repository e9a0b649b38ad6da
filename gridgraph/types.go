// Package gridgraph defines core types, options, and sentinel errors
// for turning grids into segmentation inputs.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeBaseWeight indicates GridOptions.BaseWeight is negative.
	ErrNegativeBaseWeight = errors.New("gridgraph: base weight must be non-negative")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for edge generation.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// BaseWeight is added to every |a-b| so that equal neighbours still get a
	// positive, mergeable edge.
	BaseWeight int64
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn=Conn4, BaseWeight=1.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:       Conn4,
		BaseWeight: 1,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// forwardOffsets lists the neighbours each cell links to so that every
// undirected pair is emitted once.
type GridGraph struct {
	Width, Height  int
	CellValues     [][]int
	Conn           Connectivity
	BaseWeight     int64
	forwardOffsets [][2]int
}
