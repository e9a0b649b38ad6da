package gridgraph

import (
	"github.com/katalvlaran/lvlseg/edgestore"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeBaseWeight if opts.BaseWeight < 0.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.BaseWeight < 0 {
		return nil, ErrNegativeBaseWeight
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Forward half of the neighbourhood: E, S (and SW, SE for Conn8).
	offsets := [][2]int{{1, 0}, {0, 1}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	}
	gg := &GridGraph{
		Width:          w,
		Height:         h,
		CellValues:     cells,
		Conn:           opts.Conn,
		BaseWeight:     opts.BaseWeight,
		forwardOffsets: offsets,
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// VertexCount returns Width×Height.
func (gg *GridGraph) VertexCount() int {
	return gg.Width * gg.Height
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Edges returns one edge per neighbouring cell pair, scanning cells in
// row-major order and, per cell, the forward offsets in fixed order.
// Weight = |value(a) - value(b)| + BaseWeight.
// Complexity: O(W×H×d).
func (gg *GridGraph) Edges() []edgestore.Edge {
	edges := make([]edgestore.Edge, 0, gg.VertexCount()*len(gg.forwardOffsets))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := gg.Index(x, y)
			for _, d := range gg.forwardOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				diff := int64(gg.CellValues[y][x] - gg.CellValues[ny][nx])
				if diff < 0 {
					diff = -diff
				}
				edges = append(edges, edgestore.NewEdge(u, gg.Index(nx, ny), diff+gg.BaseWeight))
			}
		}
	}

	return edges
}

// Store builds the validated edge store for the grid.
func (gg *GridGraph) Store() (*edgestore.Store, error) {
	return edgestore.New(gg.VertexCount(), gg.Edges())
}
