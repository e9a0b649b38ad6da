package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvlseg/edgestore"
	"github.com/katalvlaran/lvlseg/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty, ragged or
// badly configured inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	negative := gridgraph.DefaultGridOptions()
	negative.BaseWeight = -1

	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"NegativeBase", [][]int{{1}}, negative, gridgraph.ErrNegativeBaseWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds, Index and Coordinate on a 3×2 grid.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
		x, y := gg.Coordinate(gg.Index(xy[0], xy[1]))
		if x != xy[0] || y != xy[1] {
			t.Errorf("Coordinate(Index(%d,%d)) = (%d,%d)", xy[0], xy[1], x, y)
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
	if gg.VertexCount() != 6 {
		t.Errorf("VertexCount = %d; want 6", gg.VertexCount())
	}
}

// TestNewGridGraph_DeepCopy ensures later writes to the input do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 2}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatal(err)
	}
	grid[0][0] = 99
	if gg.CellValues[0][0] != 1 {
		t.Errorf("CellValues[0][0] = %d; want 1", gg.CellValues[0][0])
	}
}

//----------------------------------------------------------------------------//
// Edge generation
//----------------------------------------------------------------------------//

// TestEdges_Conn4AndConn8 checks weights, orientation and emission order on a 2×2 grid:
//
//	1 3
//	4 4
func TestEdges_Conn4AndConn8(t *testing.T) {
	grid := [][]int{
		{1, 3},
		{4, 4},
	}
	cases := []struct {
		name string
		conn gridgraph.Connectivity
		want []edgestore.Edge
	}{
		{"Conn4", gridgraph.Conn4, []edgestore.Edge{
			{Origin: 0, Destination: 1, Weight: 3},
			{Origin: 0, Destination: 2, Weight: 4},
			{Origin: 1, Destination: 3, Weight: 2},
			{Origin: 2, Destination: 3, Weight: 1},
		}},
		{"Conn8", gridgraph.Conn8, []edgestore.Edge{
			{Origin: 0, Destination: 1, Weight: 3},
			{Origin: 0, Destination: 2, Weight: 4},
			{Origin: 0, Destination: 3, Weight: 4},
			{Origin: 1, Destination: 2, Weight: 2},
			{Origin: 1, Destination: 3, Weight: 2},
			{Origin: 2, Destination: 3, Weight: 1},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := gridgraph.DefaultGridOptions()
			opts.Conn = tc.conn
			gg, err := gridgraph.NewGridGraph(grid, opts)
			if err != nil {
				t.Fatal(err)
			}
			if got := gg.Edges(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Edges() = %v; want %v", got, tc.want)
			}

			s, err := gg.Store()
			if err != nil {
				t.Fatalf("Store() error: %v", err)
			}
			if s.VertexCount() != 4 || s.Len() != len(tc.want) {
				t.Errorf("Store() = %d vertices, %d edges", s.VertexCount(), s.Len())
			}
		})
	}
}

// TestEdges_SingleCell has no neighbours and therefore no edges.
func TestEdges_SingleCell(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{7}}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatal(err)
	}
	if n := len(gg.Edges()); n != 0 {
		t.Errorf("got %d edges; want 0", n)
	}
}
