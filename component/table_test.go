package component_test

import (
	"testing"

	"github.com/katalvlaran/lvlseg/component"
	"github.com/katalvlaran/lvlseg/edgestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTable_Singletons checks the initial state: one member per component,
// AttachWeight 0, confidence == constant.
func TestNewTable_Singletons(t *testing.T) {
	tbl := component.NewTable(4, 7)
	require.Equal(t, 4, tbl.VertexCount())
	assert.Equal(t, int64(7), tbl.Constant())
	assert.Zero(t, tbl.Merges())

	for v := 0; v < 4; v++ {
		id := tbl.Find(v)
		assert.Equal(t, component.ID(v), id)
		assert.Equal(t, 1, tbl.Size(id))
		assert.Equal(t, int64(7), tbl.Confidence(id))
		assert.Equal(t, []component.Member{{Vertex: v, AttachWeight: 0}}, tbl.Members(id))
	}
	assert.False(t, tbl.Same(0, 1))
	assert.True(t, tbl.Same(2, 2))
}

// TestNewTable_Empty checks degenerate sizes.
func TestNewTable_Empty(t *testing.T) {
	for _, n := range []int{0, -3} {
		tbl := component.NewTable(n, 1)
		assert.Equal(t, 0, tbl.VertexCount())
		assert.Equal(t, component.None, tbl.Find(0))
		assert.False(t, tbl.Same(0, 0))
	}
}

// TestConfidence covers the formula maxAttachWeight + constant/size.
func TestConfidence(t *testing.T) {
	cases := []struct {
		name     string
		members  []component.Member
		constant int64
		want     int64
	}{
		{"empty chain", nil, 9, 9},
		{"singleton", []component.Member{{Vertex: 0}}, 10, 10},
		{"floor division", []component.Member{{Vertex: 0}, {Vertex: 1, AttachWeight: 2}, {Vertex: 2, AttachWeight: 3}}, 10, 3 + 10/3},
		{"max not last", []component.Member{{Vertex: 0}, {Vertex: 1, AttachWeight: 8}, {Vertex: 2, AttachWeight: 1}}, 1, 8},
		{"zero constant", []component.Member{{Vertex: 0}, {Vertex: 1, AttachWeight: 4}}, 0, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, component.Confidence(tc.members, tc.constant))
		})
	}
}

// TestDissimilarity checks the single-edge rule and the Infinity sentinel.
func TestDissimilarity(t *testing.T) {
	a := []component.Member{{Vertex: 0}, {Vertex: 3, AttachWeight: 1}}
	b := []component.Member{{Vertex: 1}}

	assert.Equal(t, int64(5), component.Dissimilarity(edgestore.NewEdge(0, 1, 5), a, b))
	assert.Equal(t, component.Infinity, component.Dissimilarity(edgestore.NewEdge(0, 1, 0), a, b))
	assert.Equal(t, component.Infinity, component.Dissimilarity(edgestore.NewEdge(0, 1, 5), nil, b))
	assert.Equal(t, component.Infinity, component.Dissimilarity(edgestore.NewEdge(0, 1, 5), a, nil))

	// The members never change the answer: only the edge is measured.
	big := []component.Member{{Vertex: 1}, {Vertex: 2, AttachWeight: 1}, {Vertex: 4, AttachWeight: 1}}
	assert.Equal(t, int64(5), component.Dissimilarity(edgestore.NewEdge(3, 4, 5), a, big))
}

// TestMerge_AppendsAndRepoints walks through two merges, including a
// transitive one, and checks chain order, attach weights, confidence and
// the representative mapping.
func TestMerge_AppendsAndRepoints(t *testing.T) {
	tbl := component.NewTable(5, 10)

	// {3} <- {4} with weight 6
	require.True(t, tbl.Merge(tbl.Find(3), tbl.Find(4), 6))
	assert.Equal(t, []int{3, 4}, tbl.Vertices(tbl.Find(3)))
	assert.Equal(t, int64(6+10/2), tbl.Confidence(tbl.Find(4)))

	// {0} <- {3,4} with weight 2: only the first appended member takes weight 2.
	require.True(t, tbl.Merge(tbl.Find(0), tbl.Find(4), 2))
	id := tbl.Find(0)
	assert.Equal(t, []component.Member{
		{Vertex: 0, AttachWeight: 0},
		{Vertex: 3, AttachWeight: 2},
		{Vertex: 4, AttachWeight: 6},
	}, tbl.Members(id))
	assert.Equal(t, int64(6+10/3), tbl.Confidence(id))

	for _, v := range []int{0, 3, 4} {
		assert.Equal(t, id, tbl.Find(v), "vertex %d", v)
	}
	assert.True(t, tbl.Same(3, 0))
	assert.False(t, tbl.Same(1, 0))

	// Absorbed slots are dead.
	assert.False(t, tbl.Alive(component.ID(3)))
	assert.Zero(t, tbl.Size(component.ID(3)))
	assert.Nil(t, tbl.Members(component.ID(3)))
	assert.Equal(t, 2, tbl.Merges())
}

// TestMerge_NoOps checks that invalid merges report false and leave state intact.
func TestMerge_NoOps(t *testing.T) {
	tbl := component.NewTable(3, 4)
	require.True(t, tbl.Merge(0, 1, 1))

	assert.False(t, tbl.Merge(0, 0, 1), "self merge")
	assert.False(t, tbl.Merge(0, 1, 1), "absorbed destination")
	assert.False(t, tbl.Merge(1, 2, 1), "absorbed origin")
	assert.False(t, tbl.Merge(0, 9, 1), "out of range")
	assert.False(t, tbl.Merge(component.None, 2, 1), "none")

	assert.Equal(t, 1, tbl.Merges())
	assert.Equal(t, []int{0, 1}, tbl.Vertices(0))
	assert.Equal(t, []int{2}, tbl.Vertices(2))
}

// TestTable_Dissimilarity checks the table wrapper against live and dead IDs.
func TestTable_Dissimilarity(t *testing.T) {
	tbl := component.NewTable(3, 4)
	e := edgestore.NewEdge(0, 2, 3)
	assert.Equal(t, int64(3), tbl.Dissimilarity(e, 0, 2))

	require.True(t, tbl.Merge(0, 2, 3))
	assert.Equal(t, component.Infinity, tbl.Dissimilarity(e, 0, 2))
}
