package component

import "github.com/katalvlaran/lvlseg/edgestore"

// Table owns every component of one segmentation run and the vertex to
// component mapping.
type Table struct {
	constant int64
	comps    []component // arena; index == ID
	rep      []ID        // vertex -> owning component
	merges   int
}

// NewTable creates vertexCount singleton components. Vertex v starts in
// component ID(v) with a single Member{v, 0} and confidence == constant.
// A non-positive vertexCount yields an empty table.
// Complexity: O(V).
func NewTable(vertexCount int, constant int64) *Table {
	if vertexCount < 0 {
		vertexCount = 0
	}
	t := &Table{
		constant: constant,
		comps:    make([]component, vertexCount),
		rep:      make([]ID, vertexCount),
	}
	for v := 0; v < vertexCount; v++ {
		t.comps[v] = component{
			members:    []Member{{Vertex: v, AttachWeight: 0}},
			confidence: constant,
		}
		t.rep[v] = ID(v)
	}

	return t
}

// VertexCount returns the number of vertices tracked by the table.
func (t *Table) VertexCount() int {
	return len(t.rep)
}

// Constant returns the confidence constant the table was created with.
func (t *Table) Constant() int64 {
	return t.constant
}

// Merges returns how many successful merges the table has performed.
func (t *Table) Merges() int {
	return t.merges
}

// Find returns the component currently containing vertex v, or None when v
// is out of range.
func (t *Table) Find(v int) ID {
	if v < 0 || v >= len(t.rep) {
		return None
	}

	return t.rep[v]
}

// Same reports whether u and v belong to the same component.
func (t *Table) Same(u, v int) bool {
	cu := t.Find(u)

	return cu != None && cu == t.Find(v)
}

// Alive reports whether id names a component that has not been absorbed.
func (t *Table) Alive(id ID) bool {
	return id >= 0 && int(id) < len(t.comps) && len(t.comps[id].members) > 0
}

// Size returns the number of members of component id (0 when absorbed).
func (t *Table) Size(id ID) int {
	if !t.Alive(id) {
		return 0
	}

	return len(t.comps[id].members)
}

// Confidence returns the stored confidence of component id. Every member of
// the component shares this value.
func (t *Table) Confidence(id ID) int64 {
	if !t.Alive(id) {
		return 0
	}

	return t.comps[id].confidence
}

// Members returns a copy of the member chain of component id, origin first.
func (t *Table) Members(id ID) []Member {
	if !t.Alive(id) {
		return nil
	}
	out := make([]Member, len(t.comps[id].members))
	copy(out, t.comps[id].members)

	return out
}

// Vertices returns the vertex ids of component id in chain order.
func (t *Table) Vertices(id ID) []int {
	if !t.Alive(id) {
		return nil
	}
	out := make([]int, len(t.comps[id].members))
	for i, m := range t.comps[id].members {
		out[i] = m.Vertex
	}

	return out
}

// Dissimilarity measures components a and b through edge e.
// See the package-level Dissimilarity for the rule.
func (t *Table) Dissimilarity(e edgestore.Edge, a, b ID) int64 {
	var am, bm []Member
	if t.Alive(a) {
		am = t.comps[a].members
	}
	if t.Alive(b) {
		bm = t.comps[b].members
	}

	return Dissimilarity(e, am, bm)
}

// Merge appends the chain of destination to the tail of origin's chain.
//
// Steps:
//  1. The first appended member takes AttachWeight = weight; the rest keep theirs.
//  2. Confidence is recomputed over the full combined chain.
//  3. Every vertex previously owned by destination now maps to origin.
//  4. The destination slot is emptied.
//
// Merge returns false, changing nothing, when origin == destination or either
// ID does not name a live component.
// Complexity: O(|origin| + |destination|).
func (t *Table) Merge(origin, destination ID, weight int64) bool {
	if origin == destination || !t.Alive(origin) || !t.Alive(destination) {
		return false
	}

	o := &t.comps[origin]
	d := &t.comps[destination]

	head := len(o.members)
	o.members = append(o.members, d.members...)
	o.members[head].AttachWeight = weight
	o.confidence = Confidence(o.members, t.constant)

	for _, m := range o.members[head:] {
		t.rep[m.Vertex] = origin
	}

	d.members = nil
	d.confidence = 0
	t.merges++

	return true
}
