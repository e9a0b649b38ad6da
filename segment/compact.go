package segment

import "github.com/katalvlaran/lvlseg/component"

// compact walks vertex ids in ascending order and emits each distinct
// component the first time one of its vertices is seen, i.e. at the position
// of its lowest-numbered member.
// Complexity: O(V) plus the size of the emitted chains.
func compact(t *component.Table) []Component {
	seen := make(map[component.ID]struct{})
	out := make([]Component, 0)
	for v := 0; v < t.VertexCount(); v++ {
		id := t.Find(v)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, Component{
			Members:    t.Members(id),
			Confidence: t.Confidence(id),
		})
	}

	return out
}
