package edgestore

import "errors"

// Sentinel errors returned by New.
var (
	// ErrNegativeVertexCount indicates that the vertex count is negative.
	ErrNegativeVertexCount = errors.New("edgestore: vertex count must be non-negative")

	// ErrInvalidVertexID indicates that an edge references a vertex outside [0, vertexCount).
	ErrInvalidVertexID = errors.New("edgestore: vertex id out of range")

	// ErrNegativeWeight indicates a negative edge weight (or, for callers that
	// reuse it, a negative confidence constant).
	ErrNegativeWeight = errors.New("edgestore: negative weight")
)

// Edge is an undirected weighted edge in canonical orientation.
// Origin ≤ Destination always holds for edges produced by NewEdge or New.
type Edge struct {
	Origin      int   // smaller endpoint
	Destination int   // larger endpoint
	Weight      int64 // non-negative weight
}

// NewEdge returns the canonical form of the undirected edge {v1, v2}:
// the endpoints are swapped when v1 > v2. No validation happens here.
func NewEdge(v1, v2 int, weight int64) Edge {
	if v1 > v2 {
		v1, v2 = v2, v1
	}

	return Edge{Origin: v1, Destination: v2, Weight: weight}
}

// IsLoop reports whether both endpoints are the same vertex.
func (e Edge) IsLoop() bool {
	return e.Origin == e.Destination
}
