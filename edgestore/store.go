package edgestore

import (
	"fmt"
	"sort"
)

// Store is the immutable edge set of one segmentation problem.
// It is safe for concurrent readers because nothing mutates it after New.
type Store struct {
	vertexCount int
	edges       []Edge          // canonical edges in input order
	maxWeight   int64           // largest weight seen, 0 when empty
	byWeight    map[int64][]int // weight -> indices into edges, input order
	weights     []int64         // distinct weights, ascending
}

// New validates and canonicalizes the given edges for a graph of vertexCount
// vertices. The input slice is not retained.
//
// Validation order (first failure wins):
//  1. vertexCount ≥ 0                       (ErrNegativeVertexCount)
//  2. per edge, in input order:
//     both endpoints in [0, vertexCount)    (ErrInvalidVertexID)
//     weight ≥ 0                            (ErrNegativeWeight)
//
// Either the whole edge set is accepted or nil is returned with the error.
// Complexity: O(E log W) where W is the number of distinct weights.
func New(vertexCount int, edges []Edge) (*Store, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeVertexCount, vertexCount)
	}

	s := &Store{
		vertexCount: vertexCount,
		edges:       make([]Edge, 0, len(edges)),
		byWeight:    make(map[int64][]int),
	}
	for i, e := range edges {
		if e.Origin < 0 || e.Origin >= vertexCount || e.Destination < 0 || e.Destination >= vertexCount {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d) with %d vertices",
				ErrInvalidVertexID, i, e.Origin, e.Destination, vertexCount)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d) weight=%d",
				ErrNegativeWeight, i, e.Origin, e.Destination, e.Weight)
		}

		c := NewEdge(e.Origin, e.Destination, e.Weight)
		if c.Weight > s.maxWeight {
			s.maxWeight = c.Weight
		}
		if _, ok := s.byWeight[c.Weight]; !ok {
			s.weights = append(s.weights, c.Weight)
		}
		s.byWeight[c.Weight] = append(s.byWeight[c.Weight], len(s.edges))
		s.edges = append(s.edges, c)
	}
	sort.Slice(s.weights, func(i, j int) bool { return s.weights[i] < s.weights[j] })

	return s, nil
}

// VertexCount returns the number of vertices the edges were validated against.
func (s *Store) VertexCount() int {
	return s.vertexCount
}

// Len returns the number of stored edges.
func (s *Store) Len() int {
	return len(s.edges)
}

// At returns the i-th edge in input order. It panics when i is out of range,
// like a slice index.
func (s *Store) At(i int) Edge {
	return s.edges[i]
}

// Edges returns a copy of all edges in input order.
func (s *Store) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)

	return out
}

// MaxWeight returns the largest edge weight, or 0 for an empty store.
func (s *Store) MaxWeight() int64 {
	return s.maxWeight
}

// Weights returns the distinct edge weights in ascending order.
func (s *Store) Weights() []int64 {
	out := make([]int64, len(s.weights))
	copy(out, s.weights)

	return out
}

// AtWeight returns the edges whose weight equals w, in input order.
// The result is nil when no edge has that weight.
func (s *Store) AtWeight(w int64) []Edge {
	idx, ok := s.byWeight[w]
	if !ok {
		return nil
	}
	out := make([]Edge, len(idx))
	for i, j := range idx {
		out[i] = s.edges[j]
	}

	return out
}

// SortedByWeight returns the edges ordered by ascending weight. The sort is
// stable, so edges of equal weight keep their input order.
// Complexity: O(E log E).
func (s *Store) SortedByWeight() []Edge {
	out := s.Edges()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight < out[j].Weight
	})

	return out
}
