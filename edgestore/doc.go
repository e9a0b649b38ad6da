// Package edgestore holds the normalized, immutable edge list that drives
// segmentation.
//
// What:
//
//   - Edge is an undirected, weighted edge stored in canonical orientation
//     (Origin ≤ Destination).
//   - Store validates every edge against the vertex range once, at
//     construction, and never changes afterwards.
//   - Edges keep their input order; parallel edges are allowed and never
//     deduplicated.
//
// Why:
//
//   - The segmentation engine visits edges by ascending weight and breaks ties
//     by input order, so the store is the single source of truth for both.
//   - Validating up front keeps the merge loop free of fallible operations.
//
// Complexity:
//
//   - New:            O(E) time and memory (plus O(E) for the weight index).
//   - AtWeight:       O(1) lookup, O(k) copy for k edges of that weight.
//   - SortedByWeight: O(E log E), stable.
//
// Errors:
//
//   - ErrNegativeVertexCount: vertexCount < 0.
//   - ErrInvalidVertexID:     an endpoint lies outside [0, vertexCount).
//   - ErrNegativeWeight:      an edge weight is negative.
package edgestore
