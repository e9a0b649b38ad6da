// Package segment partitions a weighted undirected graph into components by
// merging along edges of increasing weight while the edge stays small next to
// the confidence of both sides.
//
// Algorithm:
//
//	for every edge e by ascending weight (ties keep input order):
//	    A, B := Find(e.Origin), Find(e.Destination)
//	    if A != B:
//	        d := Dissimilarity(e, A, B)
//	        if d < Confidence(A) and d < Confidence(B):
//	            Merge(A, B, e.Weight)        // B's chain is appended to A's
//
// Confidence(C) = max attach weight in C + Constant/|C| (integer division).
// Dissimilarity is the edge weight, or component.Infinity for a zero-weight
// edge, so zero-weight edges never merge.
//
// After the loop the compactor emits each component once, ordered by its
// lowest member vertex id; members keep chain order.
//
// Complexity:
//
//   - StrategySorted:  O(E log E + V·M) time where M ≤ V−1 merges rewrite chains.
//   - StrategyBuckets: O(W + E + V·M) time, W = number of distinct weights.
//   - Memory:          O(V + E).
//
// The engine is sequential by nature: every decision observes all earlier
// merges, including those at the same weight.
//
// Errors:
//
//   - ErrNilStore:                  store is nil.
//   - edgestore.ErrNegativeWeight: Constant < 0.
package segment
