// Package component implements the component table behind segmentation:
// singleton creation, confidence, dissimilarity, and the merge mutation with
// its representative update.
//
// Representation:
//
//   - Components live in an arena ([]component) and are addressed by ID, the
//     arena index. IDs are stable for the lifetime of a Table.
//   - Each component owns an ordered chain of Member records. The first member
//     is the originating vertex (AttachWeight 0); every later member records the
//     weight of the edge that brought it in.
//   - The representative mapping is a []ID indexed by vertex. Two vertices are
//     in the same component iff they map to the same ID.
//
// Merge appends the destination chain to the tail of the origin chain, rewrites
// the confidence of the combined chain from scratch, re-points every absorbed
// vertex at the origin, and leaves the destination slot empty. Components are
// never split or copied, so once two vertices share an ID they always will.
//
// Confidence of a chain is maxAttachWeight + constant/size (integer division).
// A fresh singleton therefore has confidence == constant.
//
// A Table is not safe for concurrent use.
package component
