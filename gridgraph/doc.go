// Package gridgraph turns a 2D grid of integer cell values (an image, a height
// map, a heat map) into a weighted edge set ready for segmentation.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; cell (x,y) becomes vertex
//     y*Width + x (row-major).
//   - Neighbouring cells are joined by one edge whose weight is the absolute
//     difference of their values plus GridOptions.BaseWeight.
//   - Conn4 links N/E/S/W neighbours, Conn8 adds the diagonals.
//
// Why:
//
//   - Image-region grouping: pixels of similar intensity coalesce while sharp
//     contrast keeps regions apart.
//   - BaseWeight keeps equal neighbours mergeable; a zero-weight edge never
//     causes a merge.
//
// Complexity:
//
//   - NewGridGraph: O(W×H) time and memory (deep copy).
//   - Edges/Store:  O(W×H×d) time and memory, d = 2 (Conn4) or 4 (Conn8)
//     forward neighbours per cell.
//
// Errors:
//
//   - ErrEmptyGrid:          input grid has no rows or no columns.
//   - ErrNonRectangular:     rows have differing lengths.
//   - ErrNegativeBaseWeight: GridOptions.BaseWeight < 0.
package gridgraph
