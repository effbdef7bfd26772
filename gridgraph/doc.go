// Package gridgraph models a maze as a rectangular arena of cells joined by
// explicit passages, and labels its connected regions.
//
// What:
//
//   - Grid holds cells addressed by row-major id. Passages are direction bits
//     recorded by Link; geometric neighborliness alone connects nothing.
//   - Cells carry a passability State (Open, Elevated, Occupied) plus build
//     annotations: region ids, flags, node id and a junction distance cache.
//   - Label partitions walkable cells into same-state connected groups with a
//     one-pass union-find scan, optionally treating some cells as barriers.
//   - Parse, Format and LoadYAML read and draw ASCII maze layouts.
//
// Why:
//
//   - Every later stage (region refinement, junction graph, pruning, loops,
//     search, scoring) works on integer ids into this arena.
//
// Complexity:
//
//   - Label / ConnectedComponents: O(W·H·α(W·H)), Memory: O(W·H).
//   - Parse / Format:              O(W·H).
//
// Errors:
//
//   - ErrEmptyGrid:   no rows or no columns.
//   - ErrOutOfRange:  cell id or coordinate outside the grid.
//   - ErrNotAdjacent: passage between non-neighbors.
//   - ErrVoidLink:    passage touching a void position.
//   - ErrBadGlyph:    unknown layout character.
package gridgraph
