// Package junction builds the abstract junction multigraph of a maze.
//
// What:
//
//   - Every locked junction cell of a region.Set becomes a node with a dense
//     id, in ascending cell order.
//   - Two ends of a region are joined by an edge labeled with the region id
//     when a walk inside the region reaches one from the other without
//     passing a third end. Edges are a flat (from, to, region) list; parallel
//     edges through different regions are kept.
//   - Every region cell gets a distance cache: per region, the hop count to
//     each junction of that region, nearest first.
//
// Why:
//
//   - Pruning, loop enumeration and path search all run on this small graph
//     instead of the full grid.
//
// Complexity:
//
//   - Build: O(N + Σ ends(r)·|r|) over regions r.
//   - Reach / Components: O(V + E).
//
// Errors:
//
//   - ErrGridNil, ErrSetNil: nil inputs.
//   - ErrInconsistent:       a region end that is not a locked cell.
package junction
