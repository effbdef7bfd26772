// Package region turns the raw connectivity of a maze grid into refined
// regions bounded by locked junction cells.
//
// What:
//
//   - Locks walkable cells with three or more same-state passages and labels
//     the rest with those junctions as barriers (gridgraph.Label).
//   - Refines the result with a small policy table: short corridors between
//     adjacent junctions and grazing internal corners are merged away, while
//     junctions next to dead ends are pinned.
//   - Consolidates leftover diagonal internal-corner pairs and promotes simple
//     rings to loop regions whose corner cells act as junctions.
//
// Why:
//
//   - Junction nodes of the abstract maze graph should mark real decisions,
//     not every bump in a wide corridor.
//
// Complexity:
//
//   - Build: O(P·W·H·α(W·H)) for P refinement passes (default cap 8).
//
// Options:
//
//   - WithMaxPasses, WithMergeThresholds, WithConsolidate, WithPromoteLoops.
//
// Errors:
//
//   - ErrGridNil:         nil grid.
//   - ErrOptionViolation: invalid option.
//   - ErrInconsistent:    the finished set breaks the partition invariant.
package region
