// Package dfs enumerates simple cycles of a junction multigraph for patrol
// loop generation.
//
// What:
//
//   - Cycles: path-extension depth-first search from every seed node. A step
//     never reuses the edge just taken and never stays in one region unless
//     it is a loop region; a cycle closes through a region other than the
//     one it started with. Cycles are rotated to their smallest node with
//     Booth's algorithm and deduplicated against their reversals.
//
// Why:
//
//   - Patrol loops should actually go around something, not walk a corridor
//     and turn back.
//
// Key Types:
//
//   - Cycle:   node sequence with the region of every edge, closing edge last
//   - Result:  cycles ordered by node sequence, plus a Truncated flag
//   - Option:  WithRecursionLimit, WithLoopSearchLimit, WithStepLimit, WithFilterNode, WithExcluded
//
// Complexity:
//
//   - Exponential in the worst case; bounded by RecursionLimit (default 64)
//     edges per path, LoopSearchLimit (default 256) cycles and StepLimit
//     (default 1<<18) path extensions in total.
//   - Canonicalization: O(L) per cycle of length L.
//
// Errors:
//
//   - ErrGraphNil         graph pointer is nil
//   - ErrOptionViolation  invalid option
//
// Reaching a cap is not an error: the search stops, Result.Truncated is set
// and the cycles found so far are returned.
package dfs
