// Package prune finds the parts of a junction graph no loop can pass
// through and groups the regions they cover into isolated areas.
//
// What:
//
//   - Peeling: nodes with fewer than two live edge ends are removed until
//     none remain. What is left is the 2-core; every peeled node is
//     unloopable and keeps the edge it was peeled through as its exit.
//   - Walks: from every dead-end pocket region, and from every bare leaf
//     node, follow exits through unloopable nodes and collect the crossed
//     regions into sets whose summed weight stays under MaxWeight.
//   - Trimming: drop subsets, merge overlapping sets that fit under
//     MaxWeight or split their intersection out, pair tiny single-region
//     sets sharing a junction, and drop subsets again.
//
// Weights are shares of the maze's walkable cells, as computed by
// score.Weights.
//
// Options:
//
//   - WithMaxWeight     (default 0.25)
//   - WithMinWeight     (default 0.02)
//   - WithPairMaxWeight (default 0.05)
//
// Errors:
//
//   - ErrGraphNil, ErrSetNil: nil inputs.
//   - ErrWeights:             weights do not cover the region set.
//   - ErrOptionViolation:     invalid option.
package prune
