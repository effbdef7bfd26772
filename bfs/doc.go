// Package bfs provides bidirectional breadth-first search over a
// junction.Graph, returning a minimum-hop path between two junction nodes.
//
// What
//
//   - Two frontiers grow from both endpoints, one full level per turn,
//     alternating sides, with parent links on each side.
//   - The search stops after the first level that touches the other side;
//     the shortest splice over that level is returned.
//   - Edges whose region is listed in WithAvoidRegions are never crossed.
//   - Returns a Result containing:
//   - Nodes:   node sequence, from first to last
//   - Edges:   edge indexes into junction.Graph.Edges
//   - Regions: the region of every step
//   - Meet:    the node where the frontiers met
//
// Why
//
//   - Charted paths between distant junctions touch roughly half as many
//     nodes as a one-sided search, and avoid lists let consumers route
//     around regions they are already covering.
//
// Determinism
//
//	Incident edges are walked in edge-index order and ties between equally
//	short splices go to the lower meeting node, then the lower edge index,
//	so the same graph always yields the same path.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - DefaultOptions(): background Context, nothing avoided, no hop limit.
//   - WithContext(ctx):        set a custom context for cancellation.
//   - WithAvoidRegions(ids):   never cross edges of these regions.
//   - WithMaxHops(h):          give up on paths longer than h edges (>0).
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrNodeNotFound      if an endpoint is not a node.
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxHops).
//   - ErrNoPath            if the frontiers exhaust or the hop limit is hit.
//   - ctx.Err()            if the context is cancelled.
package bfs
