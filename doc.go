// Package mazegraph turns a grid maze into a navigable region graph and
// answers the queries that patrol, pursuit and content-placement logic ask
// of it.
//
// What is mazegraph?
//
//	A build pipeline plus a read-mostly query model:
//		• gridgraph:  cells, passages, ASCII/YAML layouts and union-find labeling
//		• region:     junction locking, refinement passes, corner consolidation, loop regions
//		• junction:   dense node ids, flat (from, to, region) edge list, distance cache
//		• prune:      2-core peeling and isolated-area sets
//		• dfs:        capped simple-cycle enumeration with canonical dedup
//		• bfs:        bidirectional search with region avoidance
//		• score:      region weights, placement and weighted scores
//		• config:     YAML tunables with env overrides
//		• logger:     slog helpers with rotating file output
//
// Quick start:
//
//	g, _ := gridgraph.Parse([]string{
//		"o-o",
//		"| |",
//		"o-o-o-o-o",
//	})
//	m, err := mazegraph.BuildGraph(g)
//	if err != nil {
//		// ErrGridNil, ErrOptionViolation, config.ErrInvalid or ErrInconsistent
//	}
//	loop, _ := m.Loop(0)
//	for {
//		cell, end := loop.Next()
//		// walk to cell ...
//		if end {
//			break
//		}
//	}
//
// Rebuilds:
//
//	BuildGraph always rebuilds from scratch. Annotations on the grid cells
//	(region ids, flags, node ids, distance caches) are written only after
//	every stage succeeded, so a failed build leaves the previous ones in
//	place. A rebuild invalidates node ids, region ids and charted paths
//	obtained from earlier models.
//
// Concurrency:
//
//	A Model is safe for concurrent queries. The grid itself must not be
//	mutated or rebuilt while a build is running.
package mazegraph
