package gridgraph

// Labels is the result of a labeling scan.
type Labels struct {
	// Of maps a cell id to its dense label, or -1 for cells that are not walkable.
	Of []int
	// Groups lists the cells of each label in ascending id order. Labels are
	// numbered in order of their lowest cell id.
	Groups [][]int
	// States holds the passability tier of each label.
	States []State
}

// Label partitions the walkable cells into maximal 4-connected same-state
// groups, following recorded passages only.
//
// The scan is row-major and looks back north and west; provisional labels
// live in one disjoint-set forest per state so Open and Elevated never meet.
// A cell for which barrier returns true never unions with its neighbors and
// ends up alone in its group. barrier may be nil.
//
// Time:   O(W·H·α(W·H)).
// Memory: O(W·H).
func (g *Grid) Label(barrier func(id int) bool) Labels {
	isBarrier := func(id int) bool { return barrier != nil && barrier(id) }

	forests := map[State]*disjointSet{Open: {}, Elevated: {}}
	prov := make([]int, len(g.cells))

	for id := range g.cells {
		c := &g.cells[id]
		if !c.State.Walkable() {
			prov[id] = -1
			continue
		}
		ds := forests[c.State]
		if isBarrier(id) {
			prov[id] = ds.add()
			continue
		}

		lo := -1
		var seen [2]int
		k := 0
		for _, d := range [2]Direction{North, West} {
			n, ok := g.Neighbor(id, d)
			if !ok || g.cells[n].State != c.State || isBarrier(n) {
				continue
			}
			seen[k] = prov[n]
			k++
			if lo < 0 || prov[n] < lo {
				lo = prov[n]
			}
		}
		if k == 0 {
			prov[id] = ds.add()
			continue
		}
		prov[id] = lo
		for i := 0; i < k; i++ {
			ds.union(lo, seen[i])
		}
	}

	type key struct {
		s    State
		root int
	}
	dense := make(map[key]int)
	out := Labels{Of: make([]int, len(g.cells))}
	for id := range g.cells {
		if prov[id] < 0 {
			out.Of[id] = -1
			continue
		}
		s := g.cells[id].State
		k := key{s, forests[s].find(prov[id])}
		l, ok := dense[k]
		if !ok {
			l = len(out.Groups)
			dense[k] = l
			out.Groups = append(out.Groups, nil)
			out.States = append(out.States, s)
		}
		out.Of[id] = l
		out.Groups[l] = append(out.Groups[l], id)
	}

	return out
}

// ConnectedComponents returns the walkable same-state components of g, each
// as ascending cell ids, ordered by lowest id.
func (g *Grid) ConnectedComponents() [][]int {
	return g.Label(nil).Groups
}

// disjointSet is a union-find forest with path compression and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func (ds *disjointSet) add() int {
	ds.parent = append(ds.parent, len(ds.parent))
	ds.rank = append(ds.rank, 0)
	return len(ds.parent) - 1
}

func (ds *disjointSet) find(x int) int {
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[x] != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}
	return root
}

func (ds *disjointSet) union(a, b int) {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
}
