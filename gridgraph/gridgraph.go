package gridgraph

import "fmt"

// NewGrid allocates a width×height grid of Void cells with no passages.
// Complexity: O(W×H).
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
		start:  -1,
	}
	for id := range g.cells {
		x, y := g.Coordinate(id)
		g.cells[id] = Cell{ID: id, X: x, Y: y, NodeID: -1}
	}

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major cell id: y*Width + x.
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major cell id back to (x,y).
func (g *Grid) Coordinate(id int) (x, y int) {
	return id % g.Width, id / g.Width
}

// Len returns the number of positions, Void included.
func (g *Grid) Len() int { return len(g.cells) }

// Cell returns the cell with the given id, or nil when id is out of range.
func (g *Grid) Cell(id int) *Cell {
	if id < 0 || id >= len(g.cells) {
		return nil
	}
	return &g.cells[id]
}

// CellAt returns the cell at (x,y), or nil outside the grid.
func (g *Grid) CellAt(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[g.Index(x, y)]
}

// SetState sets the passability tier of (x,y). Occupied cells take a
// placement value; it is ignored for other states.
func (g *Grid) SetState(x, y int, s State, placement float64) error {
	c := g.CellAt(x, y)
	if c == nil {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, x, y)
	}
	c.State = s
	c.Placement = 0
	if s == Occupied {
		c.Placement = placement
	}
	if s == Void {
		g.clearLinks(c.ID)
	}

	return nil
}

// Link records a two-way passage between orthogonally adjacent cells a and b.
func (g *Grid) Link(a, b int) error {
	ca, cb := g.Cell(a), g.Cell(b)
	if ca == nil || cb == nil {
		return fmt.Errorf("%w: link %d-%d", ErrOutOfRange, a, b)
	}
	if ca.State == Void || cb.State == Void {
		return fmt.Errorf("%w: link %d-%d", ErrVoidLink, a, b)
	}
	for _, d := range Directions {
		dx, dy := d.Offset()
		if ca.X+dx == cb.X && ca.Y+dy == cb.Y {
			ca.links |= d
			cb.links |= d.Opposite()
			return nil
		}
	}

	return fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrNotAdjacent, ca.X, ca.Y, cb.X, cb.Y)
}

func (g *Grid) clearLinks(id int) {
	c := &g.cells[id]
	for _, d := range Directions {
		if n, ok := g.Neighbor(id, d); ok {
			g.cells[n].links &^= d.Opposite()
		}
	}
	c.links = 0
}

// Neighbor returns the cell reached from id through a passage in direction d.
func (g *Grid) Neighbor(id int, d Direction) (int, bool) {
	c := g.Cell(id)
	if c == nil || !c.links.Has(d) {
		return -1, false
	}
	dx, dy := d.Offset()
	if !g.InBounds(c.X+dx, c.Y+dy) {
		return -1, false
	}
	return g.Index(c.X+dx, c.Y+dy), true
}

// Neighbors returns, in N,E,S,W order, the linked neighbors of id whose
// state equals s.
func (g *Grid) Neighbors(id int, s State) []int {
	out := make([]int, 0, 4)
	for _, d := range Directions {
		if n, ok := g.Neighbor(id, d); ok && g.cells[n].State == s {
			out = append(out, n)
		}
	}
	return out
}

// Degree counts the same-state passages of a walkable cell; other cells have degree 0.
func (g *Grid) Degree(id int) int {
	c := g.Cell(id)
	if c == nil || !c.State.Walkable() {
		return 0
	}
	deg := 0
	for _, d := range Directions {
		if n, ok := g.Neighbor(id, d); ok && g.cells[n].State == c.State {
			deg++
		}
	}
	return deg
}

// PlacedNeighbors returns the Occupied cells linked to id.
func (g *Grid) PlacedNeighbors(id int) []int {
	return g.Neighbors(id, Occupied)
}

// Start returns the designated start cell, or -1 when the grid has no walkable cell.
func (g *Grid) Start() int { return g.start }

// SetStart designates id as the start cell. It must be walkable.
func (g *Grid) SetStart(id int) error {
	c := g.Cell(id)
	if c == nil || !c.State.Walkable() {
		return fmt.Errorf("%w: start %d is not a walkable cell", ErrOutOfRange, id)
	}
	g.start = id
	return nil
}

// Walkable returns the ids of all walkable cells in ascending order.
func (g *Grid) Walkable() []int {
	var out []int
	for id := range g.cells {
		if g.cells[id].State.Walkable() {
			out = append(out, id)
		}
	}
	return out
}

// ResetAnnotations clears every build annotation.
func (g *Grid) ResetAnnotations() {
	for id := range g.cells {
		c := &g.cells[id]
		c.Regions = nil
		c.Flags = 0
		c.NodeID = -1
		c.Distances = nil
	}
}
