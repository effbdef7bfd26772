// Package gridgraph defines the maze grid, its cells, and the
// passability and annotation types shared by every mazegraph package.
package gridgraph

// State is the passability tier of a cell.
type State uint8

const (
	// Void marks a grid position with no cell.
	Void State = iota
	// Open is the ground walkable tier.
	Open
	// Elevated is the raised walkable tier. It never joins regions with Open.
	Elevated
	// Occupied cells hold placed content and are not walkable.
	Occupied
)

// Walkable reports whether cells of this state take part in region search.
func (s State) Walkable() bool {
	return s == Open || s == Elevated
}

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Elevated:
		return "elevated"
	case Occupied:
		return "occupied"
	default:
		return "void"
	}
}

// Direction is one orthogonal passage bit. A cell's links are the OR of the
// directions it has a passage to.
type Direction uint8

const (
	North Direction = 1 << iota
	East
	South
	West
)

// Directions lists the four passage bits in scan order.
var Directions = [4]Direction{North, East, South, West}

// Offset returns the (dx, dy) step of d. Y grows southwards.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	}
	return 0
}

// Has reports whether every bit of other is set in d.
func (d Direction) Has(other Direction) bool {
	return other != 0 && d&other == other
}

// Vertical reports whether d is North or South.
func (d Direction) Vertical() bool {
	return d == North || d == South
}

// Flag is a build annotation bit on a cell.
type Flag uint8

const (
	// LockedJunction marks a cell promoted to a node of the junction graph.
	LockedJunction Flag = 1 << iota
	// DeadEnd marks a walkable cell with exactly one same-state passage.
	DeadEnd
	// Unloopable marks cells no patrol loop can pass through.
	Unloopable
)

// JunctionDistance is one entry of a cell's distance cache: the hop count
// inside a region from the cell to a junction node.
type JunctionDistance struct {
	Node int // junction node id
	Cell int // junction cell id
	Hops int
}

// Cell is one grid position. X, Y, State and Placement come from the maze
// generator; Regions, Flags, NodeID and Distances are annotations rewritten
// wholesale by every build.
type Cell struct {
	ID    int
	X, Y  int
	State State
	// Placement is the content-placement desirability of an Occupied cell.
	Placement float64

	links Direction

	Regions   []int
	Flags     Flag
	NodeID    int
	Distances map[int][]JunctionDistance
}

// Links returns the passage bits of c.
func (c *Cell) Links() Direction { return c.links }

// Has reports whether flag f is set on c.
func (c *Cell) Has(f Flag) bool { return c.Flags&f != 0 }

// Grid is a rectangular arena of cells addressed by row-major id.
type Grid struct {
	Width, Height int

	cells []Cell
	start int
}
