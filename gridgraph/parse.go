package gridgraph

import (
	"fmt"
	"strings"
)

// Parse builds a grid from an ASCII drawing. Cells sit at even rows and
// columns; the characters between them are passages:
//
//	o  Open cell            S  Open start cell
//	e  Elevated cell        #  Occupied cell, placement 0
//	0-9 Occupied cell with that placement
//	-  horizontal passage   |  vertical passage
//	' ' nothing
//
// Lines may be ragged; missing characters read as spaces. At most one S may
// be drawn; when none is, the first walkable cell in row-major order is the
// start.
func Parse(lines []string) (*Grid, error) {
	rows := len(lines)
	cols := 0
	for _, l := range lines {
		if len(l) > cols {
			cols = len(l)
		}
	}
	g, err := NewGrid((cols+1)/2, (rows+1)/2)
	if err != nil {
		return nil, err
	}
	at := func(col, row int) byte {
		if row >= len(lines) || col >= len(lines[row]) {
			return ' '
		}
		return lines[row][col]
	}

	start := -1
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			ch := at(2*x, 2*y)
			c := &g.cells[g.Index(x, y)]
			switch {
			case ch == ' ':
			case ch == 'o':
				c.State = Open
			case ch == 'S':
				if start >= 0 {
					return nil, fmt.Errorf("%w: second start 'S' at line %d column %d", ErrBadGlyph, 2*y+1, 2*x+1)
				}
				c.State = Open
				start = c.ID
			case ch == 'e':
				c.State = Elevated
			case ch == '#':
				c.State = Occupied
			case ch >= '0' && ch <= '9':
				c.State = Occupied
				c.Placement = float64(ch - '0')
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrBadGlyph, ch, 2*y+1, 2*x+1)
			}
		}
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if row%2 == 0 && col%2 == 0 {
				continue
			}
			ch := at(col, row)
			ax, ay := col/2, row/2
			bx, by := ax, ay
			switch {
			case ch == ' ':
				continue
			case ch == '-' && row%2 == 0:
				bx++
			case ch == '|' && col%2 == 0:
				by++
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrBadGlyph, ch, row+1, col+1)
			}
			if !g.InBounds(bx, by) {
				return nil, fmt.Errorf("%w: passage at line %d column %d", ErrVoidLink, row+1, col+1)
			}
			if err := g.Link(g.Index(ax, ay), g.Index(bx, by)); err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", row+1, col+1, err)
			}
		}
	}

	if start < 0 {
		if w := g.Walkable(); len(w) > 0 {
			start = w[0]
		}
	}
	g.start = start

	return g, nil
}

// Format draws g in the layout accepted by Parse. Occupied cells with a
// whole placement in 1..9 are drawn as that digit.
func (g *Grid) Format() []string {
	out := make([]string, 0, 2*g.Height-1)
	for y := 0; y < g.Height; y++ {
		var row, below strings.Builder
		for x := 0; x < g.Width; x++ {
			c := &g.cells[g.Index(x, y)]
			row.WriteByte(glyph(c, c.ID == g.start))
			if x < g.Width-1 {
				if c.links.Has(East) {
					row.WriteByte('-')
				} else {
					row.WriteByte(' ')
				}
			}
			if c.links.Has(South) {
				below.WriteByte('|')
			} else {
				below.WriteByte(' ')
			}
			if x < g.Width-1 {
				below.WriteByte(' ')
			}
		}
		out = append(out, strings.TrimRight(row.String(), " "))
		if y < g.Height-1 {
			out = append(out, strings.TrimRight(below.String(), " "))
		}
	}
	return out
}

func glyph(c *Cell, start bool) byte {
	switch c.State {
	case Open:
		if start {
			return 'S'
		}
		return 'o'
	case Elevated:
		return 'e'
	case Occupied:
		if p := int(c.Placement); float64(p) == c.Placement && p >= 1 && p <= 9 {
			return byte('0' + p)
		}
		return '#'
	}
	return ' '
}
