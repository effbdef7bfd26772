package mazegraph

import "slices"

// ChartedPath is a route over waypoint cells with the region travelled
// between each consecutive pair. For a loop, the last region leads from
// the last waypoint back to the first.
//
// A ChartedPath belongs to the caller; it is not safe for concurrent use.
type ChartedPath struct {
	Waypoints []int
	Regions   []int

	loop   bool
	cursor int
}

// Len returns the number of waypoints.
func (p *ChartedPath) Len() int { return len(p.Waypoints) }

// IsLoop reports whether the path is cyclic.
func (p *ChartedPath) IsLoop() bool { return p.loop }

// Next returns the waypoint under the cursor and advances it. end is set
// on the last waypoint: an open path then stays there, a loop wraps to its
// first waypoint. An empty path returns (-1, true).
func (p *ChartedPath) Next() (cell int, end bool) {
	n := len(p.Waypoints)
	if n == 0 {
		return -1, true
	}
	cell = p.Waypoints[p.cursor]
	if p.cursor < n-1 {
		p.cursor++
		return cell, false
	}
	if p.loop {
		p.cursor = 0
	}
	return cell, true
}

// Reset moves the cursor back to the first waypoint.
func (p *ChartedPath) Reset() { p.cursor = 0 }

// Reverse flips the travel direction in place. The waypoint under the
// cursor stays under it.
func (p *ChartedPath) Reverse() {
	n := len(p.Waypoints)
	if n == 0 {
		return
	}
	slices.Reverse(p.Waypoints)
	if p.loop && len(p.Regions) == n {
		slices.Reverse(p.Regions[:n-1])
	} else {
		slices.Reverse(p.Regions)
	}
	p.cursor = n - 1 - p.cursor
}
