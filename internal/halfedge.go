package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/voronoi/dbg"
)

type halfEdgeState int

const (
	// One of the two ends of the beach line. Sentinels never carry an edge.
	sentinel halfEdgeState = iota
	live
	// Unlinked from the beach line. Stale hash entries may still point here.
	tombstone
)

// One side of an edge on the beach line. A half edge lives in the edge list,
// and additionally in the event queue while it has a pending circle event
// (vertex non-nil).
type HalfEdge struct {
	edge  *Edge
	state halfEdgeState
	Side  Side

	// Pending circle event: the intersection and the sweep position at which
	// it fires (the intersection's y plus its distance to the site).
	vertex *Vertex
	yStar  float64

	left, right *HalfEdge
	// Next in the event queue bucket
	next *HalfEdge
}

func newHalfEdge(edge *Edge, side Side) *HalfEdge {
	return &HalfEdge{edge: edge, state: live, Side: side}
}

func newSentinel() *HalfEdge {
	return &HalfEdge{state: sentinel}
}

// The half edge's edge, or nil for sentinels and removed half edges.
func (he *HalfEdge) Edge() *Edge {
	if he.state != live {
		return nil
	}
	return he.edge
}

func (he *HalfEdge) IsSentinel() bool {
	return he.state == sentinel
}

func (he *HalfEdge) Left() *HalfEdge  { return he.left }
func (he *HalfEdge) Right() *HalfEdge { return he.right }

// Whether this half edge lies to the left of p, i.e. p is on its right. This
// is Fortune's right_of test, fast paths included.
func (he *HalfEdge) isLeftOf(p Point) bool {
	e := he.edge
	topSite := e.RightSite()
	rightOfSite := p.X > topSite.X
	if rightOfSite && he.Side == Left {
		return true
	}
	if !rightOfSite && he.Side == Right {
		return false
	}

	var above bool
	if e.A == 1.0 {
		dyp := p.Y - topSite.Y
		dxp := p.X - topSite.X
		fast := false
		if (!rightOfSite && e.B < 0.0) || (rightOfSite && e.B >= 0.0) {
			above = dyp >= e.B*dxp
			fast = above
		} else {
			above = p.X+p.Y*e.B > e.C
			if e.B < 0.0 {
				above = !above
			}
			if !above {
				fast = true
			}
		}
		if !fast {
			dxs := topSite.X - e.LeftSite().X
			above = e.B*(dxp*dxp-dyp*dyp) < dxs*dyp*(1.0+2.0*dxp/dxs+e.B*e.B)
			if e.B < 0.0 {
				above = !above
			}
		}
	} else {
		// e.B == 1
		y1 := e.C - e.A*p.X
		t1 := p.Y - y1
		t2 := p.X - topSite.X
		t3 := y1 - topSite.Y
		above = t1*t1 > t2*t2+t3*t3
	}
	if he.Side == Left {
		return above
	}
	return !above
}

func (he *HalfEdge) String() string {
	switch he.state {
	case sentinel:
		return "halfedge(sentinel)"
	case tombstone:
		return "halfedge(removed)"
	}
	return fmt.Sprintf("halfedge(%s of line %d)", he.Side, he.edge.index)
}

func (he *HalfEdge) DbgName() string {
	name := dbg.Name(he)
	switch he.state {
	case sentinel:
		return aurora.Gray(12, name).String()
	case tombstone:
		return aurora.Red(name).String()
	}
	return aurora.Sprintf("%s(%s)", aurora.Yellow(name), he.Side)
}
