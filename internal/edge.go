package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/voronoi/dbg"
)

// The bisector of two sites, with the equation A*x + B*y = C. One of A or B is
// always exactly 1, depending on which axis dominates the vector between the
// sites. Clipping and the half edge side test both branch on that.
type Edge struct {
	A, B, C float64

	index    int
	sites    [2]*Site
	vertices [2]*Vertex

	clipped     bool
	visible     bool
	clippedEnds [2]Point
}

// Create the bisector of s0 and s1 and register it with both sites. The sites
// must not be coincident.
func newBisectingEdge(s0, s1 *Site, index int) *Edge {
	if s0.Point == s1.Point {
		fatalf("cannot bisect coincident sites %v and %v", s0, s1)
	}
	edge := &Edge{index: index, sites: [2]*Site{s0, s1}}
	s0.addEdge(edge)
	s1.addEdge(edge)

	dx := s1.X - s0.X
	dy := s1.Y - s0.Y
	absdx, absdy := dx, dy
	if absdx < 0 {
		absdx = -absdx
	}
	if absdy < 0 {
		absdy = -absdy
	}
	edge.C = s0.X*dx + s0.Y*dy + (dx*dx+dy*dy)*0.5
	if absdx > absdy {
		edge.A = 1.0
		edge.B = dy / dx
		edge.C /= dx
	} else {
		edge.B = 1.0
		edge.A = dx / dy
		edge.C /= dy
	}
	return edge
}

func (e *Edge) Index() int { return e.index }

func (e *Edge) Site(side Side) *Site { return e.sites[side] }
func (e *Edge) LeftSite() *Site      { return e.sites[Left] }
func (e *Edge) RightSite() *Site     { return e.sites[Right] }

// The vertex at one end, or nil if the edge is unbounded on that side.
func (e *Edge) Vertex(side Side) *Vertex { return e.vertices[side] }
func (e *Edge) LeftVertex() *Vertex      { return e.vertices[Left] }
func (e *Edge) RightVertex() *Vertex     { return e.vertices[Right] }

// Each end gets its vertex once. A second assignment means the sweep has
// resolved the same end twice, which would silently orphan a vertex.
func (e *Edge) setVertex(side Side, v *Vertex) {
	if v == nil {
		fatalf("nil vertex for %s end of %v", side, e)
	}
	if e.vertices[side] != nil {
		fatalf("%s vertex of %v is already set", side, e)
	}
	e.vertices[side] = v
}

// An edge missing a vertex is unbounded, and the two sites it separates are
// neighbors on the convex hull.
func (e *Edge) IsPartOfConvexHull() bool {
	return e.vertices[Left] == nil || e.vertices[Right] == nil
}

func (e *Edge) SiteDistance() float64 {
	return e.LeftSite().Distance(e.RightSite().Point)
}

func (e *Edge) DelaunayLine() LineSegment {
	return LineSegment{e.LeftSite().Point, e.RightSite().Point}
}

// The clipped Voronoi segment, if any part of the edge lies within the bounds.
func (e *Edge) VoronoiEdge() (LineSegment, bool) {
	if !e.Visible() {
		return LineSegment{}, false
	}
	return LineSegment{e.clippedEnds[Left], e.clippedEnds[Right]}, true
}

func (e *Edge) Visible() bool {
	return e.clipped && e.visible
}

func (e *Edge) ClippedEnd(side Side) (Point, bool) {
	if !e.Visible() {
		return Point{}, false
	}
	return e.clippedEnds[side], true
}

// Clip the edge to the bounds, setting the clipped ends. If the whole edge
// lies outside, it is marked invisible. Missing vertices are treated as
// reaching the bounds.
func (e *Edge) clipVertices(bounds Rectangle) {
	e.clipped = true
	e.visible = false

	xmin, ymin := bounds.Left(), bounds.Top()
	xmax, ymax := bounds.Right(), bounds.Bottom()

	// vertex0 is the end with the smaller coordinate along the dominant axis
	var vertex0, vertex1 *Vertex
	swapped := e.A == 1.0 && e.B >= 0.0
	if swapped {
		vertex0, vertex1 = e.vertices[Right], e.vertices[Left]
	} else {
		vertex0, vertex1 = e.vertices[Left], e.vertices[Right]
	}

	var x0, y0, x1, y1 float64
	if e.A == 1.0 {
		y0 = ymin
		if vertex0 != nil && vertex0.Y > ymin {
			y0 = vertex0.Y
		}
		if y0 > ymax {
			return
		}
		x0 = e.C - e.B*y0

		y1 = ymax
		if vertex1 != nil && vertex1.Y < ymax {
			y1 = vertex1.Y
		}
		if y1 < ymin {
			return
		}
		x1 = e.C - e.B*y1

		if (x0 > xmax && x1 > xmax) || (x0 < xmin && x1 < xmin) {
			return
		}

		if x0 > xmax {
			x0 = xmax
			y0 = (e.C - x0) / e.B
		} else if x0 < xmin {
			x0 = xmin
			y0 = (e.C - x0) / e.B
		}

		if x1 > xmax {
			x1 = xmax
			y1 = (e.C - x1) / e.B
		} else if x1 < xmin {
			x1 = xmin
			y1 = (e.C - x1) / e.B
		}
	} else {
		x0 = xmin
		if vertex0 != nil && vertex0.X > xmin {
			x0 = vertex0.X
		}
		if x0 > xmax {
			return
		}
		y0 = e.C - e.A*x0

		x1 = xmax
		if vertex1 != nil && vertex1.X < xmax {
			x1 = vertex1.X
		}
		if x1 < xmin {
			return
		}
		y1 = e.C - e.A*x1

		if (y0 > ymax && y1 > ymax) || (y0 < ymin && y1 < ymin) {
			return
		}

		if y0 > ymax {
			y0 = ymax
			x0 = (e.C - y0) / e.A
		} else if y0 < ymin {
			y0 = ymin
			x0 = (e.C - y0) / e.A
		}

		if y1 > ymax {
			y1 = ymax
			x1 = (e.C - y1) / e.A
		} else if y1 < ymin {
			y1 = ymin
			x1 = (e.C - y1) / e.A
		}
	}

	p0, p1 := Point{x0, y0}, Point{x1, y1}
	if !p0.IsFinite() || !p1.IsFinite() {
		return
	}
	if swapped {
		e.clippedEnds[Right], e.clippedEnds[Left] = p0, p1
	} else {
		e.clippedEnds[Left], e.clippedEnds[Right] = p0, p1
	}
	e.visible = true
}

func (e *Edge) String() string {
	return fmt.Sprintf("line(%d) %gx+%gy=%g bisecting %d %d",
		e.index, e.A, e.B, e.C, e.LeftSite().Index, e.RightSite().Index)
}

// Colored readable name for debug output: cyan if unbounded, red if both ends
// share a point, green otherwise.
func (e *Edge) DbgName() string {
	name := dbg.Name(e)
	switch {
	case e.IsPartOfConvexHull():
		return aurora.Cyan(name).String()
	case e.LeftVertex().Point == e.RightVertex().Point:
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}
