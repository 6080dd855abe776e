package internal

import "fmt"

// A Voronoi vertex. Vertices are compared by identity: two circle events
// that land on the same coordinates still produce two vertices.
//
// There is no vertex "at infinity". Anywhere a vertex can be missing (an
// unbounded edge end, a rejected intersection) the *Vertex is nil, so every
// caller has to check before reading coordinates.
type Vertex struct {
	Point
	index int
}

const unassignedIndex = -1

func newVertex(p Point) *Vertex {
	if !p.IsFinite() {
		return nil
	}
	return &Vertex{Point: p, index: unassignedIndex}
}

// The vertex's index, which is only assigned once its circle event has been
// processed.
func (v *Vertex) Index() (int, bool) {
	return v.index, v.index != unassignedIndex
}

func (v *Vertex) setIndex(index int) {
	if v.index != unassignedIndex {
		fatalf("vertex %v already has index %d", v.Point, v.index)
	}
	v.index = index
}

func (v *Vertex) String() string {
	return fmt.Sprintf("vertex(%d) at %g %g", v.index, v.X, v.Y)
}

// Intersect the bisectors of two half edges. Returns nil if either half edge
// has no live edge, if the bisectors are parallel or share their right site,
// or if the intersection lies on the wrong side of the controlling site. That
// last case is an intersection the sweep has not reached yet, and turning it
// into a circle event would corrupt the event order.
func intersect(he0, he1 *HalfEdge) *Vertex {
	e0 := he0.Edge()
	e1 := he1.Edge()
	if e0 == nil || e1 == nil {
		return nil
	}
	if e0.RightSite() == e1.RightSite() {
		return nil
	}

	determinant := e0.A*e1.B - e0.B*e1.A
	if -1.0e-10 < determinant && determinant < 1.0e-10 {
		// The edges are parallel
		return nil
	}

	intersection := Point{
		X: (e0.C*e1.B - e1.C*e0.B) / determinant,
		Y: (e1.C*e0.A - e0.C*e1.A) / determinant,
	}

	// The half edge whose right site comes first in sweep order decides
	he, e := he0, e0
	if CompareByYThenX(e0.RightSite().Point, e1.RightSite().Point) >= 0 {
		he, e = he1, e1
	}
	rightOfSite := intersection.X >= e.RightSite().X
	if (rightOfSite && he.Side == Left) || (!rightOfSite && he.Side == Right) {
		return nil
	}
	return newVertex(intersection)
}
