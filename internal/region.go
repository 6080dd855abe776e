package internal

import (
	"math"
	"sort"
)

// The site's Voronoi cell clipped to bounds, as a counterclockwise polygon.
// Computed once; the bounds of the first call win.
func (s *Site) Region(bounds Rectangle) []Point {
	if !s.regionDone {
		s.region = s.buildRegion(bounds)
		s.regionDone = true
	}
	return append([]Point(nil), s.region...)
}

// A visible edge piece, directed so the cell is on its left.
type regionSegment struct {
	LineSegment
	angle float64
}

func (s *Site) buildRegion(bounds Rectangle) []Point {
	for _, e := range s.edges {
		if !e.clipped {
			fatal(ErrOutOfSequence, "region requested before edges were clipped")
		}
	}

	eps := bounds.tolerance()
	segments := s.visibleSegments(bounds, eps)
	if len(segments) == 0 {
		// No edge crosses the bounds, so the cell is all or nothing
		if bounds.Contains(s.Point) {
			return bounds.Corners()
		}
		return nil
	}

	boundary := rectangleBoundary{bounds, eps}
	var points []Point
	add := func(p Point) {
		if len(points) > 0 && points[len(points)-1].Distance(p) < eps {
			return
		}
		points = append(points, p)
	}
	for _, segment := range segments {
		if len(points) > 0 {
			boundary.connect(points[len(points)-1], segment.P0, add)
		}
		add(segment.P0)
		add(segment.P1)
	}
	boundary.connect(points[len(points)-1], points[0], add)
	if len(points) > 1 && points[len(points)-1].Distance(points[0]) < eps {
		points = points[:len(points)-1]
	}

	if (Polygon{points}).Winding() == Clockwise {
		points = Polygon{points}.Reverse().Points
	}
	return points
}

// The clipped pieces of the cell boundary, each directed counterclockwise
// around the cell and sorted by angle around it. Sorting by angle rather than
// trusting vertex order keeps cells bounded by parallel bisectors (collinear
// sites) intact, since those edges share no vertex.
func (s *Site) visibleSegments(bounds Rectangle, eps float64) []regionSegment {
	var lines []LineSegment
	for _, e := range s.boundaryEdges() {
		line, ok := e.VoronoiEdge()
		if !ok || line.Length() < eps {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil
	}

	// Clipped cells are convex. A site outside the bounds is outside its
	// clipped cell too, so orient around a point known to be inside instead.
	center := s.Point
	if !bounds.Contains(center) {
		var sum Point
		for _, line := range lines {
			sum.X += line.P0.X + line.P1.X
			sum.Y += line.P0.Y + line.P1.Y
		}
		n := float64(2 * len(lines))
		if c := (Point{sum.X / n, sum.Y / n}); len(lines) > 1 {
			center = c
		}
	}

	segments := make([]regionSegment, 0, len(lines))
	for _, line := range lines {
		if cross(center, line.P0, line.P1) < 0 {
			line = LineSegment{line.P1, line.P0}
		}
		mid := line.P0.Interpolate(line.P1, 0.5)
		segments = append(segments, regionSegment{
			LineSegment: line,
			angle:       math.Atan2(mid.Y-center.Y, mid.X-center.X),
		})
	}
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].angle < segments[j].angle
	})
	return segments
}

// The edge of the clipping rectangle, parameterized by distance traveled
// counterclockwise from the (left, top) corner.
type rectangleBoundary struct {
	Rectangle
	eps float64
}

func (r rectangleBoundary) perimeter() float64 {
	return 2*r.Width + 2*r.Height
}

// Position of p along the boundary, or false if p isn't on it.
func (r rectangleBoundary) position(p Point) (float64, bool) {
	w, h := r.Width, r.Height
	distances := [4]float64{
		math.Abs(p.Y - r.Top()),
		math.Abs(p.X - r.Right()),
		math.Abs(p.Y - r.Bottom()),
		math.Abs(p.X - r.Left()),
	}
	nearest := 0
	for i, d := range distances {
		if d < distances[nearest] {
			nearest = i
		}
	}
	if distances[nearest] > r.eps {
		return 0, false
	}
	switch nearest {
	case 0:
		return p.X - r.Left(), true
	case 1:
		return w + (p.Y - r.Top()), true
	case 2:
		return w + h + (r.Right() - p.X), true
	}
	return 2*w + h + (r.Bottom() - p.Y), true
}

// If from and to both lie on the boundary, emit the corners passed when
// walking counterclockwise from one to the other.
func (r rectangleBoundary) connect(from, to Point, add func(Point)) {
	if from.Distance(to) < r.eps {
		return
	}
	start, ok := r.position(from)
	if !ok {
		return
	}
	end, ok := r.position(to)
	if !ok {
		return
	}
	perimeter := r.perimeter()
	span := end - start
	if span < 0 {
		span += perimeter
	}
	corners := r.Corners()
	cornerPositions := [4]float64{0, r.Width, r.Width + r.Height, 2*r.Width + r.Height}
	// Walk the corners in order starting from the first one past start
	first := 0
	for first < 4 && cornerPositions[first] <= start+r.eps {
		first++
	}
	for k := 0; k < 4; k++ {
		i := (first + k) % 4
		offset := cornerPositions[i] - start
		if offset < 0 {
			offset += perimeter
		}
		if offset > r.eps && offset < span-r.eps {
			add(corners[i])
		}
	}
}
