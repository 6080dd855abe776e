package internal

type Winding int

const (
	WindingNone Winding = iota
	Clockwise
	CounterClockwise
)

func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return "none"
}

type Polygon struct {
	Points []Point
}

// Shoelace sum. Positive for counterclockwise polygons.
func (poly Polygon) SignedDoubleArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum
}

func (poly Polygon) Area() float64 {
	area := poly.SignedDoubleArea() / 2
	if area < 0 {
		return -area
	}
	return area
}

func (poly Polygon) Winding() Winding {
	doubleArea := poly.SignedDoubleArea()
	switch {
	case doubleArea < 0:
		return Clockwise
	case doubleArea > 0:
		return CounterClockwise
	}
	return WindingNone
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// A polygon is convex when every turn goes the same way. Turns within
// tolerance of zero (collinear points) are allowed in either direction.
func (poly Polygon) IsConvex(tolerance float64) bool {
	n := len(poly.Points)
	if n < 3 {
		return true
	}
	var sign float64
	for i := range poly.Points {
		c := cross(poly.Points[i], poly.Points[CircularIndex(i+1, n)], poly.Points[CircularIndex(i+2, n)])
		if c > -tolerance && c < tolerance {
			continue
		}
		if sign == 0 {
			sign = c
		} else if (c > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

// Area centroid. Degenerate polygons fall back to the average of their points.
func (poly Polygon) Centroid() Point {
	n := len(poly.Points)
	if n == 0 {
		return Point{}
	}
	doubleArea := poly.SignedDoubleArea()
	if Equal(doubleArea, 0) {
		var sum Point
		for _, p := range poly.Points {
			sum.X += p.X
			sum.Y += p.Y
		}
		return Point{sum.X / float64(n), sum.Y / float64(n)}
	}
	var cx, cy float64
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, n)]
		f := p.X*next.Y - next.X*p.Y
		cx += (p.X + next.X) * f
		cy += (p.Y + next.Y) * f
	}
	return Point{cx / (3 * doubleArea), cy / (3 * doubleArea)}
}
