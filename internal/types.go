package internal

import (
	"fmt"
	"math"
)

// Points are plain values. Identity only matters for sites, vertices and
// edges, which are always handled through pointers.
type Point struct {
	X float64
	Y float64
}

func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Linear interpolation between p and other, where t=0 gives p.
func (p Point) Interpolate(other Point, t float64) Point {
	return Point{p.X + t*(other.X-p.X), p.Y + t*(other.Y-p.Y)}
}

// Rectangles follow the screen convention of the renderers that consume
// them: Top is the minimum Y and Bottom is the maximum Y.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

func (r Rectangle) Left() float64   { return r.X }
func (r Rectangle) Right() float64  { return r.X + r.Width }
func (r Rectangle) Top() float64    { return r.Y }
func (r Rectangle) Bottom() float64 { return r.Y + r.Height }

func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// The corners in counterclockwise order, i.e. with positive signed area.
func (r Rectangle) Corners() []Point {
	return []Point{
		{r.Left(), r.Top()},
		{r.Right(), r.Top()},
		{r.Right(), r.Bottom()},
		{r.Left(), r.Bottom()},
	}
}

// Distances below this are treated as zero when working within the
// rectangle. It scales with the rectangle so large plots aren't held to
// sub-nanometer precision.
func (r Rectangle) tolerance() float64 {
	return Tolerance * math.Max(1, math.Max(r.Width, r.Height))
}

// Shrink the rectangle by a margin on every side. A negative margin grows it.
func (r Rectangle) Inset(margin float64) Rectangle {
	return Rectangle{r.X + margin, r.Y + margin, r.Width - 2*margin, r.Height - 2*margin}
}

type LineSegment struct {
	P0, P1 Point
}

func (s LineSegment) Length() float64 {
	return s.P0.Distance(s.P1)
}

// Which side of a bisector, or which end of an edge. Every left/right
// distinction in the package goes through this one type.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) Other() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

type Circle struct {
	Center Point
	Radius float64
}

// Three sites whose circumcircle was resolved by a circle event.
type Triangle struct {
	A, B, C *Site
}

func (t Triangle) Points() [3]Point {
	return [3]Point{t.A.Point, t.B.Point, t.C.Point}
}
