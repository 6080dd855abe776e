// Package advanced exposes the sweep's model types and building blocks for
// callers who need more than the top level voronoi package gives them: direct
// access to sites and edges, edge reordering, spanning trees over arbitrary
// segments, relaxation, and reproducible point generation.
//
// Functions here panic on misuse. Use HandleVoronoiPanicRecover in a deferred
// recover to turn those panics back into errors.
package advanced

import (
	"io"
	"math/rand"

	"github.com/osuushi/voronoi/internal"
)

type Point = internal.Point
type Rectangle = internal.Rectangle
type LineSegment = internal.LineSegment
type Polygon = internal.Polygon
type Winding = internal.Winding
type Side = internal.Side
type Circle = internal.Circle
type Triangle = internal.Triangle

type Site = internal.Site
type Vertex = internal.Vertex
type Edge = internal.Edge
type Diagram = internal.Diagram
type Options = internal.Options
type RenderOptions = internal.RenderOptions
type SVGSites = internal.SVGSites

type Criterion = internal.Criterion
type TreeType = internal.TreeType
type ParkMiller = internal.ParkMiller

const (
	Left  = internal.Left
	Right = internal.Right

	ByVertex = internal.ByVertex
	BySite   = internal.BySite

	Minimum = internal.Minimum
	Maximum = internal.Maximum

	WindingNone      = internal.WindingNone
	Clockwise        = internal.Clockwise
	CounterClockwise = internal.CounterClockwise
)

var ErrOutOfSequence = internal.ErrOutOfSequence

func NewDiagram(points []Point, bounds Rectangle, opts Options) *Diagram {
	return internal.NewDiagram(points, bounds, opts)
}

func ReorderEdges(edges []*Edge, c Criterion) ([]*Edge, []Side, bool) {
	return internal.ReorderEdges(edges, c)
}

func KruskalTree(segments []LineSegment, treeType TreeType) []LineSegment {
	return internal.KruskalTree(segments, treeType)
}

func Relax(points []Point, bounds Rectangle, iterations int, opts Options) []Point {
	return internal.Relax(points, bounds, iterations, opts)
}

func RandomPoints(n int, bounds Rectangle, margin float64, src rand.Source) []Point {
	return internal.RandomPoints(n, bounds, margin, src)
}

func NewParkMiller(seed int64) *ParkMiller {
	return internal.NewParkMiller(seed)
}

func ParseSVGSites(r io.Reader) (*SVGSites, error) {
	return internal.ParseSVGSites(r)
}

// Convert a recovered panic from this package into an error. Panics that
// didn't come from the package are re-raised.
func HandleVoronoiPanicRecover(r interface{}) error {
	return internal.HandleVoronoiPanicRecover(r)
}
