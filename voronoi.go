// A Voronoi diagram and Delaunay triangulation package for Go, built on
// Fortune's sweepline algorithm.
//
// Give it a set of points and a bounding rectangle, and you get back a
// Diagram that can answer questions about the result: the clipped Voronoi
// edges, each site's region as a polygon, the Delaunay edges, the convex hull,
// and minimum or maximum spanning trees over the triangulation.
//
// Coordinates follow screen conventions: a rectangle's Top is its smallest y.
package voronoi

import "github.com/osuushi/voronoi/advanced"

type Point = advanced.Point
type Rectangle = advanced.Rectangle
type LineSegment = advanced.LineSegment
type Polygon = advanced.Polygon
type Circle = advanced.Circle
type Triangle = advanced.Triangle
type Site = advanced.Site
type Diagram = advanced.Diagram
type Options = advanced.Options
type RenderOptions = advanced.RenderOptions
type TreeType = advanced.TreeType

const (
	Minimum = advanced.Minimum
	Maximum = advanced.Maximum
)

var ErrOutOfSequence = advanced.ErrOutOfSequence

// Compute the diagram for points, clipped to bounds.
//
// Duplicate points are merged into a single site, and points with NaN or
// infinite coordinates are ignored. Weights and Data in opts, if given, must
// match the points one to one.
func Compute(points []Point, bounds Rectangle, opts Options) (result *Diagram, err error) {
	defer func() {
		recoveredErr := advanced.HandleVoronoiPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.NewDiagram(points, bounds, opts), nil
}

// Even out a set of points with Lloyd relaxation. Each iteration moves every
// point to the middle of its region.
func Relax(points []Point, bounds Rectangle, iterations int, opts Options) (result []Point, err error) {
	defer func() {
		recoveredErr := advanced.HandleVoronoiPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Relax(points, bounds, iterations, opts), nil
}
