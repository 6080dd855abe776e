package internal

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func randomDiagram(t testing.TB, n int, seed int64) (*Diagram, []Point) {
	bounds := Rectangle{0, 0, 100, 100}
	points := RandomPoints(n, bounds, 5, NewParkMiller(seed))
	return NewDiagram(points, bounds, Options{}), points
}

// Is p inside (or on) the counterclockwise convex polygon?
func convexContains(polygon []Point, p Point) bool {
	for i := range polygon {
		if cross(polygon[i], polygon[CircularIndex(i+1, len(polygon))], p) < -1e-9 {
			return false
		}
	}
	return true
}

func TestDiagramTriangle(t *testing.T) {
	points := []Point{{0, 0}, {4, 0}, {2, 3}}
	d := NewDiagram(points, Rectangle{-1, -1, 6, 6}, Options{})

	require.Len(t, d.Vertices(), 1)
	v := d.Vertices()[0]
	assert.InDelta(t, 2.0, v.X, 1e-12)
	assert.InDelta(t, 5.0/6.0, v.Y, 1e-12)
	index, ok := v.Index()
	assert.True(t, ok)
	assert.Equal(t, 0, index)

	assert.Len(t, d.Edges(), 3)
	assert.Len(t, d.VoronoiEdges(), 3)
	assert.ElementsMatch(t, []LineSegment{
		{Point{0, 0}, Point{4, 0}},
		{Point{0, 0}, Point{2, 3}},
		{Point{4, 0}, Point{2, 3}},
	}, d.DelaunayEdges())

	require.Len(t, d.Triangles(), 1)
	assert.ElementsMatch(t, points, d.Triangles()[0].Points())

	assert.ElementsMatch(t, points, d.HullPointsInOrder())
	assert.Len(t, d.Hull(), 3)
	assert.ElementsMatch(t, []Point{{4, 0}, {2, 3}}, d.NeighborSites(Point{0, 0}))
	assert.Len(t, d.VoronoiBoundaryForSite(Point{0, 0}), 2)
	assert.Len(t, d.DelaunayLinesForSite(Point{2, 3}), 2)

	// Every site is on the hull, so no circles
	for _, circle := range d.Circles() {
		assert.Equal(t, 0.0, circle.Radius)
	}
}

func TestDiagramTwoSites(t *testing.T) {
	bounds := Rectangle{0, 0, 4, 4}
	d := NewDiagram([]Point{{3, 2}, {1, 2}}, bounds, Options{})

	assert.Empty(t, d.Vertices())
	assert.Equal(t, []LineSegment{{Point{1, 2}, Point{3, 2}}}, d.DelaunayEdges())
	require.Len(t, d.VoronoiEdges(), 1)

	left := d.Region(Point{1, 2})
	assert.ElementsMatch(t, []Point{{2, 0}, {2, 4}, {0, 4}, {0, 0}}, left)
	assert.Equal(t, CounterClockwise, Polygon{left}.Winding())
	right := d.Region(Point{3, 2})
	assert.ElementsMatch(t, []Point{{2, 0}, {4, 0}, {4, 4}, {2, 4}}, right)
	assert.Equal(t, CounterClockwise, Polygon{right}.Winding())

	assert.ElementsMatch(t, []Point{{1, 2}, {3, 2}}, d.HullPointsInOrder())
	assert.Equal(t, []Point{{3, 2}}, d.NeighborSites(Point{1, 2}))
	assert.Len(t, d.SpanningTree(Minimum), 1)
}

func TestDiagramDegenerate(t *testing.T) {
	bounds := Rectangle{0, 0, 4, 4}

	t.Run("no sites", func(t *testing.T) {
		d := NewDiagram(nil, bounds, Options{})
		assert.Empty(t, d.Sites())
		assert.Empty(t, d.Edges())
		assert.Empty(t, d.Regions())
		assert.Empty(t, d.HullPointsInOrder())
		assert.Empty(t, d.SpanningTree(Minimum))
		_, ok := d.NearestSitePoint(Point{1, 1})
		assert.False(t, ok)
	})

	t.Run("one site", func(t *testing.T) {
		d := NewDiagram([]Point{{1, 1}}, bounds, Options{})
		assert.Empty(t, d.Edges())
		assert.Equal(t, bounds.Corners(), d.Region(Point{1, 1}))
		assert.Empty(t, d.NeighborSites(Point{1, 1}))
		assert.Empty(t, d.HullPointsInOrder())
		assert.Equal(t, []Circle{{Point{1, 1}, 0}}, d.Circles())
	})

	t.Run("unknown point", func(t *testing.T) {
		d := NewDiagram([]Point{{1, 1}}, bounds, Options{})
		assert.Nil(t, d.Region(Point{2, 2}))
		assert.Nil(t, d.NeighborSites(Point{2, 2}))
		assert.Nil(t, d.VoronoiBoundaryForSite(Point{2, 2}))
		_, ok := d.SiteAt(Point{2, 2})
		assert.False(t, ok)
	})

	t.Run("collinear horizontal", func(t *testing.T) {
		d := NewDiagram([]Point{{1, 2}, {2, 2}, {3, 2}}, bounds, Options{})
		assert.Empty(t, d.Vertices())
		assert.Len(t, d.VoronoiEdges(), 2)
		assert.Equal(t, []Point{{1, 2}, {2, 2}, {3, 2}}, d.HullPointsInOrder())

		middle := d.Region(Point{2, 2})
		assert.ElementsMatch(t, []Point{{1.5, 0}, {2.5, 0}, {2.5, 4}, {1.5, 4}}, middle)
		assert.Equal(t, CounterClockwise, Polygon{middle}.Winding())
		assert.ElementsMatch(t, []Point{{1, 2}, {3, 2}}, d.NeighborSites(Point{2, 2}))

		var total float64
		for _, region := range d.Regions() {
			total += Polygon{region}.Area()
		}
		assert.InDelta(t, 16.0, total, 1e-9)
	})

	t.Run("collinear vertical", func(t *testing.T) {
		d := NewDiagram([]Point{{2, 3}, {2, 1}, {2, 2}}, bounds, Options{})
		assert.Empty(t, d.Vertices())
		var total float64
		for _, region := range d.Regions() {
			assert.Equal(t, CounterClockwise, Polygon{region}.Winding())
			total += Polygon{region}.Area()
		}
		assert.InDelta(t, 16.0, total, 1e-9)
		assert.InDelta(t, 4.0, Polygon{d.Region(Point{2, 2})}.Area(), 1e-9)
	})

	t.Run("cocircular square", func(t *testing.T) {
		d := NewDiagram([]Point{{1, 1}, {3, 1}, {1, 3}, {3, 3}}, bounds, Options{})
		for _, site := range d.Sites() {
			region := site.Region(bounds)
			assert.InDelta(t, 4.0, Polygon{region}.Area(), 1e-9, "region of %v", site)
			assert.True(t, convexContains(region, site.Point))
		}
		for _, v := range d.Vertices() {
			assert.InDelta(t, 2.0, v.X, 1e-9)
			assert.InDelta(t, 2.0, v.Y, 1e-9)
		}
	})
}

func TestDiagramCoincidentSites(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		points := []Point{{1, 1}, {3, 1}, {1, 1}, {2, 3}, {3, 1}, {math.NaN(), 2}, {2, math.Inf(1)}}
		weights := []float64{1, 2, 3, 4, 5, 6, 7}
		data := []interface{}{"a", "b", "c", "d", "e", "f", "g"}
		d := NewDiagram(points, Rectangle{0, 0, 4, 4}, Options{Weights: weights, Data: data})

		require.Len(t, d.Sites(), 3)
		site, ok := d.SiteAt(Point{1, 1})
		require.True(t, ok)
		assert.Equal(t, 3.0, site.Weight)
		assert.Equal(t, "c", site.Data)
		site, ok = d.SiteAt(Point{3, 1})
		require.True(t, ok)
		assert.Equal(t, "e", site.Data)

		finite := func(p Point) { assert.True(t, p.IsFinite(), "%v", p) }
		for _, v := range d.Vertices() {
			finite(v.Point)
		}
		for _, line := range append(d.VoronoiEdges(), d.DelaunayEdges()...) {
			finite(line.P0)
			finite(line.P1)
		}
		for _, region := range d.Regions() {
			for _, p := range region {
				finite(p)
			}
		}
	})

	t.Run("within tolerance", func(t *testing.T) {
		bounds := Rectangle{0, 0, 100, 100}
		points := []Point{{50, 50}, {50 + 1e-10, 50}, {20, 30}, {20, 30 - 1e-13}}
		d := NewDiagram(points, bounds, Options{Data: []interface{}{"a", "b", "c", "d"}})

		require.Len(t, d.Sites(), 2)
		site, ok := d.SiteAt(Point{50 + 1e-10, 50})
		require.True(t, ok)
		assert.Equal(t, Point{50, 50}, site.Point)
		assert.Equal(t, "b", site.Data)
		assert.Equal(t, Polygon{site.Region(bounds)}.Area(), Polygon{d.Region(Point{50, 50})}.Area())

		var total float64
		for _, region := range d.Regions() {
			polygon := Polygon{region}
			assert.True(t, polygon.IsConvex(1e-9))
			total += polygon.Area()
		}
		assert.InDelta(t, 10000, total, 1e-6)
	})
}

func TestDiagramOptions(t *testing.T) {
	t.Run("mismatched weights", func(t *testing.T) {
		assert.Panics(t, func() {
			NewDiagram([]Point{{1, 1}, {2, 2}}, Rectangle{0, 0, 4, 4}, Options{Weights: []float64{1}})
		})
	})

	t.Run("mismatched data", func(t *testing.T) {
		assert.Panics(t, func() {
			NewDiagram([]Point{{1, 1}}, Rectangle{0, 0, 4, 4}, Options{Data: []interface{}{1, 2}})
		})
	})

	t.Run("trace logging", func(t *testing.T) {
		logger := zaptest.NewLogger(t, zaptest.Level(zap.DebugLevel))
		points := RandomPoints(20, Rectangle{0, 0, 10, 10}, 1, NewParkMiller(5))
		d := NewDiagram(points, Rectangle{0, 0, 10, 10}, Options{Logger: logger})
		assert.Len(t, d.Sites(), 20)
	})

	t.Run("trace names", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		d := NewDiagram([]Point{{0, 0}, {4, 0}, {2, 3}}, Rectangle{-1, -1, 6, 6}, Options{Logger: zap.New(core)})

		bisectors := logs.FilterMessage("bisector").All()
		require.Len(t, bisectors, len(d.Edges()))
		for _, entry := range bisectors {
			assert.NotEmpty(t, entry.ContextMap()["edge"])
		}
		circleEvents := logs.FilterMessage("circle event").All()
		require.Len(t, circleEvents, 1)
		assert.NotEmpty(t, circleEvents[0].ContextMap()["leftBound"])
		assert.NotEmpty(t, circleEvents[0].ContextMap()["rightBound"])
	})
}

// Properties that hold for any diagram of sites in general position.
func TestDiagramProperties(t *testing.T) {
	for _, n := range []int{3, 10, 50, 200} {
		for _, seed := range []int64{1, 2, 3} {
			t.Run(fmt.Sprintf("%d sites seed %d", n, seed), func(t *testing.T) {
				d, points := randomDiagram(t, n, seed)
				sites := d.Sites()
				require.Len(t, sites, n)
				bounds := d.Bounds()

				// Regions partition the bounds into convex cells around their sites
				var total float64
				for _, site := range sites {
					region := site.Region(bounds)
					polygon := Polygon{region}
					assert.Equal(t, CounterClockwise, polygon.Winding(), "%v", site)
					assert.True(t, polygon.IsConvex(1e-9), "%v", site)
					assert.True(t, convexContains(region, site.Point), "%v", site)
					total += polygon.Area()
				}
				assert.InDelta(t, bounds.Width*bounds.Height, total, 1e-6)

				// Euler: with h hull sites, 3n - 3 - h edges and 2n - 2 - h triangles
				hull := d.HullPointsInOrder()
				assert.Len(t, d.DelaunayEdges(), 3*n-3-len(hull))
				assert.Len(t, d.Triangles(), 2*n-2-len(hull))
				assert.Len(t, d.Vertices(), len(d.Triangles()))
				assert.True(t, Polygon{hull}.IsConvex(1e-9))

				// Vertices are equidistant from the sites of their triangle
				for i, triangle := range d.Triangles() {
					v := d.Vertices()[i]
					r := v.Distance(triangle.A.Point)
					assert.InDelta(t, r, v.Distance(triangle.B.Point), 1e-6)
					assert.InDelta(t, r, v.Distance(triangle.C.Point), 1e-6)
				}

				// Neighbors are symmetric
				for _, p := range points {
					for _, neighbor := range d.NeighborSites(p) {
						assert.Contains(t, d.NeighborSites(neighbor), p)
					}
				}

				// Spanning trees connect every site
				minimum := d.SpanningTree(Minimum)
				maximum := d.SpanningTree(Maximum)
				assert.Len(t, minimum, n-1)
				assert.Len(t, maximum, n-1)
				assert.LessOrEqual(t, totalLength(minimum), totalLength(maximum))

				// Indices follow sweep order
				for i := 1; i < len(sites); i++ {
					assert.Equal(t, -1, CompareByYThenX(sites[i-1].Point, sites[i].Point))
					assert.Less(t, sites[i-1].Index, sites[i].Index)
				}
			})
		}
	}
}

func TestNearestSitePoint(t *testing.T) {
	d, points := randomDiagram(t, 50, 9)
	for _, p := range points {
		nearest, ok := d.NearestSitePoint(Point{p.X + 1e-6, p.Y})
		assert.True(t, ok)
		assert.Equal(t, p, nearest)
	}
}

func TestCircles(t *testing.T) {
	// (2, 1) is inside the hull, so every site has an interior nearest edge
	d := NewDiagram([]Point{{0, 0}, {4, 0}, {2, 3}, {2, 1}}, Rectangle{-1, -1, 6, 6}, Options{})
	expected := map[Point]float64{
		{0, 0}: math.Sqrt(5) / 2,
		{4, 0}: math.Sqrt(5) / 2,
		{2, 3}: 1,
		{2, 1}: 1,
	}
	circles := d.Circles()
	require.Len(t, circles, 4)
	for _, circle := range circles {
		assert.InDelta(t, expected[circle.Center], circle.Radius, 1e-12, "%v", circle.Center)
	}
}

func BenchmarkNewDiagram(b *testing.B) {
	bounds := Rectangle{0, 0, 1000, 1000}
	points := RandomPoints(1000, bounds, 0, NewParkMiller(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewDiagram(points, bounds, Options{})
	}
}

func BenchmarkRegions(b *testing.B) {
	bounds := Rectangle{0, 0, 1000, 1000}
	points := RandomPoints(1000, bounds, 0, NewParkMiller(1))
	for i := 0; i < b.N; i++ {
		NewDiagram(points, bounds, Options{}).Regions()
	}
}
