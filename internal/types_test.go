package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSideOther(t *testing.T) {
	assert.Equal(t, Right, Left.Other())
	assert.Equal(t, Left, Right.Other())
	assert.Equal(t, "left", Left.String())
}

func TestRectangle(t *testing.T) {
	r := Rectangle{X: 1, Y: 2, Width: 3, Height: 4}
	assert.Equal(t, 1.0, r.Left())
	assert.Equal(t, 4.0, r.Right())
	assert.Equal(t, 2.0, r.Top())
	assert.Equal(t, 6.0, r.Bottom())
	assert.True(t, r.Contains(Point{1, 2}))
	assert.True(t, r.Contains(Point{4, 6}))
	assert.False(t, r.Contains(Point{0, 3}))

	corners := Polygon{r.Corners()}
	assert.Equal(t, CounterClockwise, corners.Winding())
	assert.InDelta(t, 12.0, corners.Area(), 1e-12)

	assert.Equal(t, Rectangle{2, 3, 1, 2}, r.Inset(1))
}

func TestPolygon(t *testing.T) {
	square := Polygon{[]Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}}

	t.Run("area and winding", func(t *testing.T) {
		assert.Equal(t, 8.0, square.SignedDoubleArea())
		assert.Equal(t, 4.0, square.Area())
		assert.Equal(t, CounterClockwise, square.Winding())
		assert.Equal(t, Clockwise, square.Reverse().Winding())
		assert.Equal(t, WindingNone, Polygon{[]Point{{0, 0}, {1, 1}, {2, 2}}}.Winding())
	})

	t.Run("convexity", func(t *testing.T) {
		assert.True(t, square.IsConvex(Tolerance))
		// Collinear points don't break convexity
		assert.True(t, Polygon{[]Point{{0, 0}, {1, 0}, {2, 0}, {2, 2}, {0, 2}}}.IsConvex(Tolerance))
		dart := Polygon{[]Point{{0, 0}, {2, 1}, {4, 0}, {2, 4}}}
		assert.False(t, dart.IsConvex(Tolerance))
	})

	t.Run("centroid", func(t *testing.T) {
		assert.Equal(t, Point{1, 1}, square.Centroid())
		assert.Equal(t, Point{1, 1}, square.Reverse().Centroid())
		line := Polygon{[]Point{{0, 0}, {2, 2}}}
		assert.Equal(t, Point{1, 1}, line.Centroid())
	})
}

func TestPoint(t *testing.T) {
	assert.Equal(t, 5.0, Point{0, 0}.Distance(Point{3, 4}))
	assert.Equal(t, Point{1, 2}, Point{0, 0}.Interpolate(Point{2, 4}, 0.5))
	assert.True(t, Point{1, 2}.IsFinite())
	assert.False(t, Point{math.NaN(), 2}.IsFinite())
	assert.False(t, Point{1, math.Inf(-1)}.IsFinite())
}

func TestCompareByYThenX(t *testing.T) {
	assert.Equal(t, -1, CompareByYThenX(Point{5, 0}, Point{0, 1}))
	assert.Equal(t, 1, CompareByYThenX(Point{0, 1}, Point{5, 0}))
	assert.Equal(t, -1, CompareByYThenX(Point{0, 1}, Point{5, 1}))
	assert.Equal(t, 0, CompareByYThenX(Point{5, 1}, Point{5, 1}))
}

func TestBucketIndex(t *testing.T) {
	assert.Equal(t, 0, bucketIndex(3, 0, 0, 8))
	assert.Equal(t, 0, bucketIndex(-1, 0, 10, 8))
	assert.Equal(t, 4, bucketIndex(5, 0, 10, 8))
	assert.Equal(t, 7, bucketIndex(10, 0, 10, 8))
	assert.Equal(t, 7, bucketIndex(50, 0, 10, 8))
	assert.Equal(t, 0, bucketIndex(math.NaN(), 0, 10, 8))
}
