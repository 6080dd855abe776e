package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func totalLength(segments []LineSegment) float64 {
	var total float64
	for _, segment := range segments {
		total += segment.Length()
	}
	return total
}

func TestKruskalTree(t *testing.T) {
	bottom := LineSegment{Point{0, 0}, Point{1, 0}}
	right := LineSegment{Point{1, 0}, Point{1, 1}}
	top := LineSegment{Point{1, 1}, Point{0, 1}}
	left := LineSegment{Point{0, 1}, Point{0, 0}}
	diagonal := LineSegment{Point{0, 0}, Point{1, 1}}
	square := []LineSegment{diagonal, bottom, right, top, left}

	t.Run("minimum", func(t *testing.T) {
		tree := KruskalTree(square, Minimum)
		assert.Equal(t, []LineSegment{bottom, right, top}, tree)
		assert.Equal(t, 3.0, totalLength(tree))
	})

	t.Run("maximum", func(t *testing.T) {
		tree := KruskalTree(square, Maximum)
		assert.Equal(t, []LineSegment{diagonal, bottom, top}, tree)
		assert.InDelta(t, 2+math.Sqrt2, totalLength(tree), 1e-12)
	})

	t.Run("input untouched", func(t *testing.T) {
		KruskalTree(square, Minimum)
		assert.Equal(t, diagonal, square[0])
	})

	t.Run("forest", func(t *testing.T) {
		far := LineSegment{Point{10, 10}, Point{11, 10}}
		tree := KruskalTree([]LineSegment{bottom, far}, Minimum)
		assert.ElementsMatch(t, []LineSegment{bottom, far}, tree)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, KruskalTree(nil, Maximum))
	})
}

func TestUnionFind(t *testing.T) {
	sets := &unionFind{}
	for i := 0; i < 6; i++ {
		sets.add()
	}
	assert.True(t, sets.union(0, 1))
	assert.True(t, sets.union(2, 3))
	assert.True(t, sets.union(1, 3))
	assert.False(t, sets.union(0, 2))
	assert.Equal(t, sets.find(0), sets.find(3))
	assert.NotEqual(t, sets.find(0), sets.find(4))
	assert.Equal(t, 4, sets.size[sets.find(2)])

	// Finding compresses the path
	root := sets.find(3)
	for _, id := range []int{0, 1, 2, 3} {
		assert.Equal(t, root, sets.parent[id])
	}
}
