package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/voronoi"
)

func TestReadPoints(t *testing.T) {
	points, err := readPoints(strings.NewReader("1 2\n\n  3.5 -4\n"))
	require.NoError(t, err)
	assert.Equal(t, []voronoi.Point{{X: 1, Y: 2}, {X: 3.5, Y: -4}}, points)

	t.Run("bad line", func(t *testing.T) {
		_, err := readPoints(strings.NewReader("1 2\n3\n"))
		assert.EqualError(t, err, "line 2: expected \"x y\", got \"3\"")
	})

	t.Run("bad number", func(t *testing.T) {
		_, err := readPoints(strings.NewReader("1 y\n"))
		assert.Error(t, err)
	})
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	diagram, err := voronoi.Compute([]voronoi.Point{{X: 1, Y: 1}}, voronoi.Rectangle{Width: 2, Height: 2}, voronoi.Options{})
	require.NoError(t, err)
	assert.EqualError(t, writeOutput(diagram, "out.gif", voronoi.RenderOptions{}), "unknown output format \".gif\"")
}
