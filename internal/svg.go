package internal

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"
)

const (
	svgSiteStyle         = "fill:rgb(255,255,255)"
	svgVoronoiStyle      = "stroke:rgb(0,255,255);stroke-width:2"
	svgDelaunayStyle     = "stroke:rgb(255,165,0);stroke-width:1"
	svgSpanningTreeStyle = "stroke:rgb(255,255,0);stroke-width:2"
	svgHullStyle         = "fill:none;stroke:rgb(255,0,0);stroke-width:2"
	svgCircleStyle       = "fill:none;stroke:rgb(50,205,50);stroke-width:1"
)

// Remembers the first write error, since svgo doesn't report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func svgFill(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("fill:rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}

// Write the diagram as SVG, with the same layers and scale as Render. SVG
// coordinates are integers, so everything is rounded to the pixel.
func (d *Diagram) WriteSVG(w io.Writer, opts RenderOptions) error {
	scale := opts.scale()
	toScreen := func(p Point) (int, int) {
		x := (p.X-d.bounds.X)*scale + opts.Padding
		y := (p.Y-d.bounds.Y)*scale + opts.Padding
		return int(math.Round(x)), int(math.Round(y))
	}
	toScreenAll := func(points []Point) ([]int, []int) {
		xs := make([]int, len(points))
		ys := make([]int, len(points))
		for i, p := range points {
			xs[i], ys[i] = toScreen(p)
		}
		return xs, ys
	}
	drawSegments := func(canvas *svg.SVG, segments []LineSegment, style string) {
		for _, segment := range segments {
			x0, y0 := toScreen(segment.P0)
			x1, y1 := toScreen(segment.P1)
			canvas.Line(x0, y0, x1, y1, style)
		}
	}

	out := &errWriter{w: w}
	canvas := svg.New(out)
	width := int(math.Ceil(d.bounds.Width*scale + 2*opts.Padding))
	height := int(math.Ceil(d.bounds.Height*scale + 2*opts.Padding))
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(0,0,0)")

	if opts.FillRegions {
		for _, site := range d.sites.Sites() {
			region := site.Region(d.bounds)
			if len(region) < 3 {
				continue
			}
			xs, ys := toScreenAll(region)
			canvas.Polygon(xs, ys, svgFill(siteFill(site)))
		}
	}
	if opts.Delaunay {
		drawSegments(canvas, d.DelaunayEdges(), svgDelaunayStyle)
	}
	if opts.Voronoi || !(opts.FillRegions || opts.Delaunay || opts.Hull || opts.SpanningTree) {
		drawSegments(canvas, d.VoronoiEdges(), svgVoronoiStyle)
	}
	if opts.SpanningTree {
		drawSegments(canvas, d.SpanningTree(Minimum), svgSpanningTreeStyle)
	}
	if opts.Hull {
		if hull := d.HullPointsInOrder(); len(hull) > 1 {
			xs, ys := toScreenAll(hull)
			if len(hull) > 2 {
				canvas.Polygon(xs, ys, svgHullStyle)
			} else {
				canvas.Polyline(xs, ys, svgHullStyle)
			}
		}
	}
	if opts.Circles {
		for _, circle := range d.Circles() {
			if circle.Radius > 0 {
				x, y := toScreen(circle.Center)
				canvas.Circle(x, y, int(math.Round(circle.Radius*scale)), svgCircleStyle)
			}
		}
	}
	if opts.Sites {
		for _, site := range d.sites.Sites() {
			x, y := toScreen(site.Point)
			canvas.Circle(x, y, 3, svgSiteStyle)
		}
	}
	canvas.End()
	return errors.Wrap(out.err, "writing svg")
}
