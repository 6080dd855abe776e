package internal

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// What to draw, and how big. Zero values give a bare outline of the Voronoi
// edges at one pixel per unit.
type RenderOptions struct {
	Scale   float64
	Padding float64

	FillRegions  bool
	Sites        bool
	Voronoi      bool
	Delaunay     bool
	Hull         bool
	SpanningTree bool
	Circles      bool
}

// Fill colors for regions whose site carries no color.Color in its Data.
var regionPalette = []color.RGBA{
	colornames.Lightsteelblue,
	colornames.Palegreen,
	colornames.Khaki,
	colornames.Lightsalmon,
	colornames.Plum,
	colornames.Paleturquoise,
	colornames.Wheat,
	colornames.Lightpink,
}

var (
	backgroundColor   = colornames.Black
	siteColor         = colornames.White
	voronoiColor      = colornames.Cyan
	delaunayColor     = colornames.Orange
	hullColor         = colornames.Red
	spanningTreeColor = colornames.Yellow
	circleColor       = colornames.Limegreen
)

func (o RenderOptions) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

// The fill color for a site: its Data if that's a color, otherwise a palette
// entry picked by index.
func siteFill(site *Site) color.Color {
	if c, ok := site.Data.(color.Color); ok {
		return c
	}
	return regionPalette[CircularIndex(site.Index, len(regionPalette))]
}

// Set up a context covering the diagram bounds plus padding, in diagram
// coordinates. The y axis points down, as the bounds do.
func (d *Diagram) newContext(opts RenderOptions) *gg.Context {
	scale := opts.scale()
	width := int(scale*d.bounds.Width + 2*opts.Padding)
	height := int(scale*d.bounds.Height + 2*opts.Padding)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := gg.NewContext(width, height)
	c.SetColor(backgroundColor)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(opts.Padding, opts.Padding)
	c.Scale(scale, scale)
	c.Translate(-d.bounds.X, -d.bounds.Y)
	return c
}

func (d *Diagram) Render(opts RenderOptions) image.Image {
	c := d.newContext(opts)
	scale := opts.scale()
	// Line widths are given in pixels
	lineWidth := 1 / scale

	if opts.FillRegions {
		for _, site := range d.sites.Sites() {
			region := site.Region(d.bounds)
			if len(region) < 3 {
				continue
			}
			drawPolyline(c, region, true)
			c.SetColor(siteFill(site))
			c.Fill()
		}
	}

	drawSegments := func(segments []LineSegment, col color.Color, width float64) {
		if len(segments) == 0 {
			return
		}
		for _, segment := range segments {
			c.MoveTo(segment.P0.X, segment.P0.Y)
			c.LineTo(segment.P1.X, segment.P1.Y)
		}
		c.SetColor(col)
		c.SetLineWidth(width)
		c.Stroke()
	}

	if opts.Delaunay {
		drawSegments(d.DelaunayEdges(), delaunayColor, lineWidth)
	}
	if opts.Voronoi || !(opts.FillRegions || opts.Delaunay || opts.Hull || opts.SpanningTree) {
		drawSegments(d.VoronoiEdges(), voronoiColor, 2*lineWidth)
	}
	if opts.SpanningTree {
		drawSegments(d.SpanningTree(Minimum), spanningTreeColor, 2*lineWidth)
	}
	if opts.Hull {
		if hull := d.HullPointsInOrder(); len(hull) > 1 {
			drawPolyline(c, hull, len(hull) > 2)
			c.SetColor(hullColor)
			c.SetLineWidth(2 * lineWidth)
			c.Stroke()
		}
	}
	if opts.Circles {
		for _, circle := range d.Circles() {
			if circle.Radius > 0 {
				c.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius)
			}
		}
		c.SetColor(circleColor)
		c.SetLineWidth(lineWidth)
		c.Stroke()
	}
	if opts.Sites {
		for _, site := range d.sites.Sites() {
			c.DrawCircle(site.X, site.Y, 2.5*lineWidth)
		}
		c.SetColor(siteColor)
		c.Fill()
	}
	return c.Image()
}

func drawPolyline(c *gg.Context, points []Point, closed bool) {
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	if closed {
		c.ClosePath()
	}
}

func (d *Diagram) SavePNG(path string, opts RenderOptions) error {
	if err := gg.SavePNG(path, d.Render(opts)); err != nil {
		return errors.Wrapf(err, "saving diagram to %s", path)
	}
	return nil
}

// Print the diagram to an iTerm compatible terminal, for debugging.
func (d *Diagram) DbgDraw(w io.Writer, opts RenderOptions) error {
	return errors.WithStack(imgcat.CatImage(d.Render(opts), w))
}
