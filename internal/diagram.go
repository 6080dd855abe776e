package internal

import (
	"math"

	"go.uber.org/zap"
)

type Options struct {
	// Receives a debug trace of the sweep. Defaults to a no-op logger.
	Logger *zap.Logger
	// Per-point weight and caller data. Either may be nil; otherwise it must be
	// the same length as the points.
	Weights []float64
	Data    []interface{}
}

// A computed Voronoi diagram and its dual Delaunay triangulation. All queries
// are read-only apart from lazily memoized regions, so a Diagram must not be
// queried from several goroutines at once.
type Diagram struct {
	bounds Rectangle
	logger *zap.Logger

	sites        *SiteList
	sitesByPoint map[Point]*Site
	// Sites bucketed on a grid of the merge tolerance, for finding near
	// duplicates.
	siteGrid map[gridCell][]*Site

	edges     []*Edge
	vertices  []*Vertex
	triangles []Triangle
}

// Run the sweep over points and clip the result to bounds.
//
// Points closer together than the bounds' tolerance are merged into one site:
// the first point's site is kept, and the weight and data of later duplicates
// overwrite it. Sites any closer than that would give bisectors too close to
// parallel to intersect. Points with NaN or infinite coordinates are skipped.
func NewDiagram(points []Point, bounds Rectangle, opts Options) *Diagram {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Weights != nil && len(opts.Weights) != len(points) {
		fatalf("got %d weights for %d points", len(opts.Weights), len(points))
	}
	if opts.Data != nil && len(opts.Data) != len(points) {
		fatalf("got %d data values for %d points", len(opts.Data), len(points))
	}

	d := &Diagram{
		bounds:       bounds,
		logger:       logger,
		sites:        &SiteList{},
		sitesByPoint: make(map[Point]*Site),
		siteGrid:     make(map[gridCell][]*Site),
	}
	for i, p := range points {
		var weight float64
		var data interface{}
		if opts.Weights != nil {
			weight = opts.Weights[i]
		}
		if opts.Data != nil {
			data = opts.Data[i]
		}
		d.addSite(p, weight, data)
	}

	s := newSweep(d.sites, logger)
	s.run()
	s.clip(bounds)
	d.edges = s.edges
	d.vertices = s.vertices
	d.triangles = s.triangles
	return d
}

func (d *Diagram) addSite(p Point, weight float64, data interface{}) {
	if !p.IsFinite() {
		d.logger.Warn("skipping non-finite point", zap.Stringer("point", p))
		return
	}
	if site := d.nearbySite(p); site != nil {
		d.logger.Debug("merging coincident point", zap.Stringer("point", p), zap.Stringer("site", site))
		site.Weight = weight
		site.Data = data
		d.sitesByPoint[p] = site
		return
	}
	site := NewSite(p, d.sites.Len(), weight, data)
	d.sites.Push(site)
	d.sitesByPoint[p] = site
	cell := d.cellOf(p)
	d.siteGrid[cell] = append(d.siteGrid[cell], site)
}

type gridCell struct {
	x, y float64
}

func (d *Diagram) cellOf(p Point) gridCell {
	eps := d.bounds.tolerance()
	return gridCell{math.Floor(p.X / eps), math.Floor(p.Y / eps)}
}

// An existing site within tolerance of p. Anything that close is in p's grid
// cell or one of its neighbors.
func (d *Diagram) nearbySite(p Point) *Site {
	if site, ok := d.sitesByPoint[p]; ok {
		return site
	}
	eps := d.bounds.tolerance()
	cell := d.cellOf(p)
	for dx := -1.0; dx <= 1; dx++ {
		for dy := -1.0; dy <= 1; dy++ {
			for _, site := range d.siteGrid[gridCell{cell.x + dx, cell.y + dy}] {
				if site.Distance(p) < eps {
					return site
				}
			}
		}
	}
	return nil
}

func (d *Diagram) Bounds() Rectangle {
	return d.bounds
}

// The sites in sweep order, i.e. sorted by (y, x).
func (d *Diagram) Sites() []*Site {
	return append([]*Site(nil), d.sites.Sites()...)
}

func (d *Diagram) SitePoints() []Point {
	points := make([]Point, 0, d.sites.Len())
	for _, site := range d.sites.Sites() {
		points = append(points, site.Point)
	}
	return points
}

func (d *Diagram) SiteAt(p Point) (*Site, bool) {
	site, ok := d.sitesByPoint[p]
	return site, ok
}

func (d *Diagram) Edges() []*Edge {
	return append([]*Edge(nil), d.edges...)
}

// Voronoi vertices, in the order their circle events fired.
func (d *Diagram) Vertices() []*Vertex {
	return append([]*Vertex(nil), d.vertices...)
}

func (d *Diagram) Triangles() []Triangle {
	return append([]Triangle(nil), d.triangles...)
}

func (d *Diagram) DelaunayEdges() []LineSegment {
	return delaunayLines(d.edges)
}

func (d *Diagram) VoronoiEdges() []LineSegment {
	return visibleLines(d.edges)
}

func (d *Diagram) Region(p Point) []Point {
	site, ok := d.sitesByPoint[p]
	if !ok {
		return nil
	}
	return site.Region(d.bounds)
}

// Every site's region, in the same order as Sites.
func (d *Diagram) Regions() [][]Point {
	regions := make([][]Point, 0, d.sites.Len())
	for _, site := range d.sites.Sites() {
		regions = append(regions, site.Region(d.bounds))
	}
	return regions
}

func (d *Diagram) NeighborSites(p Point) []Point {
	site, ok := d.sitesByPoint[p]
	if !ok {
		return nil
	}
	neighbors := site.NeighborSites()
	points := make([]Point, 0, len(neighbors))
	for _, neighbor := range neighbors {
		points = append(points, neighbor.Point)
	}
	return points
}

func (d *Diagram) VoronoiBoundaryForSite(p Point) []LineSegment {
	site, ok := d.sitesByPoint[p]
	if !ok {
		return nil
	}
	return visibleLines(site.edges)
}

func (d *Diagram) DelaunayLinesForSite(p Point) []LineSegment {
	site, ok := d.sitesByPoint[p]
	if !ok {
		return nil
	}
	return delaunayLines(site.edges)
}

func (d *Diagram) hullEdges() []*Edge {
	var hull []*Edge
	for _, e := range d.edges {
		if e.IsPartOfConvexHull() {
			hull = append(hull, e)
		}
	}
	return hull
}

// The convex hull as Delaunay segments, unordered.
func (d *Diagram) Hull() []LineSegment {
	return delaunayLines(d.hullEdges())
}

// Sites on the convex hull, walking around it. When the hull isn't a closed
// loop (all sites collinear), the walk runs from one end to the other.
func (d *Diagram) HullPointsInOrder() []Point {
	edges, orientations, ok := ReorderEdges(d.hullEdges(), BySite)
	if !ok {
		d.logger.Debug("hull edges did not form a single chain", zap.Int("chained", len(edges)))
	}
	if len(edges) == 0 {
		return nil
	}
	points := make([]Point, 0, len(edges)+1)
	for i, e := range edges {
		points = append(points, e.Site(orientations[i]).Point)
	}
	last := len(edges) - 1
	if end := edges[last].Site(orientations[last].Other()).Point; end != points[0] {
		points = append(points, end)
	}
	return points
}

func (d *Diagram) SpanningTree(treeType TreeType) []LineSegment {
	return KruskalTree(d.DelaunayEdges(), treeType)
}

// For each site, the largest circle around it that fits in its region when
// measured to its nearest neighbor. Radius is zero when that neighbor is
// across a hull edge, or when there is no neighbor at all.
func (d *Diagram) Circles() []Circle {
	circles := make([]Circle, 0, d.sites.Len())
	for _, site := range d.sites.Sites() {
		var radius float64
		if nearest := site.NearestEdge(); nearest != nil && !nearest.IsPartOfConvexHull() {
			radius = nearest.SiteDistance() * 0.5
		}
		circles = append(circles, Circle{site.Point, radius})
	}
	return circles
}

// The site closest to p. Linear in the number of sites.
func (d *Diagram) NearestSitePoint(p Point) (Point, bool) {
	var nearest *Site
	var best float64
	for _, site := range d.sites.Sites() {
		if distance := site.Distance(p); nearest == nil || distance < best {
			nearest, best = site, distance
		}
	}
	if nearest == nil {
		return Point{}, false
	}
	return nearest.Point, true
}

func delaunayLines(edges []*Edge) []LineSegment {
	lines := make([]LineSegment, 0, len(edges))
	for _, e := range edges {
		lines = append(lines, e.DelaunayLine())
	}
	return lines
}

func visibleLines(edges []*Edge) []LineSegment {
	var lines []LineSegment
	for _, e := range edges {
		if line, ok := e.VoronoiEdge(); ok {
			lines = append(lines, line)
		}
	}
	return lines
}
