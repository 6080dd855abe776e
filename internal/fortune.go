package internal

import (
	"math"

	"github.com/osuushi/voronoi/dbg"
	"go.uber.org/zap"
)

// One run of Fortune's algorithm. Everything the sweep produces, including
// the edge and vertex counters, belongs to the run, so separate diagrams never
// share state.
type sweep struct {
	logger *zap.Logger
	sites  *SiteList

	edgeList *EdgeList
	queue    *EventQueue

	// The first site in sweep order. Sentinels report it as their region.
	bottomMost *Site

	edges     []*Edge
	vertices  []*Vertex
	triangles []Triangle

	edgeCount   int
	vertexCount int
}

func newSweep(sites *SiteList, logger *zap.Logger) *sweep {
	return &sweep{sites: sites, logger: logger}
}

func (s *sweep) leftRegion(he *HalfEdge) *Site {
	edge := he.Edge()
	if edge == nil {
		return s.bottomMost
	}
	return edge.Site(he.Side)
}

func (s *sweep) rightRegion(he *HalfEdge) *Site {
	edge := he.Edge()
	if edge == nil {
		return s.bottomMost
	}
	return edge.Site(he.Side.Other())
}

func (s *sweep) bisect(s0, s1 *Site) *Edge {
	edge := newBisectingEdge(s0, s1, s.edgeCount)
	s.edgeCount++
	s.edges = append(s.edges, edge)
	if ce := s.logger.Check(zap.DebugLevel, "bisector"); ce != nil {
		ce.Write(dbg.Field("edge", edge), zap.Stringer("line", edge))
	}
	return edge
}

// Queue a circle event for halfEdge at vertex, replacing any pending one.
func (s *sweep) schedule(halfEdge *HalfEdge, vertex *Vertex, site *Site) {
	s.queue.Remove(halfEdge)
	halfEdge.vertex = vertex
	halfEdge.yStar = vertex.Y + site.Distance(vertex.Point)
	s.queue.Insert(halfEdge)
	if ce := s.logger.Check(zap.DebugLevel, "circle event queued"); ce != nil {
		ce.Write(
			dbg.Field("halfEdge", halfEdge),
			zap.Stringer("at", vertex.Point),
			zap.Float64("yStar", halfEdge.yStar),
		)
	}
}

func (s *sweep) run() {
	dataBounds := s.sites.SiteBounds()
	sqrtSites := int(math.Sqrt(float64(s.sites.Len() + 4)))
	s.queue = NewEventQueue(dataBounds.Y, dataBounds.Height, sqrtSites)
	s.edgeList = NewEdgeList(dataBounds.X, dataBounds.Width, sqrtSites)

	s.bottomMost = s.sites.Next()
	newSite := s.sites.Next()

	for {
		if newSite != nil && (s.queue.Empty() || CompareByYThenX(newSite.Point, s.queue.Min()) <= 0) {
			s.siteEvent(newSite)
			newSite = s.sites.Next()
		} else if !s.queue.Empty() {
			s.circleEvent()
		} else {
			break
		}
	}

	s.logger.Debug("sweep finished",
		zap.Int("edges", len(s.edges)),
		zap.Int("vertices", len(s.vertices)),
		zap.Int("triangles", len(s.triangles)),
	)
}

func (s *sweep) siteEvent(newSite *Site) {
	leftBound := s.edgeList.LeftBound(newSite.Point)
	rightBound := leftBound.right
	bottomSite := s.rightRegion(leftBound)
	if ce := s.logger.Check(zap.DebugLevel, "site event"); ce != nil {
		ce.Write(
			zap.Stringer("site", newSite),
			dbg.Field("leftBound", leftBound),
			zap.Stringer("arc", bottomSite),
		)
	}

	edge := s.bisect(bottomSite, newSite)

	bisector := newHalfEdge(edge, Left)
	s.edgeList.Insert(leftBound, bisector)
	if vertex := intersect(leftBound, bisector); vertex != nil {
		s.schedule(leftBound, vertex, newSite)
	}

	leftBound = bisector
	bisector = newHalfEdge(edge, Right)
	s.edgeList.Insert(leftBound, bisector)
	if vertex := intersect(bisector, rightBound); vertex != nil {
		s.schedule(bisector, vertex, newSite)
	}
}

func (s *sweep) circleEvent() {
	leftBound := s.queue.ExtractMin()
	leftLeftBound := leftBound.left
	rightBound := leftBound.right
	rightRightBound := rightBound.right

	bottomSite := s.leftRegion(leftBound)
	topSite := s.rightRegion(rightBound)
	// These three sites are a Delaunay triangle
	s.triangles = append(s.triangles, Triangle{bottomSite, topSite, s.rightRegion(leftBound)})

	v := leftBound.vertex
	v.setIndex(s.vertexCount)
	s.vertexCount++
	s.vertices = append(s.vertices, v)
	if ce := s.logger.Check(zap.DebugLevel, "circle event"); ce != nil {
		ce.Write(
			zap.Stringer("vertex", v),
			dbg.Field("leftBound", leftBound),
			dbg.Field("rightBound", rightBound),
		)
	}

	leftBound.Edge().setVertex(leftBound.Side, v)
	rightBound.Edge().setVertex(rightBound.Side, v)
	s.edgeList.Remove(leftBound)
	s.queue.Remove(rightBound)
	s.edgeList.Remove(rightBound)

	side := Left
	if bottomSite.Y > topSite.Y {
		bottomSite, topSite = topSite, bottomSite
		side = Right
	}
	edge := s.bisect(bottomSite, topSite)
	bisector := newHalfEdge(edge, side)
	s.edgeList.Insert(leftLeftBound, bisector)
	edge.setVertex(side.Other(), v)

	if vertex := intersect(leftLeftBound, bisector); vertex != nil {
		s.schedule(leftLeftBound, vertex, bottomSite)
	}
	if vertex := intersect(bisector, rightRightBound); vertex != nil {
		s.schedule(bisector, vertex, bottomSite)
	}
}

// Clip every edge to the plot bounds. Run once, after the sweep.
func (s *sweep) clip(bounds Rectangle) {
	for _, edge := range s.edges {
		edge.clipVertices(bounds)
	}
}
