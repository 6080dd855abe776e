package internal

import (
	"fmt"
	"sort"
)

// An input generator point. A site collects every edge that borders it while
// the sweep runs; after the sweep, the only thing that changes is the lazily
// built boundary order and region.
type Site struct {
	Point
	Index  int
	Weight float64
	// Arbitrary caller metadata (a color, a label). The geometry never reads it.
	Data interface{}

	edges []*Edge

	reordered    bool
	orderedEdges []*Edge
	orientations []Side

	regionDone bool
	region     []Point
}

func NewSite(p Point, index int, weight float64, data interface{}) *Site {
	return &Site{Point: p, Index: index, Weight: weight, Data: data}
}

func (s *Site) addEdge(e *Edge) {
	s.edges = append(s.edges, e)
}

// The edges bordering the site, in the order the sweep created them.
func (s *Site) Edges() []*Edge {
	return append([]*Edge(nil), s.edges...)
}

func (s *Site) String() string {
	return fmt.Sprintf("site(%d) at %g %g", s.Index, s.X, s.Y)
}

// The site across the edge from s, or nil if the edge doesn't border s.
func (s *Site) neighborSite(e *Edge) *Site {
	switch s {
	case e.LeftSite():
		return e.RightSite()
	case e.RightSite():
		return e.LeftSite()
	}
	return nil
}

// The incident edge to the closest neighbor.
func (s *Site) NearestEdge() *Edge {
	var nearest *Edge
	for _, e := range s.edges {
		if nearest == nil || e.SiteDistance() < nearest.SiteDistance() {
			nearest = e
		}
	}
	return nearest
}

// Sites across each incident edge, in boundary order when the edges can be
// stitched into a loop.
func (s *Site) NeighborSites() []*Site {
	edges := s.boundaryEdges()
	neighbors := make([]*Site, 0, len(edges))
	for _, e := range edges {
		if neighbor := s.neighborSite(e); neighbor != nil {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// Reorder the incident edges by shared vertex, once. If the stitching fails,
// the sweep order is kept.
func (s *Site) boundaryEdges() []*Edge {
	if !s.reordered {
		s.reordered = true
		edges, orientations, ok := ReorderEdges(s.edges, ByVertex)
		if ok {
			s.orderedEdges, s.orientations = edges, orientations
		} else {
			s.orderedEdges = s.Edges()
			s.orientations = make([]Side, len(s.edges))
		}
	}
	return s.orderedEdges
}

// SiteList hands sites to the sweep in (y, x) order.
type SiteList struct {
	sites        []*Site
	currentIndex int
	sorted       bool
	bounds       Rectangle
}

func (l *SiteList) Push(site *Site) int {
	l.sorted = false
	l.sites = append(l.sites, site)
	return len(l.sites)
}

func (l *SiteList) Len() int {
	return len(l.sites)
}

// All sites, in sweep order once sorted.
func (l *SiteList) Sites() []*Site {
	return l.sites
}

// Sort the sites (once) and return the rectangle spanning them. This must be
// called before Next.
func (l *SiteList) SiteBounds() Rectangle {
	if l.sorted {
		return l.bounds
	}
	l.sort()
	l.currentIndex = 0
	l.sorted = true

	if len(l.sites) == 0 {
		l.bounds = Rectangle{}
		return l.bounds
	}
	xMin, xMax := l.sites[0].X, l.sites[0].X
	for _, site := range l.sites[1:] {
		if site.X < xMin {
			xMin = site.X
		}
		if site.X > xMax {
			xMax = site.X
		}
	}
	// Sorted on y, so the extremes are the ends of the list
	yMin := l.sites[0].Y
	yMax := l.sites[len(l.sites)-1].Y
	l.bounds = Rectangle{X: xMin, Y: yMin, Width: xMax - xMin, Height: yMax - yMin}
	return l.bounds
}

// The next site in sweep order, or nil once the list is exhausted.
func (l *SiteList) Next() *Site {
	if !l.sorted {
		fatal(ErrOutOfSequence, "site list consumed before it was sorted")
	}
	if l.currentIndex < len(l.sites) {
		site := l.sites[l.currentIndex]
		l.currentIndex++
		return site
	}
	return nil
}

// Stable sort on (y, x). Afterwards the existing set of indices is handed
// back out in ascending order, so a lower index always means a lower
// position. Tie-breaking downstream relies on this pairing.
func (l *SiteList) sort() {
	indices := make([]int, len(l.sites))
	for i, site := range l.sites {
		indices[i] = site.Index
	}
	sort.SliceStable(l.sites, func(i, j int) bool {
		return CompareByYThenX(l.sites[i].Point, l.sites[j].Point) < 0
	})
	sort.Ints(indices)
	for i, site := range l.sites {
		site.Index = indices[i]
	}
}
