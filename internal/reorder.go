package internal

type Criterion int

const (
	// Chain edges through shared Voronoi vertices (a cell boundary).
	ByVertex Criterion = iota
	// Chain edges through shared sites (the convex hull).
	BySite
)

// The two ends of an edge under the criterion. Ends are compared by identity,
// and a nil vertex matches another nil vertex, so two unbounded edges chain
// through infinity.
func endpoints(e *Edge, c Criterion) (left, right interface{}) {
	if c == ByVertex {
		return e.LeftVertex(), e.RightVertex()
	}
	return e.LeftSite(), e.RightSite()
}

func finiteEndpoints(e *Edge, c Criterion) bool {
	if c != ByVertex {
		return true
	}
	for _, v := range []*Vertex{e.LeftVertex(), e.RightVertex()} {
		if v != nil && !v.IsFinite() {
			return false
		}
	}
	return true
}

// Stitch edges into a chain where consecutive edges share an endpoint. The
// orientation of each edge says which of its ends comes first: Left means the
// edge runs left to right along the chain.
//
// Edges are placed greedily, pass after pass, at whichever end of the chain
// they fit. If a whole pass places nothing, the edges can't form one chain;
// the partial chain is returned with ok false. If any edge has a non-finite
// vertex, nothing is returned.
func ReorderEdges(edges []*Edge, c Criterion) (ordered []*Edge, orientations []Side, ok bool) {
	if len(edges) == 0 {
		return nil, nil, true
	}
	for _, e := range edges {
		if !finiteEndpoints(e, c) {
			return nil, nil, false
		}
	}

	done := make([]bool, len(edges))
	ordered = []*Edge{edges[0]}
	orientations = []Side{Left}
	firstPoint, lastPoint := endpoints(edges[0], c)
	done[0] = true
	doneCount := 1

	for doneCount < len(edges) {
		progress := false
		for i := 1; i < len(edges); i++ {
			if done[i] {
				continue
			}
			edge := edges[i]
			leftPoint, rightPoint := endpoints(edge, c)
			switch {
			case leftPoint == lastPoint:
				lastPoint = rightPoint
				ordered = append(ordered, edge)
				orientations = append(orientations, Left)
			case rightPoint == firstPoint:
				firstPoint = leftPoint
				ordered = append([]*Edge{edge}, ordered...)
				orientations = append([]Side{Left}, orientations...)
			case leftPoint == firstPoint:
				firstPoint = rightPoint
				ordered = append([]*Edge{edge}, ordered...)
				orientations = append([]Side{Right}, orientations...)
			case rightPoint == lastPoint:
				lastPoint = leftPoint
				ordered = append(ordered, edge)
				orientations = append(orientations, Right)
			default:
				continue
			}
			done[i] = true
			doneCount++
			progress = true
		}
		if !progress {
			return ordered, orientations, false
		}
	}
	return ordered, orientations, true
}
