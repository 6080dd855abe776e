package internal

// The beach line: a doubly linked list of half edges between two sentinels,
// ordered left to right. A hash of buckets on x gives a starting point for
// lookups close to the answer, and is refreshed as lookups land.
type EdgeList struct {
	xMin, deltaX float64
	hash         []*HalfEdge

	leftEnd, rightEnd *HalfEdge
}

func NewEdgeList(xMin, deltaX float64, sqrtSites int) *EdgeList {
	hashSize := 2 * sqrtSites
	if hashSize < 2 {
		hashSize = 2
	}
	l := &EdgeList{
		xMin:     xMin,
		deltaX:   deltaX,
		hash:     make([]*HalfEdge, hashSize),
		leftEnd:  newSentinel(),
		rightEnd: newSentinel(),
	}
	l.leftEnd.right = l.rightEnd
	l.rightEnd.left = l.leftEnd
	l.hash[0] = l.leftEnd
	l.hash[hashSize-1] = l.rightEnd
	return l
}

func (l *EdgeList) LeftEnd() *HalfEdge  { return l.leftEnd }
func (l *EdgeList) RightEnd() *HalfEdge { return l.rightEnd }

// Insert newHalfEdge immediately to the right of leftBound.
func (l *EdgeList) Insert(leftBound, newHalfEdge *HalfEdge) {
	newHalfEdge.left = leftBound
	newHalfEdge.right = leftBound.right
	leftBound.right.left = newHalfEdge
	leftBound.right = newHalfEdge
}

// Unlink the half edge. It becomes a tombstone, so any hash bucket still
// pointing at it is treated as empty.
func (l *EdgeList) Remove(halfEdge *HalfEdge) {
	if halfEdge.state != live {
		fatalf("cannot remove %v from the beach line", halfEdge)
	}
	halfEdge.left.right = halfEdge.right
	halfEdge.right.left = halfEdge.left
	halfEdge.state = tombstone
	halfEdge.left = nil
	halfEdge.right = nil
}

// The rightmost half edge that is left of p. This is the left boundary of the
// arc directly above p.
func (l *EdgeList) LeftBound(p Point) *HalfEdge {
	bucket := bucketIndex(p.X, l.xMin, l.deltaX, len(l.hash))
	halfEdge := l.getHash(bucket)
	if halfEdge == nil {
		// The end buckets always hold the sentinels, so this terminates
		for i := 1; ; i++ {
			if halfEdge = l.getHash(bucket - i); halfEdge != nil {
				break
			}
			if halfEdge = l.getHash(bucket + i); halfEdge != nil {
				break
			}
		}
	}

	if halfEdge == l.leftEnd || (halfEdge != l.rightEnd && halfEdge.isLeftOf(p)) {
		for {
			halfEdge = halfEdge.right
			if halfEdge == l.rightEnd || !halfEdge.isLeftOf(p) {
				break
			}
		}
		halfEdge = halfEdge.left
	} else {
		for {
			halfEdge = halfEdge.left
			if halfEdge == l.leftEnd || halfEdge.isLeftOf(p) {
				break
			}
		}
	}

	if bucket > 0 && bucket < len(l.hash)-1 {
		l.hash[bucket] = halfEdge
	}
	return halfEdge
}

// The hash entry for a bucket, or nil if the bucket is out of range, empty,
// or points at a removed half edge (which also clears it).
func (l *EdgeList) getHash(bucket int) *HalfEdge {
	if bucket < 0 || bucket >= len(l.hash) {
		return nil
	}
	halfEdge := l.hash[bucket]
	if halfEdge != nil && halfEdge.state == tombstone {
		l.hash[bucket] = nil
		return nil
	}
	return halfEdge
}
