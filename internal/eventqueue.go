package internal

// Pending circle events, bucketed on yStar. Each bucket is a singly linked
// list hanging off a dummy head, sorted by (yStar, vertex x).
type EventQueue struct {
	yMin, deltaY float64
	hash         []*HalfEdge
	count        int
	minBucket    int
}

func NewEventQueue(yMin, deltaY float64, sqrtSites int) *EventQueue {
	hashSize := 4 * sqrtSites
	if hashSize < 1 {
		hashSize = 1
	}
	q := &EventQueue{
		yMin:   yMin,
		deltaY: deltaY,
		hash:   make([]*HalfEdge, hashSize),
	}
	for i := range q.hash {
		q.hash[i] = &HalfEdge{state: sentinel}
	}
	return q
}

func (q *EventQueue) bucket(halfEdge *HalfEdge) int {
	return bucketIndex(halfEdge.yStar, q.yMin, q.deltaY, len(q.hash))
}

// Queue a half edge. Its vertex and yStar must already be set.
func (q *EventQueue) Insert(halfEdge *HalfEdge) {
	if halfEdge.vertex == nil {
		fatalf("%v queued without a vertex", halfEdge)
	}
	insertionBucket := q.bucket(halfEdge)
	if insertionBucket < q.minBucket {
		q.minBucket = insertionBucket
	}
	previous := q.hash[insertionBucket]
	for next := previous.next; next != nil; next = previous.next {
		if halfEdge.yStar < next.yStar ||
			(halfEdge.yStar == next.yStar && halfEdge.vertex.X <= next.vertex.X) {
			break
		}
		previous = next
	}
	halfEdge.next = previous.next
	previous.next = halfEdge
	q.count++
}

// Dequeue a half edge and clear its vertex. Does nothing if the half edge has
// no pending event.
func (q *EventQueue) Remove(halfEdge *HalfEdge) {
	if halfEdge.vertex == nil {
		return
	}
	previous := q.hash[q.bucket(halfEdge)]
	for previous.next != nil && previous.next != halfEdge {
		previous = previous.next
	}
	if previous.next == nil {
		return
	}
	previous.next = halfEdge.next
	q.count--
	halfEdge.vertex = nil
	halfEdge.next = nil
}

func (q *EventQueue) Empty() bool {
	return q.count == 0
}

func (q *EventQueue) Len() int {
	return q.count
}

func (q *EventQueue) adjustMinBucket() {
	for q.minBucket < len(q.hash)-1 && q.hash[q.minBucket].next == nil {
		q.minBucket++
	}
}

// Coordinates of the earliest event: the vertex's x, and yStar. Only valid
// when the queue is not empty.
func (q *EventQueue) Min() Point {
	q.adjustMinBucket()
	answer := q.hash[q.minBucket].next
	return Point{answer.vertex.X, answer.yStar}
}

// Remove and return the earliest event. Its vertex is left in place for the
// caller.
func (q *EventQueue) ExtractMin() *HalfEdge {
	if q.count == 0 {
		fatal(ErrOutOfSequence, "extract from an empty event queue")
	}
	q.adjustMinBucket()
	head := q.hash[q.minBucket]
	answer := head.next
	head.next = answer.next
	q.count--
	answer.next = nil
	return answer
}
