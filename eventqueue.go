package voronoi

import "github.com/fortunesweep/voronoi/numeric"

// EventHandle identifies a scheduled event. Site events are never looked up
// again once scheduled, but a circle event's handle is kept by the sweep
// coordinator so it can be deleted early if the arc it depends on vanishes
// before the event fires.
type EventHandle = slabHandle

type eventKind uint8

const (
	eventSite eventKind = iota
	eventVertex
)

// event is a site event or a circle (vertex) event, ordered by the sweep
// directrix position it fires at.
type event struct {
	kind eventKind

	// Fields for eventSite.
	site Site

	// Fields for eventVertex: arc is the collapsing middle arc, (x, fusedY)
	// is the fused sort key (circumcenter y plus circumradius, per the §4.5
	// vertex-position resolution recorded in DESIGN.md), and radius is the
	// circumradius, needed to recover the true vertex y on firing.
	arc    ArcHandle
	x      float64
	fusedY float64
	radius float64
}

// sortKey returns the (x, y) position this event orders by.
func (e event) sortKey() (x, y float64) {
	if e.kind == eventSite {
		return e.site.X, e.site.Y
	}
	return e.x, e.fusedY
}

// eventLess reports whether a should be popped before b: lexicographically by
// (y, x), matching the sweep's order of increasing y, then increasing x.
func eventLess(a, b event, epsilon float64) bool {
	ax, ay := a.sortKey()
	bx, by := b.sortKey()
	if numeric.FloatEquals(ay, by, epsilon) {
		return ax < bx && !numeric.FloatEquals(ax, bx, epsilon)
	}
	return ay < by
}

// eventQueue is a binary min-heap of events, indexed so that an event can be
// deleted by handle before it reaches the front of the queue (used when a
// beach-line arc collapses or splits before its scheduled circle event
// fires).
type eventQueue struct {
	events  *slab[event]
	heap    []slabHandle
	indexOf map[slabHandle]int
	epsilon float64
}

func newEventQueue(epsilon float64) *eventQueue {
	return &eventQueue{
		events:  newSlab[event](),
		indexOf: make(map[slabHandle]int),
		epsilon: epsilon,
	}
}

func (q *eventQueue) len() int {
	return len(q.heap)
}

// insert schedules an event and returns a handle to it.
func (q *eventQueue) insert(e event) EventHandle {
	h := q.events.insert(e)
	q.heap = append(q.heap, h)
	q.indexOf[h] = len(q.heap) - 1
	q.siftUp(len(q.heap) - 1)
	return h
}

// pop removes and returns the event with the smallest sort key. ok is false
// if the queue is empty.
func (q *eventQueue) pop() (e event, ok bool) {
	if len(q.heap) == 0 {
		return event{}, false
	}
	h := q.heap[0]
	last := len(q.heap) - 1
	q.swapAt(0, last)
	e = q.events.remove(h)
	delete(q.indexOf, h)
	q.heap = q.heap[:last]
	if len(q.heap) > 0 {
		q.siftDown(0)
	}
	return e, true
}

// delete removes the event at handle, if it is still scheduled. It reports
// whether an event was removed.
func (q *eventQueue) delete(h EventHandle) bool {
	index, present := q.indexOf[h]
	if !present {
		return false
	}
	last := len(q.heap) - 1
	q.swapAt(index, last)
	q.events.remove(h)
	delete(q.indexOf, h)
	q.heap = q.heap[:last]
	if len(q.heap) > index {
		q.siftDown(index)
		q.siftUp(index)
	}
	return true
}

func (q *eventQueue) siftUp(at int) {
	parent := parentIndex(at)
	if parent < 0 {
		return
	}
	if eventLess(*q.events.get(q.heap[at]), *q.events.get(q.heap[parent]), q.epsilon) {
		q.swapAt(at, parent)
		q.siftUp(parent)
	}
}

func (q *eventQueue) siftDown(at int) {
	left := leftIndex(at, len(q.heap))
	right := rightIndex(at, len(q.heap))
	smallest := at
	if left >= 0 && eventLess(*q.events.get(q.heap[left]), *q.events.get(q.heap[smallest]), q.epsilon) {
		smallest = left
	}
	if right >= 0 && eventLess(*q.events.get(q.heap[right]), *q.events.get(q.heap[smallest]), q.epsilon) {
		smallest = right
	}
	if smallest != at {
		q.swapAt(smallest, at)
		q.siftDown(smallest)
	}
}

func leftIndex(i, n int) int {
	child := 2*i + 1
	if child < n {
		return child
	}
	return -1
}

func rightIndex(i, n int) int {
	child := 2*i + 2
	if child < n {
		return child
	}
	return -1
}

func parentIndex(i int) int {
	if i == 0 {
		return -1
	}
	return (i - 1) / 2
}

func (q *eventQueue) swapAt(i, j int) {
	q.indexOf[q.heap[i]] = j
	q.indexOf[q.heap[j]] = i
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
}
