package voronoi

import (
	"math"
	"sort"

	"github.com/google/btree"

	"github.com/fortunesweep/voronoi/bounds"
	"github.com/fortunesweep/voronoi/circle"
	"github.com/fortunesweep/voronoi/numeric"
	"github.com/fortunesweep/voronoi/options"
	"github.com/fortunesweep/voronoi/point"
)

// edgeEntry is the item stored in a sweepState's edgesBySitePair tree: the
// site pair it is keyed by, alongside the (possibly still-open) Edge itself.
type edgeEntry struct {
	pair sitePair
	edge Edge
}

func edgeEntryLess(a, b edgeEntry) bool {
	if a.pair.a != b.pair.a {
		return a.pair.a < b.pair.a
	}
	return a.pair.b < b.pair.b
}

// DefaultEpsilon is the absolute tolerance applied to geometric predicates
// (breakpoint comparisons, circumcenter degeneracy, bounds-edge
// classification) when the caller does not supply one via
// [options.WithEpsilon]. Unlike the rest of this library's ambient use of
// [options.GeometryOptions], a zero epsilon is not useful here: the sweep's
// ordering comparisons need a tolerance to treat near-coincident events and
// near-collinear triples consistently, so Build substitutes this value
// whenever the resolved epsilon is exactly zero.
const DefaultEpsilon = 1e-12

// sweepState holds all of the mutable structures the coordinator threads
// through one run of the sweep: the event queue, the beach line, the
// mapping from in-progress arc to its scheduled circle event, the emerging
// mesh, and the bookkeeping needed to stitch that mesh's half-edges as
// arcs split and collapse.
type sweepState struct {
	epsilon float64

	events *eventQueue
	beach  *beachLine
	dcel   *dcel

	eventByArc      map[ArcHandle]EventHandle
	halfEdgeBySite  map[sitePair]int
	edgesBySitePair *btree.BTreeG[edgeEntry]
	sitesByID       map[int]Site
}

func newSweepState(siteCount int, epsilon float64) *sweepState {
	return &sweepState{
		epsilon:         epsilon,
		events:          newEventQueue(epsilon),
		beach:           newBeachLine(),
		dcel:            newDCEL(siteCount),
		eventByArc:      make(map[ArcHandle]EventHandle),
		halfEdgeBySite:  make(map[sitePair]int),
		edgesBySitePair: btree.NewG[edgeEntry](2, edgeEntryLess),
		sitesByID:       make(map[int]Site, siteCount),
	}
}

// Build runs Fortune's sweep-line algorithm over points and returns the
// resulting Voronoi diagram. Site IDs are assigned by input position.
//
// If opts requests bounds via [options.WithBounds], the mesh is clipped to
// that rectangle before the polygons are extracted; the edge list is not
// clipped. An error is returned if the requested rectangle is degenerate or
// inverted. An empty points slice
// yields an empty, non-nil Diagram and no error.
func Build(points []point.Point, opts ...options.GeometryOptionsFunc) (*Diagram, error) {
	_, diagram, err := build(points, opts...)
	return diagram, err
}

// build runs the sweep and additionally returns the internal state, so that
// tests can inspect the mesh by site identity (e.g. which half-edge bounds
// which pair of sites) rather than only through the flattened public
// [Diagram]. Build is the only exported entry point.
func build(points []point.Point, opts ...options.GeometryOptionsFunc) (*sweepState, *Diagram, error) {
	resolved := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	epsilon := resolved.Epsilon
	if epsilon == 0 {
		epsilon = DefaultEpsilon
	}

	var clipTo bounds.Bounds
	shouldClip := resolved.HasBounds
	if shouldClip {
		b, err := bounds.New(resolved.MinX, resolved.MinY, resolved.MaxX, resolved.MaxY)
		if err != nil {
			return nil, nil, err
		}
		clipTo = b
	}

	if len(points) == 0 {
		return nil, &Diagram{}, nil
	}

	sites := make([]Site, len(points))
	for i, p := range points {
		x, y := p.Coordinates()
		sites[i] = Site{X: x, Y: y, ID: i}
	}

	s := newSweepState(len(sites), epsilon)
	for _, site := range sites {
		s.sitesByID[site.ID] = site
		s.events.insert(event{kind: eventSite, site: site})
	}

	first, ok := s.events.pop()
	if !ok {
		return s, &Diagram{}, nil
	}
	s.beach.init(first.site)

	for s.events.len() > 0 {
		e, _ := s.events.pop()
		switch e.kind {
		case eventSite:
			s.handleSiteEvent(e.site)
		case eventVertex:
			s.handleVertexEvent(e)
		}
	}

	if shouldClip {
		s.dcel.clip(clipTo, epsilon)
	}

	s.synthesizeUntouchedBisectors()

	edges := make([]Edge, 0, s.edgesBySitePair.Len())
	s.edgesBySitePair.Ascend(func(item edgeEntry) bool {
		edges = append(edges, item.edge)
		return true
	})

	return s, &Diagram{Edges: edges, Polygons: s.dcel.polygons()}, nil
}

// synthesizeUntouchedBisectors covers a gap in the circle-event-driven edge
// bookkeeping: a bisector between two sites that never neighbour a third arc
// closely enough to produce a circle event gets a twin half-edge pair in the
// mesh (or, in the fully-degenerate case below, never even gets that) but
// never has addVertexToEdge called for it, so it would otherwise be missing
// from the reported edge list entirely.
//
// When the sweep placed no Voronoi vertex anywhere (every input site
// collinear, or otherwise too degenerate for any circumcenter to resolve),
// halfEdgeBySite itself cannot be trusted as the source of which pairs
// border each other: the beach line's degenerate handling of equal-y sites
// can split an arc against a stale copy of an unrelated site instead of its
// true immediate neighbour, fabricating a half-edge for a pair that isn't
// actually adjacent (e.g. sites 0 and 2 of three collinear sites 0, 1, 2,
// even though site 1 sits strictly between them). In that situation the
// correct adjacency is recovered directly from sorted site order instead.
// Otherwise, the untouched pairs really are genuine unresolved bisectors
// (most commonly: a build of exactly two sites, where no third arc ever
// exists to close a circle event), and halfEdgeBySite is used as before.
//
// Either way, every candidate is checked against bisectorCandidateValid
// before being recorded, since a synthesized point that sits closer to some
// third site than to its own two generating sites would violate the
// equidistance invariant every reported edge must satisfy.
func (s *sweepState) synthesizeUntouchedBisectors() {
	if len(s.dcel.vertices) == 0 {
		s.synthesizeFromSortedNeighbours()
		return
	}

	seen := make(map[sitePair]bool, len(s.halfEdgeBySite))
	for pair := range s.halfEdgeBySite {
		canonical := sitePair{min(pair.a, pair.b), max(pair.a, pair.b)}
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		s.synthesizeBisector(canonical)
	}
}

// synthesizeFromSortedNeighbours handles a build with no Voronoi vertex at
// all by pairing each site with its immediate neighbour in (x, y, id) order.
// For genuinely collinear input this recovers exactly the adjacent pairs
// that actually border each other; bisectorCandidateValid still guards
// against emitting a pair whose midpoint is nearer some other site.
func (s *sweepState) synthesizeFromSortedNeighbours() {
	sites := make([]Site, 0, len(s.sitesByID))
	for _, site := range s.sitesByID {
		sites = append(sites, site)
	}
	sort.Slice(sites, func(i, j int) bool {
		if sites[i].X != sites[j].X {
			return sites[i].X < sites[j].X
		}
		if sites[i].Y != sites[j].Y {
			return sites[i].Y < sites[j].Y
		}
		return sites[i].ID < sites[j].ID
	})

	for i := 1; i < len(sites); i++ {
		a, b := sites[i-1], sites[i]
		s.synthesizeBisector(sitePair{min(a.ID, b.ID), max(a.ID, b.ID)})
	}
}

// synthesizeBisector records a Half edge for canonical through the midpoint
// of its two sites — a point always on their bisector — unless an edge is
// already recorded for the pair, or the candidate point fails
// bisectorCandidateValid.
func (s *sweepState) synthesizeBisector(canonical sitePair) {
	if _, ok := s.edgesBySitePair.Get(edgeEntry{pair: sitePair{canonical.a, canonical.b}}); ok {
		return
	}
	if _, ok := s.edgesBySitePair.Get(edgeEntry{pair: sitePair{canonical.b, canonical.a}}); ok {
		return
	}

	a := s.sitesByID[canonical.a]
	b := s.sitesByID[canonical.b]
	midpoint := point.New((a.X+b.X)/2, (a.Y+b.Y)/2)
	if !s.bisectorCandidateValid(midpoint, a, b) {
		return
	}

	dx := b.Y - a.Y
	dy := a.X - b.X
	s.edgesBySitePair.ReplaceOrInsert(edgeEntry{
		pair: sitePair{canonical.a, canonical.b},
		edge: Edge{Kind: EdgeHalf, Start: midpoint, Direction: point.New(dx, dy)},
	})
}

// bisectorCandidateValid reports whether candidate is at least as close to
// a and b as it is to every other site, within epsilon. A synthesized
// bisector point failing this check would claim to border a and b while
// actually sitting inside some other site's cell, violating testable
// property #1 (no output edge point is closer to a third site than to its
// own generating pair).
func (s *sweepState) bisectorCandidateValid(candidate point.Point, a, b Site) bool {
	cx, cy := candidate.Coordinates()
	ownDistance := math.Hypot(cx-a.X, cy-a.Y)
	for id, other := range s.sitesByID {
		if id == a.ID || id == b.ID {
			continue
		}
		if math.Hypot(cx-other.X, cy-other.Y) < ownDistance-s.epsilon {
			return false
		}
	}
	return true
}

func (s *sweepState) handleSiteEvent(site Site) {
	y := site.Y
	segment := s.beach.search(func(h ArcHandle) int {
		arc := s.beach.site(h)

		leftBreak := math.Inf(-1)
		if left := s.beach.predecessor(h); !left.isNull() {
			l := s.beach.site(left)
			leftBreak = numeric.Breakpoint(l.X, l.Y, arc.X, arc.Y, y, s.epsilon)
		}
		if site.X < leftBreak {
			return -1
		}

		rightBreak := math.Inf(1)
		if right := s.beach.successor(h); !right.isNull() {
			r := s.beach.site(right)
			rightBreak = numeric.Breakpoint(arc.X, arc.Y, r.X, r.Y, y, s.epsilon)
		}
		if site.X > rightBreak {
			return 1
		}
		return 0
	})

	s.deleteVertexEvent(segment)

	leftSegment := segment
	splitSite := s.beach.site(segment)
	middleSegment := s.beach.insertAfter(segment, site)
	rightSegment := s.beach.insertAfter(middleSegment, splitSite)

	s.createVertexEvent(leftSegment)
	s.createVertexEvent(rightSegment)

	s.createHalfEdges(site, splitSite)
}

func (s *sweepState) handleVertexEvent(e event) {
	middle := e.arc
	delete(s.eventByArc, middle)

	left := s.beach.predecessor(middle)
	right := s.beach.successor(middle)
	middleSite := s.beach.delete(middle)

	s.deleteVertexEvent(left)
	s.deleteVertexEvent(right)
	s.createVertexEvent(left)
	s.createVertexEvent(right)

	vertexX := e.x
	vertexY := e.fusedY - e.radius

	leftSite := s.beach.site(left)
	rightSite := s.beach.site(right)

	lm := s.getHalfEdge(leftSite, middleSite)
	mr := s.getHalfEdge(middleSite, rightSite)
	lmTwin := s.dcel.getTwin(lm)
	mrTwin := s.dcel.getTwin(mr)

	vertex := s.dcel.createVertex(vertexX, vertexY)

	rl, rlTwin := s.createHalfEdges(rightSite, leftSite)

	s.dcel.setOrigin(lmTwin, vertex)
	s.dcel.setOrigin(mrTwin, vertex)
	s.dcel.setOrigin(rlTwin, vertex)

	s.dcel.setNext(lm, rlTwin)
	s.dcel.setNext(mr, lmTwin)
	s.dcel.setNext(rl, mrTwin)

	s.addVertexToEdge(leftSite, middleSite, vertexX, vertexY)
	s.addVertexToEdge(middleSite, rightSite, vertexX, vertexY)
	s.addVertexToEdge(rightSite, leftSite, vertexX, vertexY)
}

// createHalfEdges allocates a twinned half-edge pair for the bisector
// between left and right, records it under both orderings of the site
// pair, and seeds each face's representative half-edge if it doesn't have
// one yet. It panics if this pair already has half-edges, since the sweep
// never creates the same bisector twice.
func (s *sweepState) createHalfEdges(left, right Site) (edge, twin int) {
	if _, exists := s.halfEdgeBySite[sitePair{left.ID, right.ID}]; exists {
		panic("voronoi: half-edge already exists for this site pair")
	}
	edge, twin = s.dcel.createTwins()
	s.halfEdgeBySite[sitePair{left.ID, right.ID}] = edge
	s.halfEdgeBySite[sitePair{right.ID, left.ID}] = twin
	s.dcel.ensureFace(left.ID, edge)
	s.dcel.ensureFace(right.ID, twin)
	return edge, twin
}

func (s *sweepState) getHalfEdge(left, right Site) int {
	h, ok := s.halfEdgeBySite[sitePair{left.ID, right.ID}]
	if !ok {
		panic("voronoi: tried getting a non-existent half-edge")
	}
	return h
}

func (s *sweepState) deleteVertexEvent(segment ArcHandle) {
	if segment.isNull() {
		return
	}
	if h, ok := s.eventByArc[segment]; ok {
		s.events.delete(h)
		delete(s.eventByArc, segment)
	}
}

// createVertexEvent schedules a circle event for the triple (predecessor,
// segment, successor) if one exists, the triple is not oriented clockwise
// with y increasing upward (a clockwise triple's breakpoints diverge as the
// directrix advances in +y), and the triple's
// circumcenter is non-degenerate. It panics if segment already has a
// scheduled circle event, since every call site cancels first.
func (s *sweepState) createVertexEvent(segment ArcHandle) {
	if segment.isNull() {
		return
	}
	if _, exists := s.eventByArc[segment]; exists {
		panic("voronoi: creating an already-existing vertex event")
	}

	left := s.beach.predecessor(segment)
	right := s.beach.successor(segment)
	if left.isNull() || right.isNull() {
		return
	}

	leftSite := s.beach.site(left)
	middleSite := s.beach.site(segment)
	rightSite := s.beach.site(right)

	isClockwise := (middleSite.Y-leftSite.Y)*(rightSite.X-middleSite.X)-
		(rightSite.Y-middleSite.Y)*(middleSite.X-leftSite.X) > 0.0
	if isClockwise {
		return
	}

	c, ok := circle.FromThreePoints(
		point.New(leftSite.X, leftSite.Y),
		point.New(middleSite.X, middleSite.Y),
		point.New(rightSite.X, rightSite.Y),
		s.epsilon,
	)
	if !ok {
		return
	}
	cx, cy := c.Center().Coordinates()

	handle := s.events.insert(event{kind: eventVertex, arc: segment, x: cx, fusedY: cy + c.Radius(), radius: c.Radius()})
	s.eventByArc[segment] = handle
}

// addVertexToEdge records that (x, y) is an endpoint of the bisector between
// a and b. The first call for a given unordered pair opens a half-edge (a
// point and a direction); the second closes it into a full segment.
func (s *sweepState) addVertexToEdge(a, b Site, x, y float64) {
	key := sitePair{min(a.ID, b.ID), max(a.ID, b.ID)}
	existing, present := s.edgesBySitePair.Get(edgeEntry{pair: key})

	var updated Edge
	switch {
	case present && existing.edge.Kind == EdgeHalf:
		updated = Edge{Kind: EdgeFull, Start: existing.edge.Start, End: point.New(x, y)}
	case present:
		updated = existing.edge
	default:
		dx := b.Y - a.Y
		dy := a.X - b.X
		updated = Edge{Kind: EdgeHalf, Start: point.New(x, y), Direction: point.New(dx, dy)}
	}
	s.edgesBySitePair.ReplaceOrInsert(edgeEntry{pair: key, edge: updated})
}
