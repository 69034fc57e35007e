package voronoi

import "github.com/fortunesweep/voronoi/point"

// nilIndex marks an unset vertex/half-edge/face reference in the DCEL. Plain
// slice indices are used here rather than arena handles because, unlike the
// beach line and event queue, nothing is ever removed from the mesh mid-sweep
// — entries are only deactivated in place during clipping.
const nilIndex = -1

type dcelVertex struct {
	x, y float64
}

type halfEdge struct {
	origin int // index into dcel.vertices, or nilIndex
	next   int // index into dcel.halfEdges, or nilIndex
	twin   int // index into dcel.halfEdges
	active bool
}

// dcel is the doubly-connected edge list the sweep builds incrementally: one
// face per input site, one twin-pair of half-edges per bisector between two
// neighboring sites, and one vertex per Voronoi vertex (circle-event
// collapse).
type dcel struct {
	vertices  []dcelVertex
	halfEdges []halfEdge
	faces     []int // one entry per site ID, index into halfEdges, or nilIndex
}

func newDCEL(faceCount int) *dcel {
	faces := make([]int, faceCount)
	for i := range faces {
		faces[i] = nilIndex
	}
	return &dcel{faces: faces}
}

func newHalfEdge() halfEdge {
	return halfEdge{origin: nilIndex, next: nilIndex, twin: nilIndex, active: true}
}

// ensureFace records h as the representative half-edge of faceID, unless one
// is already recorded — the first half-edge touching a face stays its
// representative for the rest of the sweep.
func (d *dcel) ensureFace(faceID, h int) {
	if d.faces[faceID] == nilIndex {
		d.faces[faceID] = h
	}
}

// createTwins allocates a new half-edge and its twin, paired so that
// twin(twin(e)) == e, and returns both indices.
func (d *dcel) createTwins() (edge, twin int) {
	edge = len(d.halfEdges)
	twin = edge + 1

	e := newHalfEdge()
	t := newHalfEdge()
	e.twin = twin
	t.twin = edge

	d.halfEdges = append(d.halfEdges, e, t)
	return edge, twin
}

// createVertex allocates a new DCEL vertex and returns its index.
func (d *dcel) createVertex(x, y float64) int {
	d.vertices = append(d.vertices, dcelVertex{x: x, y: y})
	return len(d.vertices) - 1
}

func (d *dcel) getTwin(h int) int {
	return d.halfEdges[h].twin
}

func (d *dcel) setOrigin(h, origin int) {
	d.halfEdges[h].origin = origin
}

func (d *dcel) setNext(h, next int) {
	d.halfEdges[h].next = next
}

// polygons walks each face's half-edge chain via next and returns its
// vertices in winding order, one entry per site ID. A face whose chain
// cannot be fully walked back to its start (an unclipped ray, or a face that
// never acquired any half-edges) yields an empty Polygon.
func (d *dcel) polygons() []Polygon {
	polygons := make([]Polygon, len(d.faces))
	for i, face := range d.faces {
		if face == nilIndex {
			continue
		}
		var poly Polygon
		edge := face
		for {
			if edge == nilIndex || d.halfEdges[edge].origin == nilIndex {
				edge = nilIndex
				break
			}
			v := d.vertices[d.halfEdges[edge].origin]
			poly = append(poly, point.New(v.x, v.y))
			edge = d.halfEdges[edge].next
			if edge == face {
				break
			}
		}
		if edge == face {
			polygons[i] = poly
		}
	}
	return polygons
}
