package voronoi

import "github.com/fortunesweep/voronoi/point"

// EdgeKind distinguishes a fully-resolved Voronoi edge from one whose far
// endpoint never collapsed before the sweep finished (a bisector ray that
// escapes to infinity, or was clipped to nothing because no bounds were
// requested).
type EdgeKind int

const (
	// EdgeHalf is a ray: a point and a direction, no far endpoint.
	EdgeHalf EdgeKind = iota
	// EdgeFull is a segment: both endpoints known.
	EdgeFull
)

// Edge is one bisector segment or ray of the diagram, bordering exactly the
// two sites named in the generating pair it came from.
type Edge struct {
	Kind EdgeKind

	// Start is always set: the known endpoint (EdgeFull) or the origin of
	// the ray (EdgeHalf).
	Start point.Point

	// End is the far endpoint, set only when Kind is EdgeFull.
	End point.Point

	// Direction is the ray's direction vector, set only when Kind is
	// EdgeHalf. It is not normalized.
	Direction point.Point
}

// Polygon is an ordered list of vertices bounding one site's Voronoi cell,
// traversed in the DCEL's half-edge winding order. An empty Polygon means
// the corresponding face could not be closed (see [Diagram.Polygons]).
type Polygon []point.Point

// Diagram is the result of [Build]: every bisector edge produced by the
// sweep, and the closed-cell polygon for each input site.
type Diagram struct {
	// Edges holds one entry per unordered site pair that shares a border,
	// ordered by ascending (lower site ID, higher site ID).
	Edges []Edge

	// Polygons holds one entry per input site, indexed by site ID. A site
	// whose face could not be closed (its starting half-edge was never
	// found, or clipping never located an inside vertex) gets an empty
	// Polygon rather than being omitted, so the slice always has the same
	// length as the input site list.
	Polygons []Polygon
}
