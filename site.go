package voronoi

// Site is an input point together with the identity it keeps throughout the
// sweep: its position among the beach line's arcs and the DCEL's faces is
// tracked by ID, not by value, so that two input points placed at the same
// coordinates are still distinguishable.
type Site struct {
	X, Y float64
	ID   int
}

// sitePair identifies an ordered pair of sites, used as the key for the
// half-edge and partial-edge lookup tables the sweep keeps while an edge's
// far endpoint is still unknown.
type sitePair struct {
	a, b int
}
