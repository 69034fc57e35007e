// Package voronoi constructs the planar Voronoi diagram of a finite set of
// two-dimensional points using Fortune's sweep-line algorithm, optionally
// clipped to an axis-aligned rectangle.
//
// # Overview
//
// [Build] is the package's entry point. It drives a sweep coordinator through
// four tightly coupled subsystems: an indexed min-heap event queue (site and
// circle events, ordered by sweep directrix position), an indexed red-black
// tree beach line (the ordered sequence of parabolic arcs the sweep line
// currently touches), a doubly-connected edge list recording the emerging
// planar subdivision, and a clipper that rewrites unbounded faces against a
// rectangle when one is requested.
//
// # Coordinate System
//
// This library assumes a standard Cartesian coordinate system where the
// x-axis increases to the right and the y-axis increases upward.
//
// # Precision Control with Epsilon
//
// Sweep-line construction is sensitive to floating-point precision: the event
// queue's ordering, the beach line's breakpoint search, and the clipper's
// bounds-edge classification all compare coordinates that are, in exact
// arithmetic, often equal. [options.WithEpsilon] lets a caller tune the
// absolute tolerance used throughout; [DefaultEpsilon] is used when none is
// given.
//
// # Acknowledgments
//
// The sweep coordinator, beach line, event queue, and DCEL clipper in this
// package follow the structure of Fortune's algorithm as presented by Steven
// Fortune ("A sweepline algorithm for Voronoi diagrams", Algorithmica,
// 1987).
package voronoi
