// Package types defines small shared vocabulary types used across the voronoi library.
//
// Currently this is limited to [BoundSide], the enum identifying which edge of an
// axis-aligned clip rectangle a point or crossing lies on.
package types
