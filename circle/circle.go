// Package circle represents the circumscribed circle of a beach-line arc triple,
// the geometric object a circle event is scheduled against.
//
// # Overview
//
// The [Circle] type represents a circle defined by a center point and a radius.
// Besides the ordinary [New] constructor, this package provides
// [FromThreePoints], which computes the circle through three points (their
// circumcircle) via [numeric.Circumcenter] — the predicate the sweep
// coordinator uses to decide whether, and where, a circle event should fire.
package circle

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/fortunesweep/voronoi/numeric"
	"github.com/fortunesweep/voronoi/point"
)

// Circle represents a circle in 2D space with a center point and a radius.
type Circle struct {
	center point.Point
	radius float64
}

// New creates a new Circle with the specified center coordinates and radius.
func New(x, y, radius float64) Circle {
	return Circle{center: point.New(x, y), radius: math.Abs(radius)}
}

// FromThreePoints computes the circle passing through three points: the
// circumcircle of the triangle they form.
//
// ok is false when the three points are collinear (no finite circumcircle
// exists), per [numeric.Circumcenter].
func FromThreePoints(p1, p2, p3 point.Point, epsilon float64) (c Circle, ok bool) {
	x1, y1 := p1.Coordinates()
	x2, y2 := p2.Coordinates()
	x3, y3 := p3.Coordinates()

	cx, cy, r, found := numeric.Circumcenter(x1, y1, x2, y2, x3, y3, epsilon)
	if !found {
		return Circle{}, false
	}
	return Circle{center: point.New(cx, cy), radius: r}, true
}

// Center returns the circle's center point.
func (c Circle) Center() point.Point {
	return c.center
}

// Radius returns the circle's radius.
func (c Circle) Radius() float64 {
	return c.radius
}

// MarshalJSON serializes Circle as JSON.
func (c Circle) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Center point.Point `json:"center"`
		Radius float64     `json:"radius"`
	}{Center: c.center, Radius: c.radius})
}

// String returns a string representation of the circle.
func (c Circle) String() string {
	return fmt.Sprintf("Circle[center=%s, radius=%v]", c.center, c.radius)
}
