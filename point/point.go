// Package point defines the foundational geometric primitive used throughout the
// voronoi library, the Point type.
//
// # Overview
//
// Point represents a two-dimensional point with float64 coordinates. It provides
// the small set of vector operations the sweep coordinator and clipper need:
// translation, vector arithmetic, distance, and epsilon-tolerant equality.
//
// # Notes
//
//   - Floating-point operations may introduce precision errors. Eq accepts an
//     epsilon via [options.WithEpsilon] for approximate comparisons.
package point

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/fortunesweep/voronoi/numeric"
	"github.com/fortunesweep/voronoi/options"
)

var origin Point

func init() {
	origin = New(0, 0)
}

// Origin returns the origin point (0,0) in the 2D coordinate system.
func Origin() Point {
	return origin
}

// Point represents a point in two-dimensional space with x and y coordinates of type float64.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// Add returns the sum of two points as if they were vectors.
func (p Point) Add(q Point) Point {
	return Point{x: p.x + q.x, y: p.y + q.y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return New(p.x-q.x, p.y-q.y)
}

// Coordinates returns the X and Y coordinates of the Point as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// DistanceToPoint calculates the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Hypot(q.x-p.x, q.y-p.y)
}

// Eq determines whether p is equal to q, optionally within an epsilon tolerance
// supplied via [options.WithEpsilon].
func (p Point) Eq(q Point, opts ...options.GeometryOptionsFunc) bool {
	resolved := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	return numeric.FloatEquals(p.x, q.x, resolved.Epsilon) && numeric.FloatEquals(p.y, q.y, resolved.Epsilon)
}

// MarshalJSON serializes Point as JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON deserializes JSON into a Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = temp.X
	p.y = temp.Y
	return nil
}

// String returns a string representation of the Point in the format "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.x, p.y)
}

// X returns the x-coordinate of the Point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the Point.
func (p Point) Y() float64 {
	return p.y
}
