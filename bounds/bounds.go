// Package bounds defines the axis-aligned clip rectangle used by the DCEL clipper.
//
// This package is a direct, heavily trimmed adaptation of the geometry-kernel repo's
// general-purpose Rectangle type, narrowed to exactly the operations the clipper
// needs: containment, corner access, and a validating constructor.
package bounds

import (
	"fmt"

	"github.com/fortunesweep/voronoi/point"
)

// Bounds represents an axis-aligned rectangle defined by its minimum and maximum corners.
type Bounds struct {
	minX, minY float64
	maxX, maxY float64
}

// New creates a Bounds from the rectangle's min and max corners.
//
// Returns an error if minX >= maxX or minY >= maxY, since a degenerate or
// inverted rectangle has no interior to clip against.
func New(minX, minY, maxX, maxY float64) (Bounds, error) {
	if minX >= maxX {
		return Bounds{}, fmt.Errorf("bounds: minX (%v) must be less than maxX (%v)", minX, maxX)
	}
	if minY >= maxY {
		return Bounds{}, fmt.Errorf("bounds: minY (%v) must be less than maxY (%v)", minY, maxY)
	}
	return Bounds{minX: minX, minY: minY, maxX: maxX, maxY: maxY}, nil
}

// MinX returns the rectangle's minimum x-coordinate.
func (b Bounds) MinX() float64 { return b.minX }

// MinY returns the rectangle's minimum y-coordinate.
func (b Bounds) MinY() float64 { return b.minY }

// MaxX returns the rectangle's maximum x-coordinate.
func (b Bounds) MaxX() float64 { return b.maxX }

// MaxY returns the rectangle's maximum y-coordinate.
func (b Bounds) MaxY() float64 { return b.maxY }

// Width calculates the width of the rectangle.
func (b Bounds) Width() float64 { return b.maxX - b.minX }

// Height calculates the height of the rectangle.
func (b Bounds) Height() float64 { return b.maxY - b.minY }

// ContainsPoint checks if a given point lies within or on the boundary of the Bounds.
func (b Bounds) ContainsPoint(p point.Point) bool {
	x, y := p.Coordinates()
	return x >= b.minX && x <= b.maxX && y >= b.minY && y <= b.maxY
}

// Corner identifies one of the four corners of a Bounds rectangle.
type Corner uint8

// Valid values for Corner.
const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// Corner returns the point at the given rectangle corner.
func (b Bounds) Corner(c Corner) point.Point {
	switch c {
	case TopLeft:
		return point.New(b.minX, b.maxY)
	case TopRight:
		return point.New(b.maxX, b.maxY)
	case BottomRight:
		return point.New(b.maxX, b.minY)
	case BottomLeft:
		return point.New(b.minX, b.minY)
	default:
		panic(fmt.Errorf("bounds: unsupported corner: %d", c))
	}
}

// String returns a string representation of the rectangle in the format "[(minX,minY),(maxX,maxY)]".
func (b Bounds) String() string {
	return fmt.Sprintf("[(%v,%v),(%v,%v)]", b.minX, b.minY, b.maxX, b.maxY)
}
