package numeric

import "math"

// Breakpoint returns the x-coordinate at which the parabola focussed at
// (x1, y1) intersects the parabola focussed at (x2, y2), both opened by the
// horizontal directrix y = directrix.
//
// When the two foci share a y-coordinate (within epsilon), the breakpoint
// is the vertical bisector's x-coordinate, the average of x1 and x2.
// Otherwise the closed-form solution of the two parabola equations is used,
// picking the intersection at which the arc of (x1, y1) lies to the left and
// the arc of (x2, y2) to the right, consistent with a left-to-right ordered
// beach line under a directrix advancing in +y.
func Breakpoint(x1, y1, x2, y2, directrix, epsilon float64) float64 {
	if FloatEquals(y1, y2, epsilon) {
		return (x1 + x2) / 2
	}

	s := directrix
	sqrtArg := (s*s - s*y1 - s*y2 + y1*y2) * ((x1-x2)*(x1-x2) + (y1-y2)*(y1-y2))
	sq := math.Sqrt(sqrtArg)

	return (sq + s*x1 - s*x2 - x1*y2 + x2*y1) / (y1 - y2)
}

// Circumcenter computes the point equidistant from three non-collinear points
// and the distance to each of them (the circumradius).
//
// ok is false when the three points are collinear (the determinant used in
// the closed-form solution has magnitude below epsilon), in which case no
// finite circumcenter exists.
func Circumcenter(x1, y1, x2, y2, x3, y3, epsilon float64) (cx, cy, r float64, ok bool) {
	det := (x1-x2)*(y2-y3) - (x2-x3)*(y1-y2)
	if math.Abs(det) < epsilon {
		return 0, 0, 0, false
	}

	bc := (x1*x1 - x2*x2) + (y1*y1 - y2*y2)
	cd := (x2*x2 - x3*x3) + (y2*y2 - y3*y3)

	cx = (bc*(y2-y3) - cd*(y1-y2)) / (2 * det)
	cy = ((x1-x2)*cd - (x2-x3)*bc) / (2 * det)
	r = math.Hypot(cx-x1, cy-y1)

	return cx, cy, r, true
}
