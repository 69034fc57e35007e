package voronoi

import (
	"math"

	"github.com/fortunesweep/voronoi/bounds"
	"github.com/fortunesweep/voronoi/numeric"
	"github.com/fortunesweep/voronoi/point"
	"github.com/fortunesweep/voronoi/types"
)

func isInsideBounds(x, y float64, b bounds.Bounds) bool {
	return x >= b.MinX() && x <= b.MaxX() && y >= b.MinY() && y <= b.MaxY()
}

type boundResultKind int

const (
	boundInside boundResultKind = iota
	boundOutside
	boundIntersect
)

// boundResult is the outcome of clipping one DCEL edge segment against the
// rectangle: both endpoints inside, both endpoints outside (reported as
// outside even if the segment passes through the rectangle), or one of each,
// crossing exactly one side (the clip rectangle is convex, so a straight
// segment crosses its boundary at most once on the way from inside to
// outside or vice versa).
type boundResult struct {
	kind boundResultKind
	x, y float64
	side types.BoundSide
}

// boundSegment clips the segment (startX,startY)-(endX,endY) against b.
func boundSegment(startX, startY, endX, endY float64, b bounds.Bounds, epsilon float64) boundResult {
	startsInside := isInsideBounds(startX, startY, b)
	endsInside := isInsideBounds(endX, endY, b)

	switch {
	case startsInside && endsInside:
		return boundResult{kind: boundInside}
	case !startsInside && !endsInside:
		return boundResult{kind: boundOutside}
	case startsInside && !endsInside:
		x, y, side := exitPoint(startX, startY, endX, endY, b, epsilon)
		return boundResult{kind: boundIntersect, x: x, y: y, side: side}
	default: // !startsInside && endsInside
		x, y, side := exitPoint(endX, endY, startX, startY, b, epsilon)
		return boundResult{kind: boundIntersect, x: x, y: y, side: side}
	}
}

// exitPoint finds where the ray from (fromX,fromY) toward (towardX,towardY)
// crosses the rectangle boundary, walking outward from the inside point.
func exitPoint(fromX, fromY, towardX, towardY float64, b bounds.Bounds, epsilon float64) (x, y float64, side types.BoundSide) {
	dx := towardX - fromX
	dy := towardY - fromY

	testX := b.MaxX()
	if dx < 0 {
		testX = b.MinX()
	}
	testY := b.MaxY()
	if dy < 0 {
		testY = b.MinY()
	}

	tx := math.MaxFloat64
	if !numeric.FloatEquals(dx, 0, epsilon) {
		tx = (testX - fromX) / dx
	}
	ty := math.MaxFloat64
	if !numeric.FloatEquals(dy, 0, epsilon) {
		ty = (testY - fromY) / dy
	}

	tmin := tx
	if ty < tx {
		tmin = ty
	}
	x = fromX + dx*tmin
	y = fromY + dy*tmin

	switch {
	case dx < 0 && dy <= 0:
		if tx < ty {
			side = types.Left
		} else {
			side = types.Bottom
		}
	case dx <= 0 && dy > 0:
		if tx < ty {
			side = types.Left
		} else {
			side = types.Top
		}
	case dx > 0 && dy > 0:
		if tx < ty {
			side = types.Right
		} else {
			side = types.Top
		}
	default: // dx >= 0 && dy <= 0
		if tx < ty {
			side = types.Right
		} else {
			side = types.Bottom
		}
	}
	return x, y, side
}

// classifySide reports which side of b the point (x, y) lies on, assuming it
// lies on the boundary (within epsilon). When a point sits within epsilon of
// two sides at once — possible only at a corner — Left and Right are checked
// before Top and Bottom, a fixed, arbitrary tie-break: the corner belongs to
// whichever vertical side it's nearest, preferring Left.
func classifySide(x, y float64, b bounds.Bounds, epsilon float64) types.BoundSide {
	switch {
	case numeric.FloatEquals(x, b.MinX(), epsilon):
		return types.Left
	case numeric.FloatEquals(x, b.MaxX(), epsilon):
		return types.Right
	case numeric.FloatEquals(y, b.MinY(), epsilon):
		return types.Bottom
	default:
		return types.Top
	}
}

// cornersBetween returns, in traversal order, the rectangle corners a
// boundary-hugging path must pass through to get from a point on side1 to a
// point on side2 without crossing the rectangle's interior.
func cornersBetween(side1, side2 types.BoundSide, b bounds.Bounds) []point.Point {
	bottomLeft := b.Corner(bounds.BottomLeft)
	bottomRight := b.Corner(bounds.BottomRight)
	topRight := b.Corner(bounds.TopRight)
	topLeft := b.Corner(bounds.TopLeft)

	switch {
	case side1 == types.Top && side2 == types.Left:
		return []point.Point{topLeft}
	case side1 == types.Top && side2 == types.Bottom:
		return []point.Point{topLeft, bottomLeft}
	case side1 == types.Top && side2 == types.Right:
		return []point.Point{topLeft, bottomLeft, bottomRight}
	case side1 == types.Left && side2 == types.Bottom:
		return []point.Point{bottomLeft}
	case side1 == types.Left && side2 == types.Right:
		return []point.Point{bottomLeft, bottomRight}
	case side1 == types.Left && side2 == types.Top:
		return []point.Point{bottomLeft, bottomRight, topRight}
	case side1 == types.Bottom && side2 == types.Right:
		return []point.Point{bottomRight}
	case side1 == types.Bottom && side2 == types.Top:
		return []point.Point{bottomRight, topRight}
	case side1 == types.Bottom && side2 == types.Left:
		return []point.Point{bottomRight, topRight, topLeft}
	case side1 == types.Right && side2 == types.Top:
		return []point.Point{topRight}
	case side1 == types.Right && side2 == types.Left:
		return []point.Point{topRight, topLeft}
	case side1 == types.Right && side2 == types.Bottom:
		return []point.Point{topRight, topLeft, bottomLeft}
	default:
		return nil
	}
}

// clip bounds every face of the mesh to b, deactivating half-edges that fall
// outside the rectangle and stitching in new boundary half-edges along the
// rectangle's sides where a face's chain exits and re-enters. Faces for
// which no half-edge with an inside origin can be found are removed (set to
// nilIndex), surfaced later as empty polygons.
func (d *dcel) clip(b bounds.Bounds, epsilon float64) {
	var facesToRemove []int

	for i, face := range d.faces {
		if face == nilIndex {
			continue
		}

		startingEdge, ok := d.findInsideStart(face, b)
		if !ok {
			facesToRemove = append(facesToRemove, i)
			continue
		}

		if d.clipFace(i, startingEdge, b, epsilon) {
			continue
		}
		facesToRemove = append(facesToRemove, i)
	}

	for _, i := range facesToRemove {
		d.faces[i] = nilIndex
	}
}

// findInsideStart walks a face's chain looking for a half-edge whose origin
// lies inside b, so clipping has somewhere safe to begin.
func (d *dcel) findInsideStart(face int, b bounds.Bounds) (edge int, ok bool) {
	edge = face
	for {
		if d.halfEdges[edge].origin == nilIndex {
			return 0, false
		}
		v := d.vertices[d.halfEdges[edge].origin]
		if isInsideBounds(v.x, v.y, b) {
			return edge, true
		}
		edge = d.halfEdges[edge].next
		if edge == face || edge == nilIndex {
			return 0, false
		}
	}
}

// clipFace runs the inside/outside walk for a single face starting at
// startingEdge, reporting whether it completed (false means the face should
// be dropped).
func (d *dcel) clipFace(faceID, startingEdge int, b bounds.Bounds, epsilon float64) bool {
	const (
		stateInside = iota
		stateOutside
	)

	state := stateInside
	prevEdge := nilIndex
	edge := startingEdge
	exitingEdge := nilIndex
	outVertex := nilIndex
	var exitingSide types.BoundSide

	for {
		if d.halfEdges[edge].origin == nilIndex || d.halfEdges[edge].next == nilIndex {
			return false
		}
		v := d.vertices[d.halfEdges[edge].origin]
		next := d.halfEdges[edge].next
		nv := d.vertices[d.halfEdges[next].origin]

		result := boundSegment(v.x, v.y, nv.x, nv.y, b, epsilon)

		if state == stateInside {
			switch result.kind {
			case boundIntersect:
				state = stateOutside
				outVertex = d.createVertex(result.x, result.y)
				exitingEdge = edge
				exitingSide = result.side
			case boundOutside:
				state = stateOutside
				d.halfEdges[edge].active = false
				outVertex = d.halfEdges[edge].origin
				exitingEdge = prevEdge
				ov := d.vertices[outVertex]
				exitingSide = classifySide(ov.x, ov.y, b, epsilon)
			}
		} else {
			d.halfEdges[edge].active = false
			switch result.kind {
			case boundIntersect:
				if result.side != exitingSide {
					exitingEdge, outVertex = d.insertCorners(exitingEdge, outVertex, exitingSide, result.side, b)
				}
				inVertex := d.createVertex(result.x, result.y)
				bboxEdge, bboxEdgeTwin := d.createTwins()
				enteringEdge, enteringEdgeTwin := d.createTwins()
				exitingEdgeTwin := d.halfEdges[exitingEdge].twin

				d.halfEdges[bboxEdge].origin = outVertex
				d.halfEdges[bboxEdgeTwin].origin = inVertex
				d.halfEdges[bboxEdge].next = enteringEdge
				d.halfEdges[exitingEdge].next = bboxEdge
				d.halfEdges[exitingEdgeTwin].origin = outVertex
				d.halfEdges[enteringEdge].origin = inVertex
				d.halfEdges[enteringEdge].next = next
				d.halfEdges[enteringEdgeTwin].origin = d.halfEdges[next].origin
				d.faces[faceID] = enteringEdge
				return true
			case boundInside:
				inVertex := d.halfEdges[edge].origin
				iv := d.vertices[inVertex]
				side := classifySide(iv.x, iv.y, b, epsilon)
				if side != exitingSide {
					exitingEdge, outVertex = d.insertCorners(exitingEdge, outVertex, exitingSide, side, b)
				}
				bboxEdge, bboxEdgeTwin := d.createTwins()
				exitingEdgeTwin := d.halfEdges[exitingEdge].twin

				d.halfEdges[bboxEdge].origin = outVertex
				d.halfEdges[bboxEdgeTwin].origin = d.halfEdges[edge].origin
				d.halfEdges[bboxEdge].next = edge
				d.halfEdges[exitingEdge].next = bboxEdge
				d.halfEdges[exitingEdgeTwin].origin = outVertex
				d.faces[faceID] = edge
				return true
			}
		}

		prevEdge = edge
		edge = next
		if edge == startingEdge {
			break
		}
	}
	return true
}

// insertCorners stitches in one bounding half-edge per rectangle corner
// between exitingSide and enteringSide, returning the updated exiting edge
// and out-vertex to continue stitching from.
func (d *dcel) insertCorners(exitingEdge, outVertex int, exitingSide, enteringSide types.BoundSide, b bounds.Bounds) (newExitingEdge, newOutVertex int) {
	for _, corner := range cornersBetween(exitingSide, enteringSide, b) {
		cx, cy := corner.Coordinates()
		cornerVertex := d.createVertex(cx, cy)
		cornerEdge, _ := d.createTwins()
		exitingEdgeTwin := d.halfEdges[exitingEdge].twin

		d.halfEdges[cornerEdge].origin = outVertex
		d.halfEdges[exitingEdgeTwin].origin = cornerVertex
		d.halfEdges[exitingEdge].next = cornerEdge

		outVertex = cornerVertex
		exitingEdge = cornerEdge
	}
	return exitingEdge, outVertex
}
