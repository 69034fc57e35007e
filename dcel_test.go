package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortunesweep/voronoi/bounds"
	"github.com/fortunesweep/voronoi/point"
)

func TestDCELCreateTwinsAreAdjacentIndices(t *testing.T) {
	d := newDCEL(1)
	edge, twin := d.createTwins()
	assert.Equal(t, edge+1, twin)
	assert.Equal(t, twin, d.getTwin(edge))
	assert.Equal(t, edge, d.getTwin(twin))
}

func TestDCELEnsureFaceKeepsFirstHalfEdge(t *testing.T) {
	d := newDCEL(1)
	e1, _ := d.createTwins()
	e2, _ := d.createTwins()

	d.ensureFace(0, e1)
	d.ensureFace(0, e2)

	assert.Equal(t, e1, d.faces[0])
}

func TestDCELPolygonsSingleTriangle(t *testing.T) {
	d := newDCEL(1)
	edge1, edge1Twin := d.createTwins()
	edge2, edge2Twin := d.createTwins()
	edge3, edge3Twin := d.createTwins()

	a := d.createVertex(0, 0)
	b := d.createVertex(2, 1)
	c := d.createVertex(2, 0)

	d.setOrigin(edge1, a)
	d.setOrigin(edge1Twin, b)
	d.setOrigin(edge2, b)
	d.setOrigin(edge2Twin, c)
	d.setOrigin(edge3, c)
	d.setOrigin(edge3Twin, a)

	d.setNext(edge1, edge2)
	d.setNext(edge2, edge3)
	d.setNext(edge3, edge1)

	d.ensureFace(0, edge1)

	polys := d.polygons()
	require.Len(t, polys, 1)
	assert.Equal(t, Polygon{point.New(0, 0), point.New(2, 1), point.New(2, 0)}, polys[0])
}

func TestDCELPolygonsOpenFaceIsEmpty(t *testing.T) {
	d := newDCEL(1)
	edge, _ := d.createTwins()
	a := d.createVertex(0, 0)
	d.setOrigin(edge, a)
	// next is never set, so the chain never closes.
	d.ensureFace(0, edge)

	polys := d.polygons()
	require.Len(t, polys, 1)
	assert.Empty(t, polys[0])
}

func TestDCELClipTriangleToBoundingBox(t *testing.T) {
	d := newDCEL(1)
	edge1, edge1Twin := d.createTwins()
	edge2, edge2Twin := d.createTwins()
	edge3, edge3Twin := d.createTwins()

	a := d.createVertex(0, 0)
	b := d.createVertex(2, 1)
	c := d.createVertex(2, 0)

	d.setOrigin(edge1, a)
	d.setOrigin(edge1Twin, b)
	d.setOrigin(edge2, b)
	d.setOrigin(edge2Twin, c)
	d.setOrigin(edge3, c)
	d.setOrigin(edge3Twin, a)

	d.setNext(edge1, edge2)
	d.setNext(edge2, edge3)
	d.setNext(edge3, edge1)

	d.ensureFace(0, edge1)

	box, err := bounds.New(-1, -1, 1, 1)
	require.NoError(t, err)

	d.clip(box, 1e-9)

	polys := d.polygons()
	require.Len(t, polys, 1)
	assert.NotEmpty(t, polys[0])
	for _, p := range polys[0] {
		x, y := p.Coordinates()
		assert.LessOrEqual(t, x, 1.0+1e-9)
		assert.GreaterOrEqual(t, x, -1.0-1e-9)
		assert.LessOrEqual(t, y, 1.0+1e-9)
		assert.GreaterOrEqual(t, y, -1.0-1e-9)
	}
}

func TestDCELClipRemovesFaceWithNoInsideVertex(t *testing.T) {
	d := newDCEL(1)
	edge, _ := d.createTwins()
	a := d.createVertex(100, 100)
	d.setOrigin(edge, a)
	d.setNext(edge, edge)
	d.ensureFace(0, edge)

	box, err := bounds.New(-1, -1, 1, 1)
	require.NoError(t, err)
	d.clip(box, 1e-9)

	assert.Equal(t, nilIndex, d.faces[0])
}
