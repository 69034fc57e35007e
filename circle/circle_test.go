package circle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fortunesweep/voronoi/circle"
	"github.com/fortunesweep/voronoi/point"
)

func TestNewAndAccessors(t *testing.T) {
	c := circle.New(1, 2, 3)
	assert.Equal(t, point.New(1, 2), c.Center())
	assert.Equal(t, 3.0, c.Radius())
}

func TestNewNegativeRadiusIsAbs(t *testing.T) {
	c := circle.New(0, 0, -5)
	assert.Equal(t, 5.0, c.Radius())
}

func TestFromThreePointsRightTriangle(t *testing.T) {
	c, ok := circle.FromThreePoints(point.New(0, 0), point.New(4, 0), point.New(0, 4), 1e-9)
	assert.True(t, ok)
	assert.InDelta(t, 2.0, c.Center().X(), 1e-9)
	assert.InDelta(t, 2.0, c.Center().Y(), 1e-9)
	assert.InDelta(t, 2*math.Sqrt2, c.Radius(), 1e-9)
}

func TestFromThreePointsCollinearNotOk(t *testing.T) {
	_, ok := circle.FromThreePoints(point.New(0, 0), point.New(1, 1), point.New(2, 2), 1e-9)
	assert.False(t, ok)
}

func TestFromThreePointsEquidistant(t *testing.T) {
	a := point.New(5, 0)
	b := point.New(-5, 0)
	c := point.New(0, 5)

	cc, ok := circle.FromThreePoints(a, b, c, 1e-9)
	assert.True(t, ok)

	assert.InDelta(t, cc.Radius(), cc.Center().DistanceToPoint(a), 1e-9)
	assert.InDelta(t, cc.Radius(), cc.Center().DistanceToPoint(b), 1e-9)
	assert.InDelta(t, cc.Radius(), cc.Center().DistanceToPoint(c), 1e-9)
}

func TestString(t *testing.T) {
	c := circle.New(1, 2, 3)
	assert.Contains(t, c.String(), "Circle")
}
