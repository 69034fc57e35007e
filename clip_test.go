package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortunesweep/voronoi/bounds"
	"github.com/fortunesweep/voronoi/types"
)

func TestBoundSegmentInsideToOutsideIntersects(t *testing.T) {
	b, err := bounds.New(-10, -10, 10, 10)
	require.NoError(t, err)

	result := boundSegment(0, 0, 100, -200, b, 1e-9)
	require.Equal(t, boundIntersect, result.kind)
	assert.InDelta(t, 5, result.x, 1e-9)
	assert.InDelta(t, -10, result.y, 1e-9)
	assert.Equal(t, types.Bottom, result.side)
}

func TestBoundSegmentFullyInside(t *testing.T) {
	b, err := bounds.New(-10, -10, 10, 10)
	require.NoError(t, err)

	result := boundSegment(0, 0, 5, -2, b, 1e-9)
	assert.Equal(t, boundInside, result.kind)
}

func TestBoundSegmentStartsOutsideEndsInside(t *testing.T) {
	b, err := bounds.New(-10, -10, 10, 10)
	require.NoError(t, err)

	result := boundSegment(100, 50, 0, 0, b, 1e-9)
	require.Equal(t, boundIntersect, result.kind)
	assert.InDelta(t, 10, result.x, 1e-9)
	assert.InDelta(t, 5, result.y, 1e-9)
	assert.Equal(t, types.Right, result.side)
}

func TestBoundSegmentFullyOutside(t *testing.T) {
	b, err := bounds.New(-10, -10, 10, 10)
	require.NoError(t, err)

	result := boundSegment(100, 50, 20, 20, b, 1e-9)
	assert.Equal(t, boundOutside, result.kind)
}

func TestClassifySideAtCornerPrefersLeftOverTop(t *testing.T) {
	b, err := bounds.New(-1, -1, 1, 1)
	require.NoError(t, err)

	// (-1, 1) is exactly the top-left corner: within epsilon of both the
	// Left side (x == minX) and the Top side (y == maxY).
	side := classifySide(-1, 1, b, 1e-9)
	assert.Equal(t, types.Left, side)
}

func TestClassifySideAtCornerPrefersRightOverBottom(t *testing.T) {
	b, err := bounds.New(-1, -1, 1, 1)
	require.NoError(t, err)

	side := classifySide(1, -1, b, 1e-9)
	assert.Equal(t, types.Right, side)
}

func TestCornersBetweenTopAndRightGoesViaTopLeftAndBottomLeft(t *testing.T) {
	b, err := bounds.New(-1, -1, 1, 1)
	require.NoError(t, err)

	corners := cornersBetween(types.Top, types.Right, b)
	require.Len(t, corners, 3)
	assert.Equal(t, b.Corner(bounds.TopLeft), corners[0])
	assert.Equal(t, b.Corner(bounds.BottomLeft), corners[1])
	assert.Equal(t, b.Corner(bounds.BottomRight), corners[2])
}

func TestCornersBetweenSameSideIsEmpty(t *testing.T) {
	b, err := bounds.New(-1, -1, 1, 1)
	require.NoError(t, err)

	assert.Empty(t, cornersBetween(types.Top, types.Top, b))
}
