package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithBounds(t *testing.T) {
	opts := ApplyGeometryOptions(GeometryOptions{}, WithBounds(-10, -5, 10, 5))

	assert.True(t, opts.HasBounds)
	assert.Equal(t, -10.0, opts.MinX)
	assert.Equal(t, -5.0, opts.MinY)
	assert.Equal(t, 10.0, opts.MaxX)
	assert.Equal(t, 5.0, opts.MaxY)
}

func TestWithoutBoundsDefaultsUnset(t *testing.T) {
	opts := ApplyGeometryOptions(GeometryOptions{})
	assert.False(t, opts.HasBounds)
}
