package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spatialcore/overlay/geom"
)

func TestXYArithmetic(t *testing.T) {
	a := geom.XY{X: 1, Y: 2}
	b := geom.XY{X: 3, Y: -1}

	assert.Equal(t, geom.XY{X: 4, Y: 1}, a.Add(b))
	assert.Equal(t, geom.XY{X: -2, Y: 3}, a.Sub(b))
	assert.Equal(t, geom.XY{X: 2, Y: 4}, a.Scale(2))
	assert.InDelta(t, -7.0, a.Cross(b), 1e-9)
	assert.InDelta(t, 1.0, a.Dot(b), 1e-9)
	assert.InDelta(t, 5.0, geom.XY{X: 3, Y: 4}.Length(), 1e-9)
	assert.Equal(t, geom.XY{X: 2, Y: 0.5}, a.Midpoint(b))
}

func TestXYDistanceTo(t *testing.T) {
	a := geom.XY{X: 0, Y: 0}
	b := geom.XY{X: 3, Y: 4}
	assert.InDelta(t, 5.0, a.DistanceTo(b), 1e-9)
	assert.InDelta(t, 0.0, a.DistanceTo(a), 1e-9)
}

func TestXYEquals(t *testing.T) {
	assert.True(t, geom.XY{X: 1, Y: 2}.Equals(geom.XY{X: 1, Y: 2}))
	assert.False(t, geom.XY{X: 1, Y: 2}.Equals(geom.XY{X: 1, Y: 3}))
}

func TestCoordinatesEqualsIgnoresZ(t *testing.T) {
	a := geom.Coordinates{XY: geom.XY{X: 1, Y: 2}, Z: 5, HasZ: true}
	b := geom.Coordinates{XY: geom.XY{X: 1, Y: 2}}
	assert.True(t, a.Equals(b))
}
