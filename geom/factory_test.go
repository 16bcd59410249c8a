package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcore/overlay/geom"
)

func TestBuildGeometryEmptyYieldsEmptyCollection(t *testing.T) {
	result := floatFactory.BuildGeometry(nil)
	gc, ok := result.(geom.GeometryCollection)
	require.True(t, ok)
	assert.Equal(t, 0, gc.NumGeometries())
}

func TestBuildGeometrySingleIsUnwrapped(t *testing.T) {
	p := floatFactory.CreatePoint(geom.Coordinates{XY: geom.XY{X: 1, Y: 2}})
	result := floatFactory.BuildGeometry([]geom.Geometry{p})
	assert.Equal(t, geom.TypePoint, result.Type())
}

func TestBuildGeometryHomogeneousPoints(t *testing.T) {
	p1 := floatFactory.CreatePoint(geom.Coordinates{XY: geom.XY{X: 1, Y: 2}})
	p2 := floatFactory.CreatePoint(geom.Coordinates{XY: geom.XY{X: 3, Y: 4}})
	result := floatFactory.BuildGeometry([]geom.Geometry{p1, p2})
	mp, ok := result.(geom.MultiPoint)
	require.True(t, ok)
	assert.Equal(t, 2, mp.NumPoints())
}

func TestBuildGeometryHomogeneousPolygons(t *testing.T) {
	a := floatFactory.CreatePolygon(square(0, 0, 1), nil)
	b := floatFactory.CreatePolygon(square(10, 10, 1), nil)
	result := floatFactory.BuildGeometry([]geom.Geometry{a, b})
	mp, ok := result.(geom.MultiPolygon)
	require.True(t, ok)
	assert.Equal(t, 2, mp.NumPolygons())
}

func TestBuildGeometryMixedTypesYieldsCollection(t *testing.T) {
	p := floatFactory.CreatePoint(geom.Coordinates{XY: geom.XY{X: 1, Y: 2}})
	a := floatFactory.CreatePolygon(square(0, 0, 1), nil)
	result := floatFactory.BuildGeometry([]geom.Geometry{p, a})
	gc, ok := result.(geom.GeometryCollection)
	require.True(t, ok)
	assert.Equal(t, 2, gc.NumGeometries())
}

func TestCreateEmptyByDimension(t *testing.T) {
	assert.Equal(t, geom.TypePoint, floatFactory.CreateEmpty(0).Type())
	assert.True(t, floatFactory.CreateEmpty(0).IsEmpty())

	assert.Equal(t, geom.TypeLineString, floatFactory.CreateEmpty(1).Type())
	assert.True(t, floatFactory.CreateEmpty(1).IsEmpty())

	assert.Equal(t, geom.TypePolygon, floatFactory.CreateEmpty(2).Type())
	assert.True(t, floatFactory.CreateEmpty(2).IsEmpty())

	assert.Equal(t, geom.TypeGeometryCollection, floatFactory.CreateEmpty(3).Type())
}

func TestFixedPrecisionModelRoundsCoordinates(t *testing.T) {
	fixed := geom.NewFixedPrecisionModel(2) // grid spacing 0.5
	f := geom.NewGeometryFactory(fixed)

	p := f.CreatePoint(geom.Coordinates{XY: geom.XY{X: 1.24, Y: 1.26}})
	xy, ok := p.XY()
	require.True(t, ok)
	assert.InDelta(t, 1.0, xy.X, 1e-9)
	assert.InDelta(t, 1.5, xy.Y, 1e-9)
}
