package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcore/overlay/geom"
)

func TestMultiPointBasics(t *testing.T) {
	p1 := floatFactory.CreatePoint(geom.Coordinates{XY: geom.XY{X: 0, Y: 0}})
	p2 := floatFactory.CreatePoint(geom.Coordinates{XY: geom.XY{X: 3, Y: 4}})
	mp := floatFactory.CreateMultiPoint([]geom.Point{p1, p2})

	assert.Equal(t, geom.TypeMultiPoint, mp.Type())
	assert.Equal(t, 0, mp.Dimension())
	assert.False(t, mp.IsEmpty())
	assert.Equal(t, 2, mp.NumPoints())
	assert.Equal(t, p2, mp.PointN(1))

	env := mp.Envelope()
	assert.Equal(t, 0.0, env.MinX())
	assert.Equal(t, 4.0, env.MaxY())
}

func TestMultiPointIsEmptyWhenNoPoints(t *testing.T) {
	mp := floatFactory.CreateMultiPoint(nil)
	assert.True(t, mp.IsEmpty())
}

func TestMultiPointEqualsExact(t *testing.T) {
	p1 := floatFactory.CreatePoint(geom.Coordinates{XY: geom.XY{X: 1, Y: 1}})
	p2 := floatFactory.CreatePoint(geom.Coordinates{XY: geom.XY{X: 2, Y: 2}})
	a := floatFactory.CreateMultiPoint([]geom.Point{p1, p2})
	b := floatFactory.CreateMultiPoint([]geom.Point{p1, p2})
	c := floatFactory.CreateMultiPoint([]geom.Point{p1})

	assert.True(t, a.EqualsExact(b))
	assert.False(t, a.EqualsExact(c))
}

func TestMultiLineStringBasics(t *testing.T) {
	l1 := floatFactory.CreateLineString(geom.NewSequenceXY([]geom.XY{{X: 0, Y: 0}, {X: 1, Y: 0}}))
	l2 := floatFactory.CreateLineString(geom.NewSequenceXY([]geom.XY{{X: 5, Y: 5}, {X: 6, Y: 6}}))
	ml := floatFactory.CreateMultiLineString([]geom.LineString{l1, l2})

	assert.Equal(t, geom.TypeMultiLineString, ml.Type())
	assert.Equal(t, 1, ml.Dimension())
	assert.False(t, ml.IsEmpty())
	assert.Equal(t, 2, ml.NumLineStrings())
	assert.Equal(t, l2, ml.LineStringN(1))
}

func TestMultiLineStringEqualsExact(t *testing.T) {
	l1 := floatFactory.CreateLineString(geom.NewSequenceXY([]geom.XY{{X: 0, Y: 0}, {X: 1, Y: 0}}))
	a := floatFactory.CreateMultiLineString([]geom.LineString{l1})
	b := floatFactory.CreateMultiLineString([]geom.LineString{l1})
	assert.True(t, a.EqualsExact(b))
}

func TestMultiPolygonBasicsAndArea(t *testing.T) {
	a := floatFactory.CreatePolygon(square(0, 0, 10), nil) // area 100
	b := floatFactory.CreatePolygon(square(20, 20, 2), nil) // area 4
	mp := floatFactory.CreateMultiPolygon([]geom.Polygon{a, b})

	assert.Equal(t, geom.TypeMultiPolygon, mp.Type())
	assert.Equal(t, 2, mp.Dimension())
	assert.False(t, mp.IsEmpty())
	assert.Equal(t, 2, mp.NumPolygons())
	assert.InDelta(t, 104.0, mp.Area(), 1e-9)
}

func TestMultiPolygonForceCCW(t *testing.T) {
	cw, err := floatFactory.CreateLinearRing(geom.NewSequenceXY([]geom.XY{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0},
	}))
	require.NoError(t, err)
	p := floatFactory.CreatePolygon(cw, nil)
	mp := floatFactory.CreateMultiPolygon([]geom.Polygon{p})

	forced := mp.ForceCCW()
	assert.InDelta(t, 1.0, forced.PolygonN(0).Area(), 1e-9)
}

func TestMultiPolygonEqualsExact(t *testing.T) {
	a := floatFactory.CreatePolygon(square(0, 0, 1), nil)
	x := floatFactory.CreateMultiPolygon([]geom.Polygon{a})
	y := floatFactory.CreateMultiPolygon([]geom.Polygon{a})
	assert.True(t, x.EqualsExact(y))
}

func TestGeometryCollectionBasics(t *testing.T) {
	p := floatFactory.CreatePoint(geom.Coordinates{XY: geom.XY{X: 1, Y: 1}})
	poly := floatFactory.CreatePolygon(square(0, 0, 1), nil)
	gc := floatFactory.CreateGeometryCollection([]geom.Geometry{p, poly})

	assert.Equal(t, geom.TypeGeometryCollection, gc.Type())
	assert.Equal(t, 2, gc.Dimension()) // max over children (point=0, polygon=2)
	assert.False(t, gc.IsEmpty())
	assert.Equal(t, 2, gc.NumGeometries())
}

func TestGeometryCollectionIsEmptyWhenAllChildrenEmpty(t *testing.T) {
	empty := floatFactory.CreateEmptyPoint()
	gc := floatFactory.CreateGeometryCollection([]geom.Geometry{empty})
	assert.True(t, gc.IsEmpty())
}

func TestGeometryCollectionEmptyDimensionIsNegativeOne(t *testing.T) {
	gc := floatFactory.CreateGeometryCollection(nil)
	assert.Equal(t, -1, gc.Dimension())
}

func TestGeometryCollectionEqualsExact(t *testing.T) {
	p := floatFactory.CreatePoint(geom.Coordinates{XY: geom.XY{X: 1, Y: 1}})
	a := floatFactory.CreateGeometryCollection([]geom.Geometry{p})
	b := floatFactory.CreateGeometryCollection([]geom.Geometry{p})
	assert.True(t, a.EqualsExact(b))
}
