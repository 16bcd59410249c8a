package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spatialcore/overlay/geom"
)

func TestTransformXYTranslatesPolygon(t *testing.T) {
	shell := square(0, 0, 2)
	p := floatFactory.CreatePolygon(shell, nil)

	shift := func(xy geom.XY) geom.XY { return geom.XY{X: xy.X + 10, Y: xy.Y + 5} }
	out := geom.TransformXY(floatFactory, p, shift).(geom.Polygon)

	env := out.Envelope()
	assert.Equal(t, 10.0, env.MinX())
	assert.Equal(t, 5.0, env.MinY())
	assert.Equal(t, 12.0, env.MaxX())
	assert.Equal(t, 7.0, env.MaxY())
}

func TestTransformXYRoundTrip(t *testing.T) {
	shell := square(1, 1, 3)
	p := floatFactory.CreatePolygon(shell, nil)

	forward := func(xy geom.XY) geom.XY { return geom.XY{X: xy.X * 2, Y: xy.Y * 2} }
	backward := func(xy geom.XY) geom.XY { return geom.XY{X: xy.X / 2, Y: xy.Y / 2} }

	out := geom.TransformXY(floatFactory, geom.TransformXY(floatFactory, p, forward), backward)
	assert.True(t, p.EqualsExact(out))
}

func TestWalkXYVisitsEveryVertex(t *testing.T) {
	shell := square(0, 0, 1)
	hole := square(0.2, 0.2, 0.1).ForceOrientation(false)
	p := floatFactory.CreatePolygon(shell, []geom.LinearRing{hole})

	var count int
	geom.WalkXY(p, func(geom.XY) { count++ })
	assert.Equal(t, shell.NumPoints()+hole.NumPoints(), count)
}

func TestMapLinearComponentsCanInsertVertices(t *testing.T) {
	ls := floatFactory.CreateLineString(geom.NewSequenceXY([]geom.XY{
		{X: 0, Y: 0}, {X: 10, Y: 0},
	}))

	insertMidpoint := func(xys []geom.XY, closed bool) []geom.XY {
		assert.False(t, closed)
		return []geom.XY{xys[0], {X: 5, Y: 0}, xys[1]}
	}
	out := geom.MapLinearComponents(floatFactory, ls, insertMidpoint).(geom.LineString)
	assert.Equal(t, 3, out.NumPoints())
	xy, ok := out.PointN(1).XY()
	assert.True(t, ok)
	assert.Equal(t, geom.XY{X: 5, Y: 0}, xy)
}
