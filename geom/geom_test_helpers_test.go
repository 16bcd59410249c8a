package geom_test

import "github.com/spatialcore/overlay/geom"

var floatFactory = geom.NewGeometryFactory(geom.NewFloatingPrecisionModel())

// square returns a CCW unit square ring scaled by side, with its lower-left
// corner at (x, y).
func square(x, y, side float64) geom.LinearRing {
	pts := []geom.XY{
		{X: x, Y: y},
		{X: x + side, Y: y},
		{X: x + side, Y: y + side},
		{X: x, Y: y + side},
		{X: x, Y: y},
	}
	ring, err := floatFactory.CreateLinearRing(geom.NewSequenceXY(pts))
	if err != nil {
		panic(err)
	}
	return ring
}
