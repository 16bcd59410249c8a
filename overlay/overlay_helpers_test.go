package overlay_test

import "github.com/spatialcore/overlay/geom"

var testFactory = geom.NewGeometryFactory(geom.NewFloatingPrecisionModel())

// square returns a CCW unit square ring scaled by side, with its lower-left
// corner at (x, y), wrapped as a Polygon.
func square(x, y, side float64) geom.Polygon {
	pts := []geom.XY{
		{X: x, Y: y},
		{X: x + side, Y: y},
		{X: x + side, Y: y + side},
		{X: x, Y: y + side},
		{X: x, Y: y},
	}
	ring, err := testFactory.CreateLinearRing(geom.NewSequenceXY(pts))
	if err != nil {
		panic(err)
	}
	return testFactory.CreatePolygon(ring, nil)
}

// areaOf sums the area of g's polygonal components (zero for anything else).
func areaOf(g geom.Geometry) float64 {
	switch t := g.(type) {
	case geom.Polygon:
		return t.Area()
	case geom.MultiPolygon:
		var sum float64
		for i := 0; i < t.NumPolygons(); i++ {
			sum += t.PolygonN(i).Area()
		}
		return sum
	default:
		return 0
	}
}
