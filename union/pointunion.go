package union

import "github.com/spatialcore/overlay/geom"

// PointGeometryUnion merges a multipoint into an already-unioned line/
// polygon geometry, per spec.md §4.8 step 6: a point survives only if
// locator classifies it as EXTERIOR against linesAndPolys, and surviving
// points are combined without any further overlay call.
func PointGeometryUnion(factory *geom.GeometryFactory, points []geom.Geometry, linesAndPolys geom.Geometry, locator geom.PointLocator) geom.Geometry {
	if linesAndPolys == nil || linesAndPolys.IsEmpty() {
		return combine(factory, points...)
	}
	var kept []geom.Geometry
	for _, p := range points {
		pt, ok := p.(geom.Point)
		if !ok {
			continue
		}
		xy, ok := pt.XY()
		if !ok {
			continue
		}
		if locator.Locate(xy, linesAndPolys) == geom.LocExterior {
			kept = append(kept, p)
		}
	}
	return combine(factory, kept...)
}
