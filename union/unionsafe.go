// Package union implements polygonal batch union: cascaded/STR-tree-driven
// reduction, overlap-partitioned pairwise union, a narrow buffer(0)
// fallback, and the dimension-partitioned unary union driver (spec.md
// §4.5, §4.8). Grounded on the teacher's rtree bulk-loading idiom for the
// spatial-index-driven reduction and on this package's OverlapUnion and
// overlay's OverlayOp for the actual geometric work.
package union

import "github.com/spatialcore/overlay/geom"

// unionSafe unions a and b, treating a nil operand as "no geometry yet"
// rather than an error: a nil a returns b unchanged, a nil b returns a
// unchanged, and both nil returns nil. Neither input is mutated (geometry
// values in this core are immutable, so "copy" is simply returning the
// value).
func unionSafe(a, b geom.Geometry, cfg *config) (geom.Geometry, error) {
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}
	return overlapUnion(a, b, cfg)
}

// combine builds the most specific geometry able to represent every
// non-nil, non-empty geometry in geoms, via factory.BuildGeometry.
func combine(factory *geom.GeometryFactory, geoms ...geom.Geometry) geom.Geometry {
	var nonEmpty []geom.Geometry
	for _, g := range geoms {
		if g != nil && !g.IsEmpty() {
			nonEmpty = append(nonEmpty, g)
		}
	}
	if len(nonEmpty) == 0 {
		return factory.CreateGeometryCollection(nil)
	}
	return factory.BuildGeometry(nonEmpty)
}

// restrictToPolygons discards any non-polygonal component from g, per
// spec.md §4.5's "pass the result through restrictToPolygons to discard
// any non-polygonal artifacts that surface from overlay".
func restrictToPolygons(g geom.Geometry) geom.Geometry {
	if g == nil {
		return nil
	}
	switch t := g.(type) {
	case geom.Polygon, geom.MultiPolygon:
		return g
	case geom.GeometryCollection:
		var polys []geom.Geometry
		for i := 0; i < t.NumGeometries(); i++ {
			p := restrictToPolygons(t.GeometryN(i))
			if mp, ok := p.(geom.MultiPolygon); ok {
				for j := 0; j < mp.NumPolygons(); j++ {
					polys = append(polys, mp.PolygonN(j))
				}
			} else if p != nil {
				polys = append(polys, p)
			}
		}
		return combine(g.Factory(), polys...)
	default:
		return nil
	}
}
