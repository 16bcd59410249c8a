package union

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/spatialcore/overlay/geom"
	"github.com/spatialcore/overlay/overlay"
)

// OverlapUnion is the package-level entry point for spec.md §4.5.1: union
// two polygonal geometries by running the core overlay only over the
// components that could possibly share vertices (their envelope
// intersection), then grafting the untouched remainder back in --
// verified safe by a border-segment comparison before the optimisation is
// trusted.
func OverlapUnion(g0, g1 geom.Geometry, opts ...Option) (geom.Geometry, error) {
	return overlapUnion(g0, g1, newConfig(opts))
}

func overlapUnion(g0, g1 geom.Geometry, cfg *config) (geom.Geometry, error) {
	factory := g0.Factory()
	overlapEnv := g0.Envelope().Intersection(g1.Envelope())
	if overlapEnv.IsNull() {
		return combine(factory, g0, g1), nil
	}

	overlap0, disjoint0 := partitionByEnvelope(g0, overlapEnv)
	overlap1, disjoint1 := partitionByEnvelope(g1, overlapEnv)

	unionGeom, err := overlayUnionWithFallback(combine(factory, overlap0...), combine(factory, overlap1...), cfg)
	if err != nil {
		return nil, err
	}

	want := append(borderSegments(g0, overlapEnv), borderSegments(g1, overlapEnv)...)
	got := borderSegments(unionGeom, overlapEnv)
	if segmentMultisetsEqual(want, got) {
		return combine(factory, unionGeom, combine(factory, disjoint0...), combine(factory, disjoint1...)), nil
	}

	log.Warn().Msg("union: border segments changed across overlap partition, falling back to full union")
	return overlayUnionWithFallback(g0, g1, cfg)
}

// overlayUnionWithFallback runs the core overlay's union operator over a,
// b, falling back to cfg's buffer(0) repair (spec.md §4.5.2) on a
// TopologyError, and restricting the result to its polygonal components
// either way.
func overlayUnionWithFallback(a, b geom.Geometry, cfg *config) (geom.Geometry, error) {
	result, err := overlay.Overlay(a, b, overlay.OpUnion)
	if err == nil {
		return restrictToPolygons(result), nil
	}

	var topoErr *geom.TopologyError
	if !errors.As(err, &topoErr) {
		return nil, err
	}

	log.Warn().Err(err).Msg("union: overlay hit a topology error, repairing via buffer(0)")
	coll := a.Factory().CreateGeometryCollection([]geom.Geometry{a, b})
	repaired, bufErr := cfg.buffer0.Buffer0(coll)
	if bufErr != nil {
		return nil, bufErr
	}
	return restrictToPolygons(repaired), nil
}

// components returns g's top-level polygonal elements: a MultiPolygon's
// polygons, a GeometryCollection's polygonal members (recursively), or g
// itself for anything else.
func components(g geom.Geometry) []geom.Geometry {
	switch t := g.(type) {
	case geom.MultiPolygon:
		out := make([]geom.Geometry, t.NumPolygons())
		for i := 0; i < t.NumPolygons(); i++ {
			out[i] = t.PolygonN(i)
		}
		return out
	case geom.GeometryCollection:
		var out []geom.Geometry
		for i := 0; i < t.NumGeometries(); i++ {
			out = append(out, components(t.GeometryN(i))...)
		}
		return out
	default:
		return []geom.Geometry{g}
	}
}

// partitionByEnvelope splits g's components into those whose envelope
// intersects env (the overlap set) and the rest (the disjoint set), per
// spec.md §4.5.1 step 2.
func partitionByEnvelope(g geom.Geometry, env geom.Envelope) (overlap, disjoint []geom.Geometry) {
	for _, c := range components(g) {
		if c.Envelope().Intersects(env) {
			overlap = append(overlap, c)
		} else {
			disjoint = append(disjoint, c)
		}
	}
	return overlap, disjoint
}

// lineSegment is an unordered pair of endpoints, used for the border-
// segment safety check's multiset comparison.
type lineSegment struct {
	a, b geom.XY
}

func newLineSegment(a, b geom.XY) lineSegment {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return lineSegment{a: a, b: b}
}

// borderSegments extracts every segment of g that touches env's boundary:
// at least one endpoint inside env, but not both strictly interior to it
// (spec.md §4.5.1 step 4).
func borderSegments(g geom.Geometry, env geom.Envelope) []lineSegment {
	var out []lineSegment
	walkSegments(g, func(a, b geom.XY) {
		insideA, insideB := env.Contains(a), env.Contains(b)
		if !insideA && !insideB {
			return
		}
		if strictlyInside(a, env) && strictlyInside(b, env) {
			return
		}
		out = append(out, newLineSegment(a, b))
	})
	return out
}

func strictlyInside(xy geom.XY, env geom.Envelope) bool {
	return xy.X > env.MinX() && xy.X < env.MaxX() && xy.Y > env.MinY() && xy.Y < env.MaxY()
}

// walkSegments calls visit once per consecutive coordinate pair in every
// linear component of g.
func walkSegments(g geom.Geometry, visit func(a, b geom.XY)) {
	emit := func(xys []geom.XY) {
		for i := 0; i+1 < len(xys); i++ {
			visit(xys[i], xys[i+1])
		}
	}
	switch t := g.(type) {
	case geom.LineString:
		emit(t.Coordinates().XYs())
	case geom.LinearRing:
		emit(t.Coordinates().XYs())
	case geom.Polygon:
		if t.IsEmpty() {
			return
		}
		emit(t.ExteriorRing().Coordinates().XYs())
		for i := 0; i < t.NumInteriorRings(); i++ {
			emit(t.InteriorRingN(i).Coordinates().XYs())
		}
	case geom.MultiLineString:
		for i := 0; i < t.NumLineStrings(); i++ {
			walkSegments(t.LineStringN(i), visit)
		}
	case geom.MultiPolygon:
		for i := 0; i < t.NumPolygons(); i++ {
			walkSegments(t.PolygonN(i), visit)
		}
	case geom.GeometryCollection:
		for i := 0; i < t.NumGeometries(); i++ {
			walkSegments(t.GeometryN(i), visit)
		}
	}
}

func segmentMultisetsEqual(a, b []lineSegment) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[lineSegment]int, len(a))
	for _, s := range a {
		counts[s]++
	}
	for _, s := range b {
		counts[s]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}
