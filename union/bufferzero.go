package union

import "github.com/spatialcore/overlay/geom"

// Buffer0er computes an approximation of buffer(g, 0), used as a
// last-resort repair when overlay-based union raises a TopologyError
// (spec.md §4.5.2). Buffering itself is out of scope as a general
// capability (spec.md §1 Non-goals); this interface exists purely so the
// union package's fallback path has a pluggable collaborator.
type Buffer0er interface {
	Buffer0(g geom.Geometry) (geom.Geometry, error)
}

// RingUnionBuffer0 is the default Buffer0er. It is intentionally narrow:
// rather than a real buffering engine, it force-orients every ring
// (shell or hole) found in g into its own CW shell and cascaded-unions the
// resulting polygon set, discarding any ring that fails to assemble into a
// valid LinearRing. This approximates buffer(0)'s self-healing effect for
// the one case this core actually needs it: cleaning up a two-element
// GeometryCollection of possibly-invalid polygonal inputs before a
// last-resort union. Callers needing a faithful buffer(0) should supply
// their own Buffer0er.
type RingUnionBuffer0 struct{}

func (RingUnionBuffer0) Buffer0(g geom.Geometry) (geom.Geometry, error) {
	factory := g.Factory()
	rings := collectRings(g)
	if len(rings) == 0 {
		return factory.CreateGeometryCollection(nil), nil
	}

	shells := make([]geom.Geometry, 0, len(rings))
	for _, r := range rings {
		if r.IsEmpty() {
			continue
		}
		shells = append(shells, factory.CreatePolygon(r.ForceOrientation(false), nil))
	}

	cu := NewCascadedUnion(shells)
	return cu.Union()
}

// collectRings gathers every shell and hole ring from a Polygon,
// MultiPolygon, or GeometryCollection of polygonal geometries.
func collectRings(g geom.Geometry) []geom.LinearRing {
	var out []geom.LinearRing
	var visit func(geom.Geometry)
	visit = func(g geom.Geometry) {
		switch t := g.(type) {
		case geom.Polygon:
			if t.IsEmpty() {
				return
			}
			out = append(out, t.ExteriorRing())
			for i := 0; i < t.NumInteriorRings(); i++ {
				out = append(out, t.InteriorRingN(i))
			}
		case geom.MultiPolygon:
			for i := 0; i < t.NumPolygons(); i++ {
				visit(t.PolygonN(i))
			}
		case geom.GeometryCollection:
			for i := 0; i < t.NumGeometries(); i++ {
				visit(t.GeometryN(i))
			}
		}
	}
	visit(g)
	return out
}
