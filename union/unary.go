package union

import (
	"github.com/spatialcore/overlay/geom"
	"github.com/spatialcore/overlay/noding"
	"github.com/spatialcore/overlay/overlay"
)

// UnaryUnion is the package-level entry point of spec.md §4.8, §6: union
// a mixed input collection (dissolving duplicate points, noding and
// dissolving lines, cascaded-unioning polygons) and compose the three
// pools back into one result. input accepts a single geom.Geometry or a
// []geom.Geometry; factory may be nil, in which case it is resolved from
// the first non-nil input geometry, and a nil result is returned if none
// can be found.
func UnaryUnion(input interface{}, factory *geom.GeometryFactory, opts ...Option) (geom.Geometry, error) {
	cfg := newConfig(opts)

	geoms, err := normalizeUnaryInput(input)
	if err != nil {
		return nil, err
	}

	if factory == nil {
		for _, g := range geoms {
			if g != nil {
				factory = g.Factory()
				break
			}
		}
	}
	if factory == nil {
		return nil, nil
	}

	maxDim := -1
	var points, lines, polys []geom.Geometry
	for _, g := range geoms {
		if g == nil {
			continue
		}
		for _, atom := range noding.Flatten(g) {
			if atom.Dimension() > maxDim {
				maxDim = atom.Dimension()
			}
			if atom.IsEmpty() {
				continue
			}
			switch atom.Dimension() {
			case 0:
				points = append(points, atom)
			case 1:
				lines = append(lines, atom)
			case 2:
				polys = append(polys, atom)
			}
		}
	}

	if len(points) == 0 && len(lines) == 0 && len(polys) == 0 {
		if maxDim < 0 {
			return factory.CreateGeometryCollection(nil), nil
		}
		return factory.CreateEmpty(maxDim), nil
	}

	var pointUnion geom.Geometry
	if len(points) > 0 {
		mp := factory.CreateMultiPoint(toPoints(points))
		u, err := overlay.Overlay(mp, factory.CreateEmptyPoint(), overlay.OpUnion)
		if err != nil {
			return nil, err
		}
		pointUnion = u
	}

	var lineUnion geom.Geometry
	if len(lines) > 0 {
		ml := factory.CreateMultiLineString(toLineStrings(lines))
		u, err := overlay.Overlay(ml, factory.CreateLineString(geom.Sequence{}), overlay.OpUnion)
		if err != nil {
			return nil, err
		}
		lineUnion = u
	}

	var polyUnion geom.Geometry
	if len(polys) > 0 {
		u, err := CascadedUnionPolygons(polys, opts...)
		if err != nil {
			return nil, err
		}
		polyUnion = u
	}

	linesAndPolys, err := unionWithNull(lineUnion, polyUnion)
	if err != nil {
		return nil, err
	}

	var dissolvedPoints []geom.Geometry
	if pointUnion != nil {
		dissolvedPoints = noding.Flatten(pointUnion)
	}
	keptPoints := PointGeometryUnion(factory, dissolvedPoints, linesAndPolys, cfg.locator)

	return combine(factory, linesAndPolys, keptPoints), nil
}

// unionWithNull runs the core overlay's union operator, tolerating a nil
// operand on either side (spec.md §4.8 step 6).
func unionWithNull(a, b geom.Geometry) (geom.Geometry, error) {
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}
	return overlay.Overlay(a, b, overlay.OpUnion)
}

func normalizeUnaryInput(input interface{}) ([]geom.Geometry, error) {
	switch v := input.(type) {
	case nil:
		return nil, nil
	case geom.Geometry:
		return []geom.Geometry{v}, nil
	case []geom.Geometry:
		return v, nil
	default:
		return nil, &geom.InvalidArgumentError{Msg: "union: unsupported unary union input type"}
	}
}

func toPoints(atoms []geom.Geometry) []geom.Point {
	out := make([]geom.Point, 0, len(atoms))
	for _, a := range atoms {
		if p, ok := a.(geom.Point); ok {
			out = append(out, p)
		}
	}
	return out
}

func toLineStrings(atoms []geom.Geometry) []geom.LineString {
	out := make([]geom.LineString, 0, len(atoms))
	for _, a := range atoms {
		if ls, ok := a.(geom.LineString); ok {
			out = append(out, ls)
		}
	}
	return out
}
