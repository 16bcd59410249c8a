package geom

// TransformXY rebuilds g with every vertex coordinate replaced by fn(xy),
// using factory to construct the replacement geometry. Grounded on the
// teacher's per-type TransformXY method (geom/type_multi_point.go and
// siblings); generalized here into a single dispatcher so the robustness
// wrappers (common-bits translation, vertex snapping) can transform any
// geometry variant without a type switch at each call site.
func TransformXY(factory *GeometryFactory, g Geometry, fn func(XY) XY) Geometry {
	switch t := g.(type) {
	case Point:
		xy, ok := t.XY()
		if !ok {
			return factory.CreateEmptyPoint()
		}
		return factory.CreatePoint(Coordinates{XY: fn(xy)})

	case LineString:
		return factory.CreateLineString(transformSequence(t.Coordinates(), fn))

	case LinearRing:
		seq := transformSequence(t.Coordinates(), fn)
		lr, err := factory.CreateLinearRing(seq)
		if err != nil {
			return t
		}
		return lr

	case Polygon:
		if t.IsEmpty() {
			return t
		}
		shell := TransformXY(factory, t.ExteriorRing(), fn).(LinearRing)
		holes := make([]LinearRing, t.NumInteriorRings())
		for i := 0; i < t.NumInteriorRings(); i++ {
			holes[i] = TransformXY(factory, t.InteriorRingN(i), fn).(LinearRing)
		}
		return factory.CreatePolygon(shell, holes)

	case MultiPoint:
		pts := make([]Point, t.NumPoints())
		for i := 0; i < t.NumPoints(); i++ {
			pts[i] = TransformXY(factory, t.PointN(i), fn).(Point)
		}
		return factory.CreateMultiPoint(pts)

	case MultiLineString:
		lines := make([]LineString, t.NumLineStrings())
		for i := 0; i < t.NumLineStrings(); i++ {
			lines[i] = TransformXY(factory, t.LineStringN(i), fn).(LineString)
		}
		return factory.CreateMultiLineString(lines)

	case MultiPolygon:
		polys := make([]Polygon, t.NumPolygons())
		for i := 0; i < t.NumPolygons(); i++ {
			polys[i] = TransformXY(factory, t.PolygonN(i), fn).(Polygon)
		}
		return factory.CreateMultiPolygon(polys)

	case GeometryCollection:
		geoms := make([]Geometry, t.NumGeometries())
		for i := 0; i < t.NumGeometries(); i++ {
			geoms[i] = TransformXY(factory, t.GeometryN(i), fn)
		}
		return factory.CreateGeometryCollection(geoms)

	default:
		return g
	}
}

// MapLinearComponents rebuilds g with every linear component (a
// LineString's or LinearRing's full vertex list) replaced by
// fn(vertices, closed), using factory to construct the replacement
// geometry. Unlike TransformXY, fn sees the whole component at once, so
// it can add or remove vertices -- needed by LineStringSnapper
// (spec.md §4.6), which inserts snapped vertices mid-segment rather than
// mapping one-for-one.
func MapLinearComponents(factory *GeometryFactory, g Geometry, fn func(xys []XY, closed bool) []XY) Geometry {
	switch t := g.(type) {
	case Point:
		return t

	case LineString:
		if t.IsEmpty() {
			return t
		}
		xys := fn(t.Coordinates().XYs(), t.IsClosed())
		return factory.CreateLineString(NewSequenceXY(xys))

	case LinearRing:
		xys := fn(t.Coordinates().XYs(), true)
		lr, err := factory.CreateLinearRing(NewSequenceXY(xys))
		if err != nil {
			return t
		}
		return lr

	case Polygon:
		if t.IsEmpty() {
			return t
		}
		shell := MapLinearComponents(factory, t.ExteriorRing(), fn).(LinearRing)
		holes := make([]LinearRing, t.NumInteriorRings())
		for i := 0; i < t.NumInteriorRings(); i++ {
			holes[i] = MapLinearComponents(factory, t.InteriorRingN(i), fn).(LinearRing)
		}
		return factory.CreatePolygon(shell, holes)

	case MultiPoint:
		return t

	case MultiLineString:
		lines := make([]LineString, t.NumLineStrings())
		for i := 0; i < t.NumLineStrings(); i++ {
			lines[i] = MapLinearComponents(factory, t.LineStringN(i), fn).(LineString)
		}
		return factory.CreateMultiLineString(lines)

	case MultiPolygon:
		polys := make([]Polygon, t.NumPolygons())
		for i := 0; i < t.NumPolygons(); i++ {
			polys[i] = MapLinearComponents(factory, t.PolygonN(i), fn).(Polygon)
		}
		return factory.CreateMultiPolygon(polys)

	case GeometryCollection:
		geoms := make([]Geometry, t.NumGeometries())
		for i := 0; i < t.NumGeometries(); i++ {
			geoms[i] = MapLinearComponents(factory, t.GeometryN(i), fn)
		}
		return factory.CreateGeometryCollection(geoms)

	default:
		return g
	}
}

func transformSequence(seq Sequence, fn func(XY) XY) Sequence {
	xys := seq.XYs()
	coords := make([]Coordinates, len(xys))
	for i, xy := range xys {
		coords[i] = Coordinates{XY: fn(xy)}
	}
	return NewSequence(coords)
}

// WalkXY calls visit once for every vertex coordinate in g, in geometry
// traversal order. Used by the common-bits extractor (spec.md §4.6) to
// scan both arguments' coordinates without duplicating the type switch
// TransformXY already performs.
func WalkXY(g Geometry, visit func(XY)) {
	switch t := g.(type) {
	case Point:
		if xy, ok := t.XY(); ok {
			visit(xy)
		}
	case LineString:
		for _, xy := range t.Coordinates().XYs() {
			visit(xy)
		}
	case LinearRing:
		for _, xy := range t.Coordinates().XYs() {
			visit(xy)
		}
	case Polygon:
		if t.IsEmpty() {
			return
		}
		WalkXY(t.ExteriorRing(), visit)
		for i := 0; i < t.NumInteriorRings(); i++ {
			WalkXY(t.InteriorRingN(i), visit)
		}
	case MultiPoint:
		for i := 0; i < t.NumPoints(); i++ {
			WalkXY(t.PointN(i), visit)
		}
	case MultiLineString:
		for i := 0; i < t.NumLineStrings(); i++ {
			WalkXY(t.LineStringN(i), visit)
		}
	case MultiPolygon:
		for i := 0; i < t.NumPolygons(); i++ {
			WalkXY(t.PolygonN(i), visit)
		}
	case GeometryCollection:
		for i := 0; i < t.NumGeometries(); i++ {
			WalkXY(t.GeometryN(i), visit)
		}
	}
}
