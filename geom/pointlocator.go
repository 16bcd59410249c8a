package geom

// PointLocator classifies a coordinate against a geometry, per spec.md §6.
// The default implementation below is a plain ray-cast / on-segment test;
// callers needing an indexed PointLocator for large inputs may substitute
// their own implementation satisfying this interface.
type PointLocator interface {
	Locate(pt XY, g Geometry) Location
}

// SimplePointLocator is the default PointLocator shipped with this core.
type SimplePointLocator struct{}

func (SimplePointLocator) Locate(pt XY, g Geometry) Location {
	switch t := g.(type) {
	case Point:
		return locatePointInPoint(pt, t)
	case MultiPoint:
		return locatePointInMultiPoint(pt, t)
	case LineString:
		return locatePointInLineString(pt, t)
	case LinearRing:
		return locatePointInLineString(pt, t.AsLineString())
	case MultiLineString:
		return locatePointInMultiLineString(pt, t)
	case Polygon:
		return locatePointInPolygon(pt, t)
	case MultiPolygon:
		return locatePointInMultiPolygon(pt, t)
	case GeometryCollection:
		loc := LocExterior
		for i := 0; i < t.NumGeometries(); i++ {
			switch l := SimplePointLocator{}.Locate(pt, t.GeometryN(i)); l {
			case LocInterior:
				return LocInterior
			case LocBoundary:
				loc = LocBoundary
			}
		}
		return loc
	default:
		return LocExterior
	}
}

func locatePointInPoint(pt XY, p Point) Location {
	if xy, ok := p.XY(); ok && xy.Equals(pt) {
		return LocInterior
	}
	return LocExterior
}

func locatePointInMultiPoint(pt XY, mp MultiPoint) Location {
	for i := 0; i < mp.NumPoints(); i++ {
		if locatePointInPoint(pt, mp.PointN(i)) == LocInterior {
			return LocInterior
		}
	}
	return LocExterior
}

func locatePointInLineString(pt XY, ls LineString) Location {
	if ls.IsEmpty() {
		return LocExterior
	}
	if !ls.IsClosed() && (pt.Equals(ls.StartPoint().coords.XY) || pt.Equals(ls.EndPoint().coords.XY)) {
		return LocBoundary
	}
	for _, seg := range ls.Segments() {
		if pointOnSegment(pt, seg[0], seg[1]) {
			return LocInterior
		}
	}
	return LocExterior
}

func locatePointInMultiLineString(pt XY, mls MultiLineString) Location {
	// mod-2 boundary rule: an endpoint shared by an even number of
	// non-closed component linestrings is interior, by an odd number is
	// boundary.
	endpointHits := 0
	for i := 0; i < mls.NumLineStrings(); i++ {
		ls := mls.LineStringN(i)
		if ls.IsEmpty() {
			continue
		}
		for _, seg := range ls.Segments() {
			if pointOnSegment(pt, seg[0], seg[1]) {
				if !ls.IsClosed() && (pt.Equals(ls.StartPoint().coords.XY) || pt.Equals(ls.EndPoint().coords.XY)) {
					endpointHits++
					continue
				}
				return LocInterior
			}
		}
	}
	if endpointHits == 0 {
		return LocExterior
	}
	if endpointHits%2 == 1 {
		return LocBoundary
	}
	return LocInterior
}

func locatePointInPolygon(pt XY, p Polygon) Location {
	if p.IsEmpty() {
		return LocExterior
	}
	switch pointRingSide(pt, p.ExteriorRing()) {
	case sideOutside:
		return LocExterior
	case sideBoundary:
		return LocBoundary
	}
	for i := 0; i < p.NumInteriorRings(); i++ {
		switch pointRingSide(pt, p.InteriorRingN(i)) {
		case sideInside:
			return LocExterior
		case sideBoundary:
			return LocBoundary
		}
	}
	return LocInterior
}

func locatePointInMultiPolygon(pt XY, mp MultiPolygon) Location {
	boundary := false
	for i := 0; i < mp.NumPolygons(); i++ {
		switch locatePointInPolygon(pt, mp.PolygonN(i)) {
		case LocInterior:
			return LocInterior
		case LocBoundary:
			boundary = true
		}
	}
	if boundary {
		return LocBoundary
	}
	return LocExterior
}

// ringSide is the result of the point-in-ring test used internally by
// this core -- the one spatial predicate spec.md §1 keeps in scope besides
// overlay itself.
type ringSide int

const (
	sideOutside ringSide = iota
	sideInside
	sideBoundary
)

// pointRingSide classifies pt against ring using a crossing-number (ray
// casting) test, with an on-segment pre-check for the boundary case.
// Grounded on the teacher's hasIntersectionPointWithPolygon /
// pointRingSide idiom (geom/alg_intersects.go).
func pointRingSide(pt XY, ring LinearRing) ringSide {
	xys := ring.Coordinates().XYs()
	n := len(xys)
	if n < 4 {
		return sideOutside
	}
	for i := 0; i < n-1; i++ {
		if pointOnSegment(pt, xys[i], xys[i+1]) {
			return sideBoundary
		}
	}

	inside := false
	for i := 0; i < n-1; i++ {
		a, b := xys[i], xys[i+1]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			xIntersect := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if pt.X < xIntersect {
				inside = !inside
			}
		}
	}
	if inside {
		return sideInside
	}
	return sideOutside
}

// RingContainsPoint reports whether pt lies inside or on the boundary of
// ring, exposing the internal ring-side test for use by ring-assembly
// code outside this package (spec.md §4.4 step 6's orphan-hole search).
func RingContainsPoint(ring LinearRing, pt XY) bool {
	return pointRingSide(pt, ring) != sideOutside
}

// pointOnSegment reports whether pt lies on the closed segment [a,b].
func pointOnSegment(pt, a, b XY) bool {
	env := NewEnvelope(a, b)
	if !env.Contains(pt) {
		return false
	}
	cross := b.Sub(a).Cross(pt.Sub(a))
	return cross == 0
}
