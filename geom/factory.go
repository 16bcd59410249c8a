package geom

// GeometryFactory is the assumed external collaborator from spec.md §6
// responsible for constructing geometries and choosing the most specific
// result type for a heterogeneous list. Every Geometry produced by this
// core carries a reference back to the GeometryFactory that built it.
type GeometryFactory struct {
	precision PrecisionModel
}

// NewGeometryFactory builds a factory using the given precision model.
func NewGeometryFactory(precision PrecisionModel) *GeometryFactory {
	return &GeometryFactory{precision: precision}
}

func (f *GeometryFactory) PrecisionModel() PrecisionModel { return f.precision }

func (f *GeometryFactory) makePrecise(xy XY) XY { return f.precision.MakePrecise(xy) }

func (f *GeometryFactory) CreatePoint(c Coordinates) Point {
	c.XY = f.makePrecise(c.XY)
	return Point{factory: f, coords: c}
}

func (f *GeometryFactory) CreateEmptyPoint() Point {
	return Point{factory: f, empty: true}
}

func (f *GeometryFactory) CreateLineString(seq Sequence) LineString {
	return LineString{factory: f, seq: f.preciseSeq(seq)}
}

func (f *GeometryFactory) CreateLinearRing(seq Sequence) (LinearRing, error) {
	return NewLinearRing(f, f.preciseSeq(seq))
}

func (f *GeometryFactory) preciseSeq(seq Sequence) Sequence {
	if f.precision.Type() != Fixed {
		return seq
	}
	coords := make([]Coordinates, seq.Length())
	for i := 0; i < seq.Length(); i++ {
		c := seq.GetCoordinate(i)
		c.XY = f.makePrecise(c.XY)
		coords[i] = c
	}
	return NewSequence(coords)
}

func (f *GeometryFactory) CreatePolygon(shell LinearRing, holes []LinearRing) Polygon {
	return NewPolygon(f, shell, holes)
}

func (f *GeometryFactory) CreateMultiPoint(pts []Point) MultiPoint {
	return NewMultiPoint(f, pts)
}

func (f *GeometryFactory) CreateMultiLineString(lines []LineString) MultiLineString {
	return NewMultiLineString(f, lines)
}

func (f *GeometryFactory) CreateMultiPolygon(polys []Polygon) MultiPolygon {
	return NewMultiPolygon(f, polys)
}

func (f *GeometryFactory) CreateGeometryCollection(geoms []Geometry) GeometryCollection {
	return NewGeometryCollection(f, geoms)
}

// CreateEmpty returns an atomic empty geometry of the given dimension, per
// spec.md §4.7's empty-result policy (dim 0 -> Point, 1 -> LineString,
// 2 -> Polygon, anything else -> GeometryCollection).
func (f *GeometryFactory) CreateEmpty(dim int) Geometry {
	switch dim {
	case 0:
		return f.CreateEmptyPoint()
	case 1:
		return f.CreateLineString(Sequence{})
	case 2:
		empty, _ := f.CreateLinearRing(Sequence{})
		return f.CreatePolygon(empty, nil)
	default:
		return f.CreateGeometryCollection(nil)
	}
}

// BuildGeometry returns the most specific geometry type able to represent
// geoms: a single element is returned unwrapped, a homogeneous list becomes
// the matching Multi* type, and a heterogeneous (or empty) list becomes a
// GeometryCollection. This is factory.build(geomList) from spec.md §4.3.
func (f *GeometryFactory) BuildGeometry(geoms []Geometry) Geometry {
	if len(geoms) == 0 {
		return f.CreateGeometryCollection(nil)
	}
	if len(geoms) == 1 {
		return geoms[0]
	}

	allPoints, allLines, allPolys := true, true, true
	for _, g := range geoms {
		switch g.Type() {
		case TypePoint:
			allLines, allPolys = false, false
		case TypeLineString, TypeLinearRing:
			allPoints, allPolys = false, false
		case TypePolygon:
			allPoints, allLines = false, false
		default:
			allPoints, allLines, allPolys = false, false, false
		}
	}

	switch {
	case allPoints:
		pts := make([]Point, len(geoms))
		for i, g := range geoms {
			pts[i] = g.(Point)
		}
		return f.CreateMultiPoint(pts)
	case allLines:
		lines := make([]LineString, len(geoms))
		for i, g := range geoms {
			if ls, ok := g.(LineString); ok {
				lines[i] = ls
			} else {
				lines[i] = g.(LinearRing).AsLineString()
			}
		}
		return f.CreateMultiLineString(lines)
	case allPolys:
		polys := make([]Polygon, len(geoms))
		for i, g := range geoms {
			polys[i] = g.(Polygon)
		}
		return f.CreateMultiPolygon(polys)
	default:
		return f.CreateGeometryCollection(geoms)
	}
}
