package geom

// MultiPolygon is a 2-dimensional collection of Polygons with pairwise
// non-overlapping interiors.
type MultiPolygon struct {
	factory *GeometryFactory
	polys   []Polygon
}

func NewMultiPolygon(factory *GeometryFactory, polys []Polygon) MultiPolygon {
	cp := make([]Polygon, len(polys))
	copy(cp, polys)
	return MultiPolygon{factory: factory, polys: cp}
}

func (m MultiPolygon) Type() GeometryType        { return TypeMultiPolygon }
func (m MultiPolygon) Dimension() int            { return 2 }
func (m MultiPolygon) IsEmpty() bool             { return len(m.polys) == 0 }
func (m MultiPolygon) Factory() *GeometryFactory { return m.factory }
func (m MultiPolygon) NumPolygons() int          { return len(m.polys) }
func (m MultiPolygon) PolygonN(n int) Polygon    { return m.polys[n] }

func (m MultiPolygon) Envelope() Envelope {
	var e Envelope
	for _, p := range m.polys {
		e = e.Union(p.Envelope())
	}
	return e
}

// ForceCCW returns every constituent polygon force-oriented shell-CCW,
// hole-CW, mirroring Polygon.ForceCCW.
func (m MultiPolygon) ForceCCW() MultiPolygon {
	out := make([]Polygon, len(m.polys))
	for i, p := range m.polys {
		out[i] = p.ForceCCW()
	}
	return NewMultiPolygon(m.factory, out)
}

func (m MultiPolygon) EqualsExact(other Geometry) bool {
	o, ok := other.(MultiPolygon)
	if !ok || len(m.polys) != len(o.polys) {
		return false
	}
	for i := range m.polys {
		if !m.polys[i].EqualsExact(o.polys[i]) {
			return false
		}
	}
	return true
}

// Area returns the sum of the areas of the constituent polygons.
func (m MultiPolygon) Area() float64 {
	var sum float64
	for _, p := range m.polys {
		sum += p.Area()
	}
	return sum
}
