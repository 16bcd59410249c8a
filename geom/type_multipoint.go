package geom

// MultiPoint is a 0-dimensional collection of points, not connected or
// ordered (spec.md §3).
type MultiPoint struct {
	factory *GeometryFactory
	pts     []Point
}

func NewMultiPoint(factory *GeometryFactory, pts []Point) MultiPoint {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return MultiPoint{factory: factory, pts: cp}
}

func (m MultiPoint) Type() GeometryType        { return TypeMultiPoint }
func (m MultiPoint) Dimension() int            { return 0 }
func (m MultiPoint) IsEmpty() bool             { return len(m.pts) == 0 }
func (m MultiPoint) Factory() *GeometryFactory { return m.factory }
func (m MultiPoint) NumPoints() int            { return len(m.pts) }
func (m MultiPoint) PointN(n int) Point        { return m.pts[n] }

func (m MultiPoint) Envelope() Envelope {
	var e Envelope
	for _, p := range m.pts {
		e = e.Union(p.Envelope())
	}
	return e
}

func (m MultiPoint) EqualsExact(other Geometry) bool {
	o, ok := other.(MultiPoint)
	if !ok || len(m.pts) != len(o.pts) {
		return false
	}
	for i := range m.pts {
		if !m.pts[i].EqualsExact(o.pts[i]) {
			return false
		}
	}
	return true
}
