package geom

// Point is a 0-dimensional geometry representing a single location.
type Point struct {
	factory *GeometryFactory
	empty   bool
	coords  Coordinates
}

func (p Point) Type() GeometryType      { return TypePoint }
func (p Point) Dimension() int          { return 0 }
func (p Point) IsEmpty() bool           { return p.empty }
func (p Point) Factory() *GeometryFactory { return p.factory }

func (p Point) Envelope() Envelope {
	if p.empty {
		return Envelope{}
	}
	return NewEnvelope(p.coords.XY)
}

// XY returns the point's coordinate and true, or the zero XY and false if
// the point is empty.
func (p Point) XY() (XY, bool) {
	if p.empty {
		return XY{}, false
	}
	return p.coords.XY, true
}

func (p Point) Coordinates() Coordinates { return p.coords }

func (p Point) EqualsExact(other Geometry) bool {
	o, ok := other.(Point)
	if !ok {
		return false
	}
	if p.empty || o.empty {
		return p.empty == o.empty
	}
	return p.coords.Equals(o.coords)
}

func (p Point) AsMultiPoint() MultiPoint {
	if p.empty {
		return NewMultiPoint(p.factory, nil)
	}
	return NewMultiPoint(p.factory, []Point{p})
}
