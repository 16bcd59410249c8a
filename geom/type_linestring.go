package geom

// LineString is a 1-dimensional geometry made up of a sequence of at least
// two coordinates. It may be open or closed (spec.md §3).
type LineString struct {
	factory *GeometryFactory
	seq     Sequence
}

func (l LineString) Type() GeometryType        { return TypeLineString }
func (l LineString) Dimension() int            { return 1 }
func (l LineString) IsEmpty() bool             { return l.seq.Length() == 0 }
func (l LineString) Factory() *GeometryFactory { return l.factory }
func (l LineString) Envelope() Envelope        { return l.seq.Envelope() }
func (l LineString) Coordinates() Sequence     { return l.seq }
func (l LineString) NumPoints() int            { return l.seq.Length() }

func (l LineString) PointN(n int) Point {
	return l.factory.CreatePoint(l.seq.GetCoordinate(n))
}

func (l LineString) StartPoint() Point { return l.PointN(0) }
func (l LineString) EndPoint() Point   { return l.PointN(l.seq.Length() - 1) }

func (l LineString) IsClosed() bool { return l.seq.Length() >= 2 && l.seq.IsClosed() }

// AsMultiLineString wraps l in a MultiLineString.
func (l LineString) AsMultiLineString() MultiLineString {
	if l.IsEmpty() {
		return NewMultiLineString(l.factory, nil)
	}
	return NewMultiLineString(l.factory, []LineString{l})
}

func (l LineString) EqualsExact(other Geometry) bool {
	o, ok := other.(LineString)
	if !ok {
		return false
	}
	if l.seq.Length() != o.seq.Length() {
		return false
	}
	for i := 0; i < l.seq.Length(); i++ {
		if !l.seq.GetXY(i).Equals(o.seq.GetXY(i)) {
			return false
		}
	}
	return true
}

// Segments returns the consecutive coordinate pairs making up the line.
func (l LineString) Segments() [][2]XY {
	xys := l.seq.XYs()
	if len(xys) < 2 {
		return nil
	}
	out := make([][2]XY, len(xys)-1)
	for i := 0; i < len(xys)-1; i++ {
		out[i] = [2]XY{xys[i], xys[i+1]}
	}
	return out
}

// LinearRing is a closed LineString with at least 4 coordinates
// (spec.md §3).
type LinearRing struct {
	ls LineString
}

// NewLinearRing validates and wraps seq as a LinearRing. seq must be closed
// (first coordinate equal to last) and have at least 4 coordinates.
func NewLinearRing(factory *GeometryFactory, seq Sequence) (LinearRing, error) {
	if n := seq.Length(); n != 0 && n < 4 {
		return LinearRing{}, &InvalidArgumentError{Msg: "LinearRing must have 0 or at least 4 coordinates"}
	}
	if seq.Length() != 0 && !seq.IsClosed() {
		return LinearRing{}, &InvalidArgumentError{Msg: "LinearRing must be closed"}
	}
	return LinearRing{ls: LineString{factory: factory, seq: seq}}, nil
}

func (r LinearRing) Type() GeometryType        { return TypeLinearRing }
func (r LinearRing) Dimension() int            { return 1 }
func (r LinearRing) IsEmpty() bool             { return r.ls.IsEmpty() }
func (r LinearRing) Factory() *GeometryFactory { return r.ls.factory }
func (r LinearRing) Envelope() Envelope        { return r.ls.Envelope() }
func (r LinearRing) Coordinates() Sequence     { return r.ls.seq }
func (r LinearRing) NumPoints() int            { return r.ls.NumPoints() }
func (r LinearRing) PointN(n int) Point        { return r.ls.PointN(n) }
func (r LinearRing) StartPoint() Point         { return r.ls.StartPoint() }
func (r LinearRing) AsLineString() LineString  { return r.ls }

func (r LinearRing) EqualsExact(other Geometry) bool {
	o, ok := other.(LinearRing)
	if !ok {
		return false
	}
	return r.ls.EqualsExact(o.ls)
}

// SignedArea returns the shoelace-formula signed area of the ring: positive
// for counter-clockwise rings, negative for clockwise rings.
func (r LinearRing) SignedArea() float64 {
	xys := r.ls.seq.XYs()
	if len(xys) < 4 {
		return 0
	}
	var sum float64
	for i := 0; i < len(xys)-1; i++ {
		sum += xys[i].X*xys[i+1].Y - xys[i+1].X*xys[i].Y
	}
	return sum / 2
}

// IsCCW reports whether the ring is wound counter-clockwise.
func (r LinearRing) IsCCW() bool { return r.SignedArea() > 0 }

// ForceOrientation returns a ring wound in the requested direction
// (ccw=true for CCW), reversing the coordinate order if necessary.
func (r LinearRing) ForceOrientation(ccw bool) LinearRing {
	if r.IsEmpty() || r.IsCCW() == ccw {
		return r
	}
	reversed, err := NewLinearRing(r.ls.factory, r.ls.seq.Reversed())
	if err != nil {
		// Reversing a valid ring cannot produce an invalid one.
		panic(err)
	}
	return reversed
}
