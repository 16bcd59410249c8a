package geom

// Sequence is an ordered coordinate sequence, the building block for
// LineString, LinearRing, and the rings of Polygon. It mirrors the
// CoordinateSequence contract from spec.md §6: Size/GetCoordinate/
// SetOrdinate/Copy.
type Sequence struct {
	coords []Coordinates
}

// NewSequence builds a Sequence from coordinates. The caller retains no
// reference to coords after calling NewSequence (the slice is copied).
func NewSequence(coords []Coordinates) Sequence {
	cp := make([]Coordinates, len(coords))
	copy(cp, coords)
	return Sequence{cp}
}

// NewSequenceXY builds a Sequence from bare XY values (no Z).
func NewSequenceXY(pts []XY) Sequence {
	coords := make([]Coordinates, len(pts))
	for i, p := range pts {
		coords[i] = Coordinates{XY: p}
	}
	return Sequence{coords}
}

func (s Sequence) Length() int { return len(s.coords) }

func (s Sequence) GetCoordinate(i int) Coordinates { return s.coords[i] }

func (s Sequence) GetXY(i int) XY { return s.coords[i].XY }

// SetOrdinate returns a new Sequence with ordinate ord ('x' or 'y') of
// coordinate i replaced by value. Sequence is otherwise immutable.
func (s Sequence) SetOrdinate(i int, ord byte, value float64) Sequence {
	cp := make([]Coordinates, len(s.coords))
	copy(cp, s.coords)
	switch ord {
	case 'x':
		cp[i].X = value
	case 'y':
		cp[i].Y = value
	}
	return Sequence{cp}
}

// Copy returns an independent copy of the sequence.
func (s Sequence) Copy() Sequence {
	return NewSequence(s.coords)
}

// IsClosed reports whether the first and last coordinates coincide (2D).
func (s Sequence) IsClosed() bool {
	n := len(s.coords)
	return n > 0 && s.coords[0].XY.Equals(s.coords[n-1].XY)
}

// Reversed returns a new Sequence with coordinate order reversed.
func (s Sequence) Reversed() Sequence {
	n := len(s.coords)
	out := make([]Coordinates, n)
	for i, c := range s.coords {
		out[n-1-i] = c
	}
	return Sequence{out}
}

// Envelope returns the bounding box of every coordinate in the sequence.
func (s Sequence) Envelope() Envelope {
	var e Envelope
	for _, c := range s.coords {
		e = e.ExtendXY(c.XY)
	}
	return e
}

// XYs returns the XY values of the sequence as a plain slice.
func (s Sequence) XYs() []XY {
	out := make([]XY, len(s.coords))
	for i, c := range s.coords {
		out[i] = c.XY
	}
	return out
}

func reverseXYs(xys []XY) []XY {
	n := len(xys)
	out := make([]XY, n)
	for i, xy := range xys {
		out[n-1-i] = xy
	}
	return out
}
