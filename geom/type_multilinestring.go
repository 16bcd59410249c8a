package geom

// MultiLineString is a 1-dimensional collection of LineStrings.
type MultiLineString struct {
	factory *GeometryFactory
	lines   []LineString
}

func NewMultiLineString(factory *GeometryFactory, lines []LineString) MultiLineString {
	cp := make([]LineString, len(lines))
	copy(cp, lines)
	return MultiLineString{factory: factory, lines: cp}
}

func (m MultiLineString) Type() GeometryType         { return TypeMultiLineString }
func (m MultiLineString) Dimension() int             { return 1 }
func (m MultiLineString) IsEmpty() bool              { return len(m.lines) == 0 }
func (m MultiLineString) Factory() *GeometryFactory  { return m.factory }
func (m MultiLineString) NumLineStrings() int        { return len(m.lines) }
func (m MultiLineString) LineStringN(n int) LineString { return m.lines[n] }

func (m MultiLineString) Envelope() Envelope {
	var e Envelope
	for _, l := range m.lines {
		e = e.Union(l.Envelope())
	}
	return e
}

func (m MultiLineString) EqualsExact(other Geometry) bool {
	o, ok := other.(MultiLineString)
	if !ok || len(m.lines) != len(o.lines) {
		return false
	}
	for i := range m.lines {
		if !m.lines[i].EqualsExact(o.lines[i]) {
			return false
		}
	}
	return true
}
