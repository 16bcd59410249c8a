package geom

// Polygon is a 2-dimensional geometry with one shell ring and zero or more
// hole rings, all properly nested (spec.md §3).
type Polygon struct {
	factory *GeometryFactory
	shell   LinearRing // empty LinearRing means an empty Polygon
	holes   []LinearRing
}

// NewPolygon builds a Polygon from a shell and holes. Rings are not
// reoriented; callers wanting canonical CW-shell/CCW-hole orientation
// should call ForceOrientation explicitly (mirrors spec.md §4.4 step 7,
// where orientation is an invariant enforced by the overlay, not by
// construction).
func NewPolygon(factory *GeometryFactory, shell LinearRing, holes []LinearRing) Polygon {
	hs := make([]LinearRing, len(holes))
	copy(hs, holes)
	return Polygon{factory: factory, shell: shell, holes: hs}
}

func (p Polygon) Type() GeometryType        { return TypePolygon }
func (p Polygon) Dimension() int            { return 2 }
func (p Polygon) IsEmpty() bool             { return p.shell.IsEmpty() }
func (p Polygon) Factory() *GeometryFactory { return p.factory }

func (p Polygon) Envelope() Envelope {
	return p.shell.Envelope()
}

func (p Polygon) ExteriorRing() LinearRing    { return p.shell }
func (p Polygon) NumInteriorRings() int       { return len(p.holes) }
func (p Polygon) InteriorRingN(n int) LinearRing { return p.holes[n] }

func (p Polygon) AsMultiPolygon() MultiPolygon {
	if p.IsEmpty() {
		return NewMultiPolygon(p.factory, nil)
	}
	return NewMultiPolygon(p.factory, []Polygon{p})
}

// ForceCCW returns an equivalent polygon with the shell wound CCW and every
// hole wound CW -- the convention the graph-construction step of this core
// builds its edges against (mirrors the teacher's DCEL construction, which
// normalizes orientation the same way before building half-edges).
func (p Polygon) ForceCCW() Polygon {
	shell := p.shell.ForceOrientation(true)
	holes := make([]LinearRing, len(p.holes))
	for i, h := range p.holes {
		holes[i] = h.ForceOrientation(false)
	}
	return NewPolygon(p.factory, shell, holes)
}

// ForceCW is the mirror of ForceCCW: shell wound CW, holes wound CCW. This
// is the OGC-canonical orientation spec.md §4.4/§8 requires of result
// polygons ("every shell is CW, every hole is CCW").
func (p Polygon) ForceCW() Polygon {
	shell := p.shell.ForceOrientation(false)
	holes := make([]LinearRing, len(p.holes))
	for i, h := range p.holes {
		holes[i] = h.ForceOrientation(true)
	}
	return NewPolygon(p.factory, shell, holes)
}

func (p Polygon) EqualsExact(other Geometry) bool {
	o, ok := other.(Polygon)
	if !ok {
		return false
	}
	if len(p.holes) != len(o.holes) {
		return false
	}
	if !p.shell.EqualsExact(o.shell) {
		return false
	}
	for i := range p.holes {
		if !p.holes[i].EqualsExact(o.holes[i]) {
			return false
		}
	}
	return true
}

// Area returns the polygon's area: the shell's absolute area minus the
// absolute area of every hole.
func (p Polygon) Area() float64 {
	area := absf(p.shell.SignedArea())
	for _, h := range p.holes {
		area -= absf(h.SignedArea())
	}
	return area
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
