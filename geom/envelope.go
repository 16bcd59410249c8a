package geom

import "math"

// Envelope is an axis-aligned bounding box. The zero value is the NULL
// (empty) envelope.
type Envelope struct {
	set              bool
	minX, minY       float64
	maxX, maxY       float64
}

// NewEnvelope returns the envelope containing the given points.
func NewEnvelope(pts ...XY) Envelope {
	var e Envelope
	for _, pt := range pts {
		e = e.ExtendXY(pt)
	}
	return e
}

// IsNull reports whether the envelope is empty.
func (e Envelope) IsNull() bool { return !e.set }

func (e Envelope) MinX() float64 { return e.minX }
func (e Envelope) MinY() float64 { return e.minY }
func (e Envelope) MaxX() float64 { return e.maxX }
func (e Envelope) MaxY() float64 { return e.maxY }

// ExtendXY returns a new envelope that also contains xy.
func (e Envelope) ExtendXY(xy XY) Envelope {
	if !e.set {
		return Envelope{true, xy.X, xy.Y, xy.X, xy.Y}
	}
	return Envelope{
		true,
		math.Min(e.minX, xy.X), math.Min(e.minY, xy.Y),
		math.Max(e.maxX, xy.X), math.Max(e.maxY, xy.Y),
	}
}

// Union returns the smallest envelope containing both e and o.
func (e Envelope) Union(o Envelope) Envelope {
	if !e.set {
		return o
	}
	if !o.set {
		return e
	}
	return Envelope{
		true,
		math.Min(e.minX, o.minX), math.Min(e.minY, o.minY),
		math.Max(e.maxX, o.maxX), math.Max(e.maxY, o.maxY),
	}
}

// Intersection returns the overlap between e and o, or the NULL envelope if
// they don't overlap.
func (e Envelope) Intersection(o Envelope) Envelope {
	if !e.set || !o.set {
		return Envelope{}
	}
	minX, minY := math.Max(e.minX, o.minX), math.Max(e.minY, o.minY)
	maxX, maxY := math.Min(e.maxX, o.maxX), math.Min(e.maxY, o.maxY)
	if minX > maxX || minY > maxY {
		return Envelope{}
	}
	return Envelope{true, minX, minY, maxX, maxY}
}

// Intersects reports whether e and o share at least one point.
func (e Envelope) Intersects(o Envelope) bool {
	return !e.Intersection(o).IsNull()
}

// Contains reports whether xy falls within (or on the boundary of) e.
func (e Envelope) Contains(xy XY) bool {
	return e.set &&
		xy.X >= e.minX && xy.X <= e.maxX &&
		xy.Y >= e.minY && xy.Y <= e.maxY
}

// ContainsEnvelope reports whether o is entirely contained within e.
func (e Envelope) ContainsEnvelope(o Envelope) bool {
	if !o.set {
		return true
	}
	return e.set &&
		o.minX >= e.minX && o.maxX <= e.maxX &&
		o.minY >= e.minY && o.maxY <= e.maxY
}

// Distance returns the distance between the closest points of e and o (zero
// if they overlap).
func (e Envelope) Distance(o Envelope) float64 {
	if !e.set || !o.set {
		return math.Inf(1)
	}
	dx := math.Max(0, math.Max(e.minX-o.maxX, o.minX-e.maxX))
	dy := math.Max(0, math.Max(e.minY-o.maxY, o.minY-e.maxY))
	return math.Hypot(dx, dy)
}

// Diagonal returns the length of the envelope's diagonal, or zero if null.
func (e Envelope) Diagonal() float64 {
	if !e.set {
		return 0
	}
	return math.Hypot(e.maxX-e.minX, e.maxY-e.minY)
}

// Area returns the area covered by the envelope, honouring degenerate
// (zero width/height) envelopes.
func (e Envelope) Area() float64 {
	if !e.set {
		return 0
	}
	return (e.maxX - e.minX) * (e.maxY - e.minY)
}
