package geom

// LineIntersector computes the intersection of two line segments, per
// spec.md §6. A single call to ComputeIntersection resets and repopulates
// the intersector's state; the Has/Is/Get accessors describe the result of
// the most recent call.
type LineIntersector interface {
	ComputeIntersection(p0, p1, p2, p3 XY)
	HasIntersection() bool
	IsProper() bool
	IsInteriorIntersection() bool
	NumIntersections() int
	GetIntersection(i int) XY
}

// RobustLineIntersector is the default LineIntersector shipped with this
// core. Orientation tests are grounded on the teacher's
// hasIntersectionLineWithLine (geom/alg_intersects.go); this type
// generalizes that boolean test to also report *where* the segments meet.
type RobustLineIntersector struct {
	hasIntersection bool
	proper          bool
	points          [2]XY
	numPoints       int
	p0, p1, p2, p3  XY
}

type orientation int

const (
	collinear orientation = iota
	clockwise
	counterClockwise
)

func computeOrientation(p, q, s XY) orientation {
	cp := q.Sub(p).Cross(s.Sub(q))
	switch {
	case cp > 0:
		return counterClockwise
	case cp < 0:
		return clockwise
	default:
		return collinear
	}
}

func onSegment(a, b, p XY) bool {
	return pointOnSegment(p, a, b)
}

func (li *RobustLineIntersector) ComputeIntersection(p0, p1, p2, p3 XY) {
	li.p0, li.p1, li.p2, li.p3 = p0, p1, p2, p3
	li.hasIntersection = false
	li.proper = false
	li.numPoints = 0

	env1 := NewEnvelope(p0, p1)
	env2 := NewEnvelope(p2, p3)
	if !env1.Intersects(env2) {
		return
	}

	o1 := computeOrientation(p0, p1, p2)
	o2 := computeOrientation(p0, p1, p3)
	o3 := computeOrientation(p2, p3, p0)
	o4 := computeOrientation(p2, p3, p1)

	if o1 != o2 && o3 != o4 {
		li.hasIntersection = true
		li.proper = !(p2.Equals(p0) || p2.Equals(p1) || p3.Equals(p0) || p3.Equals(p1))
		li.numPoints = 1
		li.points[0] = computeProperIntersection(p0, p1, p2, p3)
		return
	}

	if o1 == collinear && onSegment(p0, p1, p2) {
		li.addCollinearPoint(p2)
	}
	if o2 == collinear && onSegment(p0, p1, p3) {
		li.addCollinearPoint(p3)
	}
	if o3 == collinear && onSegment(p2, p3, p0) {
		li.addCollinearPoint(p0)
	}
	if o4 == collinear && onSegment(p2, p3, p1) {
		li.addCollinearPoint(p1)
	}
	li.hasIntersection = li.numPoints > 0
}

func (li *RobustLineIntersector) addCollinearPoint(pt XY) {
	for i := 0; i < li.numPoints; i++ {
		if li.points[i].Equals(pt) {
			return
		}
	}
	if li.numPoints < 2 {
		li.points[li.numPoints] = pt
		li.numPoints++
	}
}

// computeProperIntersection computes the exact crossing point of two
// segments known (by orientation tests) to properly cross.
func computeProperIntersection(p0, p1, p2, p3 XY) XY {
	d1 := p1.Sub(p0)
	d2 := p3.Sub(p2)
	denom := d1.Cross(d2)
	if denom == 0 {
		// Parallel (shouldn't happen given a proper crossing), fall back
		// to the midpoint of the overlapping span.
		return p0.Midpoint(p2)
	}
	t := p2.Sub(p0).Cross(d2) / denom
	return p0.Add(d1.Scale(t))
}

func (li *RobustLineIntersector) HasIntersection() bool { return li.hasIntersection }
func (li *RobustLineIntersector) IsProper() bool        { return li.proper }

// IsInteriorIntersection reports whether the intersection point is
// interior to both segments (i.e. not a shared endpoint).
func (li *RobustLineIntersector) IsInteriorIntersection() bool {
	if !li.hasIntersection {
		return false
	}
	for i := 0; i < li.numPoints; i++ {
		pt := li.points[i]
		onEnd1 := pt.Equals(li.p0) || pt.Equals(li.p1)
		onEnd2 := pt.Equals(li.p2) || pt.Equals(li.p3)
		if !onEnd1 && !onEnd2 {
			return true
		}
	}
	return false
}

func (li *RobustLineIntersector) NumIntersections() int { return li.numPoints }
func (li *RobustLineIntersector) GetIntersection(i int) XY { return li.points[i] }
