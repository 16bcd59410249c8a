package graph

import "github.com/spatialcore/overlay/geom"

// Edge is an ordered coordinate sequence plus the Label and Depth
// accumulated for it during noding and unique-edge insertion (spec.md §3).
// It is owned by the PlanarGraph it was added to via AddEdges.
type Edge struct {
	coords []geom.XY
	label  Label
	depth  Depth

	isInResult bool
	isCovered  bool
	isIsolated bool
}

// NewEdge returns an Edge over coords with the given initial label. depth
// starts unassigned; callers seed it explicitly per spec.md §4.1 step 5
// ("if the existing Depth is null, seed it with the existing label").
func NewEdge(coords []geom.XY, label Label) *Edge {
	return &Edge{coords: coords, label: label, depth: NewDepth(), isIsolated: true}
}

// Coordinates returns the edge's forward-ordered coordinate sequence.
func (e *Edge) Coordinates() []geom.XY { return e.coords }

// NumPoints returns the number of coordinates in the edge.
func (e *Edge) NumPoints() int { return len(e.coords) }

// GetCoordinate returns the i'th coordinate in forward order.
func (e *Edge) GetCoordinate(i int) geom.XY { return e.coords[i] }

// Label returns a pointer to the edge's label, for in-place mutation
// during labelling.
func (e *Edge) Label() *Label { return &e.label }

// Depth returns a pointer to the edge's depth, for in-place mutation
// during unique-edge insertion and normalization.
func (e *Edge) Depth() *Depth { return &e.depth }

// SetIsolated marks whether this edge has not been merged with any other
// input edge. Unique-edge insertion clears this the first time a second
// occurrence of the same coordinate sequence is seen.
func (e *Edge) SetIsolated(v bool) { e.isIsolated = v }
func (e *Edge) IsIsolated() bool   { return e.isIsolated }

// IsCollapsed reports whether this edge is an area edge whose two sides
// have collapsed to the same location on either argument (spec.md §3's
// "delta = 0 => edge lies inside area and collapses to a line").
func (e *Edge) IsCollapsed() bool {
	for arg := 0; arg < 2; arg++ {
		if e.label.IsArea(arg) && e.depth.GetDelta(arg) == 0 {
			return true
		}
	}
	return false
}

// CollapsedEdge returns the line-labelled equivalent of e used once it has
// been identified as collapsed, per spec.md §4.2's "replaced for their
// collapsedEdge() equivalent". The returned edge shares e's coordinates.
func (e *Edge) CollapsedEdge() *Edge {
	label := e.label
	for arg := 0; arg < 2; arg++ {
		if e.label.IsArea(arg) && e.depth.GetDelta(arg) == 0 {
			label = label.ToLine(arg)
		}
	}
	out := NewEdge(e.coords, label)
	out.depth = e.depth
	out.isIsolated = e.isIsolated
	return out
}

// SetInResult/IsInResult mark and query whether this edge's underlying
// line contributes to the result geometry.
func (e *Edge) SetInResult(v bool) { e.isInResult = v }
func (e *Edge) IsInResult() bool   { return e.isInResult }

// SetCovered/IsCovered mark and query whether this edge's line is
// subsumed by a result area and must not also be emitted as a LineString.
func (e *Edge) SetCovered(v bool) { e.isCovered = v }
func (e *Edge) IsCovered() bool   { return e.isCovered }

// EqualsForward reports whether other has exactly the same coordinates in
// the same order as e.
func (e *Edge) EqualsForward(other []geom.XY) bool {
	if len(e.coords) != len(other) {
		return false
	}
	for i, c := range e.coords {
		if !c.Equals(other[i]) {
			return false
		}
	}
	return true
}

// EqualsReverse reports whether other is e's coordinate sequence reversed.
func (e *Edge) EqualsReverse(other []geom.XY) bool {
	n := len(e.coords)
	if n != len(other) {
		return false
	}
	for i := 0; i < n; i++ {
		if !e.coords[i].Equals(other[n-1-i]) {
			return false
		}
	}
	return true
}

// IsPointwiseEqual reports whether other has the same coordinate sequence
// as e, forward or reversed -- the equality EdgeList's unique-insertion
// index (spec.md §4.1 step 5) keys on.
func (e *Edge) IsPointwiseEqual(other []geom.XY) (equal bool, reversed bool) {
	if e.EqualsForward(other) {
		return true, false
	}
	if e.EqualsReverse(other) {
		return true, true
	}
	return false, false
}
