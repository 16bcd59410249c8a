package graph

import (
	"math"
	"sort"

	"github.com/spatialcore/overlay/geom"
)

// DirectedEdge is one of the two orientations of an Edge (spec.md §3). Two
// DirectedEdges are created per Edge by PlanarGraph.AddEdges and linked as
// each other's Sym; de.Sym().Sym() == de always holds.
type DirectedEdge struct {
	edge      *Edge
	isForward bool
	node      *Node // origin node of this directed edge
	sym       *DirectedEdge
	next      *DirectedEdge
	nextMin   *DirectedEdge

	edgeRing    *EdgeRing
	minEdgeRing *EdgeRing

	isInResult bool
	isVisited  bool

	p0, p1 geom.XY
	angle  float64
}

// NewDirectedEdge builds one orientation of edge. p0/p1 are this
// direction's origin and destination coordinates.
func NewDirectedEdge(edge *Edge, isForward bool) *DirectedEdge {
	coords := edge.Coordinates()
	de := &DirectedEdge{edge: edge, isForward: isForward}
	if isForward {
		de.p0, de.p1 = coords[0], coords[1]
	} else {
		n := len(coords)
		de.p0, de.p1 = coords[n-1], coords[n-2]
	}
	de.angle = math.Atan2(de.p1.Y-de.p0.Y, de.p1.X-de.p0.X)
	return de
}

// Edge returns the underlying Edge this directed edge is one side of.
func (de *DirectedEdge) Edge() *Edge { return de.edge }

// IsForward reports whether this directed edge walks its edge's
// coordinate sequence in forward order.
func (de *DirectedEdge) IsForward() bool { return de.isForward }

// Sym returns the opposite-orientation directed edge sharing the same
// Edge.
func (de *DirectedEdge) Sym() *DirectedEdge { return de.sym }

// Origin returns the coordinate this directed edge starts at.
func (de *DirectedEdge) Origin() geom.XY { return de.p0 }

// Dest returns the coordinate this directed edge ends at.
func (de *DirectedEdge) Dest() geom.XY { return de.p1 }

// Node returns the node this directed edge originates from.
func (de *DirectedEdge) Node() *Node { return de.node }

// Angle returns the azimuth of the first segment of this directed edge,
// used to order directed edges CCW around their origin node.
func (de *DirectedEdge) Angle() float64 { return de.angle }

// Label returns this directed edge's effective label: the underlying
// edge's label as-is when walking forward, or with LEFT/RIGHT swapped
// when walking the reverse orientation, per spec.md §3/§4.1.
func (de *DirectedEdge) Label() Label {
	if de.isForward {
		return de.edge.label
	}
	return de.edge.label.Flip()
}

func (de *DirectedEdge) SetInResult(v bool) { de.isInResult = v }
func (de *DirectedEdge) IsInResult() bool   { return de.isInResult }

func (de *DirectedEdge) SetVisited(v bool) { de.isVisited = v }
func (de *DirectedEdge) IsVisited() bool   { return de.isVisited }

func (de *DirectedEdge) SetNext(n *DirectedEdge)    { de.next = n }
func (de *DirectedEdge) Next() *DirectedEdge        { return de.next }
func (de *DirectedEdge) SetNextMin(n *DirectedEdge) { de.nextMin = n }
func (de *DirectedEdge) NextMin() *DirectedEdge     { return de.nextMin }

func (de *DirectedEdge) SetEdgeRing(r *EdgeRing) { de.edgeRing = r }
func (de *DirectedEdge) EdgeRing() *EdgeRing     { return de.edgeRing }

func (de *DirectedEdge) SetMinEdgeRing(r *EdgeRing) { de.minEdgeRing = r }
func (de *DirectedEdge) MinEdgeRing() *EdgeRing     { return de.minEdgeRing }

// IsLineEdge reports whether de's effective label describes a bare line on
// at least one argument and is not an area edge on either.
func (de *DirectedEdge) IsLineEdge() bool {
	l := de.Label()
	return !l.AnyArea() && (!l.IsNull(0) || !l.IsNull(1))
}

// DirectedEdgeStar is the set of directed edges originating at a single
// node, kept sorted by outgoing azimuth (spec.md §3: "owns a
// DirectedEdgeStar sorted by outgoing azimuth"). Grounded on the teacher's
// per-vertex incidents slice in dcel.go, generalized from a plain
// unsorted incidence list into an azimuth-ordered star so ring assembly
// can walk "next outgoing edge in CCW order" directly.
type DirectedEdgeStar struct {
	edges []*DirectedEdge
	label Label
}

// NewDirectedEdgeStar returns an empty star.
func NewDirectedEdgeStar() *DirectedEdgeStar {
	return &DirectedEdgeStar{label: NullLabel()}
}

// Insert adds de to the star and re-sorts by azimuth.
func (s *DirectedEdgeStar) Insert(de *DirectedEdge) {
	s.edges = append(s.edges, de)
	sort.Slice(s.edges, func(i, j int) bool { return s.edges[i].angle < s.edges[j].angle })
}

// Edges returns the star's directed edges in CCW azimuth order.
func (s *DirectedEdgeStar) Edges() []*DirectedEdge { return s.edges }

// Degree returns the number of directed edges incident to the node.
func (s *DirectedEdgeStar) Degree() int { return len(s.edges) }

// Label returns the node-level label merged across this star's edges.
func (s *DirectedEdgeStar) Label() Label { return s.label }

// indexOf returns the position of de within the sorted star, or -1.
func (s *DirectedEdgeStar) indexOf(de *DirectedEdge) int {
	for i, e := range s.edges {
		if e == de {
			return i
		}
	}
	return -1
}

// NextCCW returns the directed edge immediately following de in CCW
// (increasing-angle) order around the star, wrapping around.
func (s *DirectedEdgeStar) NextCCW(de *DirectedEdge) *DirectedEdge {
	i := s.indexOf(de)
	if i < 0 || len(s.edges) == 0 {
		return nil
	}
	return s.edges[(i+1)%len(s.edges)]
}

// ComputeLabelling merges the labels of every directed edge in the star
// (and their syms, so a directed edge whose own label is null for
// argument i can inherit from its opposite orientation) into the star's
// node-level label, per spec.md §4.2's "compute labelling across its
// directed-edge star; merge sym labels".
func (s *DirectedEdgeStar) ComputeLabelling() Label {
	merged := NullLabel()
	for _, de := range s.edges {
		l := de.Label()
		merged.Merge(l)
		if sym := de.Sym(); sym != nil {
			merged.Merge(sym.Label())
		}
	}
	s.label = merged
	return merged
}

// LinkResultDirectedEdges pairs each incoming result directed edge (an
// edge whose Sym originates at this node and is marked in-result) with
// the next outgoing result directed edge found walking CCW, per spec.md
// §4.4 step 1. It reports a TopologyError if an incoming result edge has
// no outgoing result edge to pair with, mirroring JTS's
// "found null for.. " noding-failure guard.
func (s *DirectedEdgeStar) LinkResultDirectedEdges(nodeCoord geom.XY) error {
	n := len(s.edges)
	for i, de := range s.edges {
		if !de.sym.isInResult {
			continue // de.sym is the incoming edge at this node; only link if it's a result edge
		}
		// search CCW from i (exclusive) for the next outgoing result edge
		found := false
		for step := 1; step <= n; step++ {
			cand := s.edges[(i+step)%n]
			if cand == de {
				break
			}
			if cand.isInResult {
				de.sym.SetNext(cand)
				found = true
				break
			}
		}
		if !found {
			return geom.NewNodingFailure(nodeCoord)
		}
	}
	return nil
}

// LinkMinimalDirectedEdges re-links this star's result edges using
// nextMin, restricted to the two result edges (if any) belonging to ring,
// per spec.md §4.4 step 3's degree-2 traversal.
func (s *DirectedEdgeStar) LinkMinimalDirectedEdges(ring *EdgeRing) {
	var first, second *DirectedEdge
	for _, de := range s.edges {
		if de.EdgeRing() != ring && de.sym.EdgeRing() != ring {
			continue
		}
		if de.sym.EdgeRing() == ring {
			if first == nil {
				first = de
			} else {
				second = de
			}
		}
	}
	if first != nil && second != nil {
		first.SetNextMin(second)
		second.SetNextMin(first)
	}
}
