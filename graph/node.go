package graph

import "github.com/spatialcore/overlay/geom"

// Node is a point where edges meet (spec.md §3). It owns a
// DirectedEdgeStar of the directed edges originating at its coordinate,
// and a Label merged from those edges' labels.
type Node struct {
	coord geom.XY
	star  *DirectedEdgeStar
	label Label
}

// NewNode returns an empty Node at coord.
func NewNode(coord geom.XY) *Node {
	return &Node{coord: coord, star: NewDirectedEdgeStar(), label: NullLabel()}
}

// Coordinate returns the node's location.
func (n *Node) Coordinate() geom.XY { return n.coord }

// Star returns the node's directed-edge star.
func (n *Node) Star() *DirectedEdgeStar { return n.star }

// Label returns a pointer to the node's merged label.
func (n *Node) Label() *Label { return &n.label }

// AddDirectedEdge inserts de into this node's star. de must originate at
// n's coordinate.
func (n *Node) AddDirectedEdge(de *DirectedEdge) {
	de.node = n
	n.star.Insert(de)
}

// MergeLabel folds other into the node's label without overwriting
// already-assigned arguments, used both when copy-noding isolated input
// points (spec.md §4.1 step 1) and during incomplete-node labelling
// (spec.md §4.2).
func (n *Node) MergeLabel(other Label) {
	n.label.Merge(other)
}

// ComputeLabellingFromStar merges the star's per-edge labels into the
// node's own label, per spec.md §4.2's "update the node label by merging
// the star's label".
func (n *Node) ComputeLabellingFromStar() {
	n.label.Merge(n.star.ComputeLabelling())
}

// IsIsolated reports whether the node has no incident edges at all -- a
// standalone input point.
func (n *Node) IsIsolated() bool { return n.star.Degree() == 0 }

// SetLabelLocation sets the node's label for (arg, PosOn), used by
// incomplete-node labelling once PointLocator has classified the node's
// coordinate against the missing argument's geometry.
func (n *Node) SetLabelLocation(arg int, loc geom.Location) {
	n.label.SetLocation(arg, PosOn, loc)
}
