// Package noding builds a uniquely-keyed, fully-noded edge set for a pair
// of argument geometries, per spec.md §4.1. It is grounded on the
// teacher's forEachNonInteractingSegment/edgeSet idiom (geom/dcel.go, now
// adapted away): splitting a coordinate sequence at a set of split points,
// generalized here from "split points given" to "split points computed
// from pairwise segment intersection".
package noding

import (
	"github.com/spatialcore/overlay/geom"
	"github.com/spatialcore/overlay/graph"
)

// EdgeList is the unique-edge index of spec.md §4.1 step 5: edges are
// inserted keyed by coordinate sequence, and a forward- or reverse-equal
// duplicate is merged into the existing entry (label merge plus depth
// accumulation) rather than inserted again.
type EdgeList struct {
	edges []*graph.Edge
	index map[geom.XY][]*graph.Edge
}

// NewEdgeList returns an empty EdgeList.
func NewEdgeList() *EdgeList {
	return &EdgeList{index: make(map[geom.XY][]*graph.Edge)}
}

// Add inserts coords/label, merging into a pointwise-equal existing edge
// if one is found. Sequences shorter than two coordinates are ignored.
func (el *EdgeList) Add(coords []geom.XY, label graph.Label) *graph.Edge {
	if len(coords) < 2 {
		return nil
	}
	if existing := el.find(coords); existing != nil {
		lbl := label
		if _, reversed := existing.IsPointwiseEqual(coords); reversed {
			lbl = label.Flip()
		}
		existing.Depth().Add(lbl)
		existing.Label().Merge(lbl)
		existing.SetIsolated(false)
		return existing
	}

	e := graph.NewEdge(coords, label)
	e.Depth().Add(label)
	el.edges = append(el.edges, e)

	key0, key1 := coords[0], coords[len(coords)-1]
	el.index[key0] = append(el.index[key0], e)
	if key1 != key0 {
		el.index[key1] = append(el.index[key1], e)
	}
	return e
}

func (el *EdgeList) find(coords []geom.XY) *graph.Edge {
	for _, e := range el.index[coords[0]] {
		if eq, _ := e.IsPointwiseEqual(coords); eq {
			return e
		}
	}
	return nil
}

// Edges returns every unique edge inserted, in first-insertion order.
func (el *EdgeList) Edges() []*graph.Edge { return el.edges }
