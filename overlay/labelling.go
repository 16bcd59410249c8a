// Package overlay implements the topological overlay engine: labelling,
// result extraction, polygon assembly, and the robustness wrappers that
// drive it through noded input (spec.md §4.2-§4.7). New orchestration
// code; idiom (plain struct, Build()/Overlay() one-shot method) grounded
// on the closest architectural analogue in the retrieved pack, an S2
// BooleanOperation/Build driver shape, generalized here with the
// label-driven result-extraction logic spec.md §4.3 specifies.
package overlay

import (
	"github.com/spatialcore/overlay/geom"
	"github.com/spatialcore/overlay/graph"
)

// OpCode names the four Boolean overlay operators spec.md §1 defines.
type OpCode int

const (
	OpIntersection OpCode = iota
	OpUnion
	OpDifference
	OpSymDifference
)

// isResult implements the spec.md §4.3 predicate table: BOUNDARY is
// promoted to INTERIOR before the operator-specific test runs.
func isResult(loc0, loc1 geom.Location, op OpCode) bool {
	if loc0 == geom.LocBoundary {
		loc0 = geom.LocInterior
	}
	if loc1 == geom.LocBoundary {
		loc1 = geom.LocInterior
	}
	switch op {
	case OpIntersection:
		return loc0 == geom.LocInterior && loc1 == geom.LocInterior
	case OpUnion:
		return loc0 == geom.LocInterior || loc1 == geom.LocInterior
	case OpDifference:
		return loc0 == geom.LocInterior && loc1 != geom.LocInterior
	case OpSymDifference:
		return (loc0 == geom.LocInterior) != (loc1 == geom.LocInterior)
	default:
		return false
	}
}

// labelling runs spec.md §4.2 over a populated EdgeList/PlanarGraph pair:
// depth normalisation, collapse detection, graph population, and node
// labelling (including incomplete-node classification via locator).
type labelling struct {
	pg      *graph.PlanarGraph
	locator geom.PointLocator
	g0, g1  geom.Geometry
}

// run performs spec.md §4.2 end to end and returns the edges to hand to
// result extraction (with collapsed edges swapped for their line-labelled
// equivalent).
func (l *labelling) run(edges []*graph.Edge) []*graph.Edge {
	labelled := make([]*graph.Edge, 0, len(edges))
	for _, e := range edges {
		e.Depth().Normalize()
		for arg := 0; arg < 2; arg++ {
			if e.Label().IsNull(arg) || !e.Label().IsArea(arg) {
				continue
			}
			left := graph.LocationFromDepth(e.Depth().GetDepth(arg, graph.PosLeft))
			right := graph.LocationFromDepth(e.Depth().GetDepth(arg, graph.PosRight))
			e.Label().SetLocation(arg, graph.PosLeft, left)
			e.Label().SetLocation(arg, graph.PosRight, right)
		}
		if e.IsCollapsed() {
			labelled = append(labelled, e.CollapsedEdge())
		} else {
			labelled = append(labelled, e)
		}
	}

	l.pg.AddEdges(labelled)
	l.pg.ComputeNodeLabelling()

	for _, n := range l.pg.IncompleteNodes() {
		for arg := 0; arg < 2; arg++ {
			if !n.Label().IsNull(arg) {
				continue
			}
			g := l.g0
			if arg == 1 {
				g = l.g1
			}
			loc := l.locator.Locate(n.Coordinate(), g)
			l.pg.PropagateNodeLocation(n, arg, loc)
		}
	}

	return labelled
}
