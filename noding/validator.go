package noding

import (
	"github.com/spatialcore/overlay/geom"
	"github.com/spatialcore/overlay/graph"
)

// Validate rechecks that el's edges are properly noded: no segment has a
// proper (interior) intersection with another segment, and no two
// unequal segments overlap collinearly along a stretch (two intersection
// points), whether or not they share an endpoint, per spec.md
// §4.1 step 6. A failure returns a *geom.TopologyError of kind
// NodingFailure, which the robustness wrapper (overlay package) catches
// to trigger snap-and-retry.
//
// This is the exhaustive, quadratic-in-segment-count check the real
// FastNodingValidator exists to avoid with spatial indexing; it is kept
// simple here because it runs only as a correctness backstop, not on the
// hot path.
func Validate(el *EdgeList, li geom.LineIntersector) error {
	edges := el.Edges()
	for i := 0; i < len(edges); i++ {
		segsI := segmentsOf(edges[i])
		for j := i; j < len(edges); j++ {
			segsJ := segmentsOf(edges[j])
			for si, segI := range segsI {
				for sj, segJ := range segsJ {
					if i == j && si == sj {
						continue
					}
					li.ComputeIntersection(segI[0], segI[1], segJ[0], segJ[1])
					if !li.HasIntersection() {
						continue
					}
					if li.IsProper() {
						return geom.NewNodingFailure(li.GetIntersection(0))
					}
					if li.NumIntersections() > 1 && !adjacentOrEqual(segI, segJ) {
						return geom.NewNodingFailure(li.GetIntersection(0))
					}
				}
			}
		}
	}
	return nil
}

func segmentsOf(e *graph.Edge) [][2]geom.XY {
	coords := e.Coordinates()
	if len(coords) < 2 {
		return nil
	}
	out := make([][2]geom.XY, 0, len(coords)-1)
	for i := 0; i+1 < len(coords); i++ {
		out = append(out, [2]geom.XY{coords[i], coords[i+1]})
	}
	return out
}

func adjacentOrEqual(a, b [2]geom.XY) bool {
	return (a[0].Equals(b[0]) && a[1].Equals(b[1])) || (a[0].Equals(b[1]) && a[1].Equals(b[0]))
}
