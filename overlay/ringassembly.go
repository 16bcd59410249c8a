package overlay

import (
	"github.com/spatialcore/overlay/geom"
	"github.com/spatialcore/overlay/graph"
)

// assembleRings implements spec.md §4.4 end to end: linking result
// directed edges, building maximal rings, splitting into minimal rings,
// shell/hole classification per maximal-ring group, free-hole placement,
// and polygon emission. Orientation / shell-hole classification is
// grounded on the teacher's ForceCCW ring-normalization idiom, applied
// here to edges selected from the labelled graph rather than to input
// rings directly.
func assembleRings(pg *graph.PlanarGraph, factory *geom.GeometryFactory) ([]geom.Geometry, error) {
	if err := pg.LinkResultDirectedEdges(); err != nil {
		return nil, err
	}

	maximalRings, err := buildMaximalRings(pg)
	if err != nil {
		return nil, err
	}

	var shells, freeHoles []*graph.EdgeRing
	for _, maxRing := range maximalRings {
		minimalRings, err := splitMaximalRing(maxRing)
		if err != nil {
			return nil, err
		}
		groupShells, groupHoles, err := classifyGroup(minimalRings, factory)
		if err != nil {
			return nil, err
		}
		shells = append(shells, groupShells...)
		freeHoles = append(freeHoles, groupHoles...)
	}

	if err := placeFreeHoles(shells, freeHoles, factory); err != nil {
		return nil, err
	}

	out := make([]geom.Geometry, 0, len(shells))
	for _, shell := range shells {
		shellRing, err := shell.ComputeRing(factory)
		if err != nil {
			return nil, err
		}
		holeRings := make([]geom.LinearRing, 0, len(shell.Holes()))
		for _, h := range shell.Holes() {
			hr, err := h.ComputeRing(factory)
			if err != nil {
				return nil, err
			}
			holeRings = append(holeRings, hr)
		}
		out = append(out, factory.CreatePolygon(shellRing, holeRings))
	}
	return out, nil
}

// buildMaximalRings implements spec.md §4.4 step 2: starting from any
// unvisited result directed edge with an area label, follow Next
// pointers to form a cycle.
func buildMaximalRings(pg *graph.PlanarGraph) ([]*graph.EdgeRing, error) {
	var rings []*graph.EdgeRing
	for _, start := range pg.DirectedEdges() {
		if start.IsVisited() || !start.IsInResult() || !start.Label().AnyArea() {
			continue
		}
		ring := graph.NewEdgeRing(start)
		de := start
		for {
			de.SetVisited(true)
			ring.AddDirectedEdge(de)
			de.SetEdgeRing(ring)
			next := de.Next()
			if next == nil {
				return nil, geom.NewNodingFailure(de.Origin())
			}
			de = next
			if de == start {
				break
			}
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

// splitMaximalRing implements spec.md §4.4 step 3: a maximal ring whose
// maximum node degree is >2 is decomposed via nextMin-based traversal; a
// ring already at degree <=2 everywhere is already minimal.
func splitMaximalRing(ring *graph.EdgeRing) ([]*graph.EdgeRing, error) {
	if ring.MaxNodeDegree() <= 2 {
		return []*graph.EdgeRing{ring}, nil
	}

	linked := make(map[*graph.Node]bool)
	for _, de := range ring.DirectedEdges() {
		n := de.Node()
		if linked[n] {
			continue
		}
		linked[n] = true
		n.Star().LinkMinimalDirectedEdges(ring)
	}

	var minimalRings []*graph.EdgeRing
	for _, start := range ring.DirectedEdges() {
		if start.MinEdgeRing() != nil {
			continue
		}
		mr := graph.NewEdgeRing(start)
		de := start
		for {
			mr.AddDirectedEdge(de)
			de.SetMinEdgeRing(mr)
			next := de.NextMin()
			if next == nil {
				return nil, geom.NewNodingFailure(de.Origin())
			}
			de = next
			if de == start {
				break
			}
		}
		minimalRings = append(minimalRings, mr)
	}
	return minimalRings, nil
}

// classifyGroup implements spec.md §4.4 step 4: within the rings derived
// from one maximal ring, at most one is a shell; if present, every hole
// in the group is assigned to it, otherwise all rings are released to
// the free-hole pool for step 6.
func classifyGroup(rings []*graph.EdgeRing, factory *geom.GeometryFactory) (shells, holes []*graph.EdgeRing, err error) {
	for _, r := range rings {
		if _, err := r.ComputeRing(factory); err != nil {
			return nil, nil, err
		}
		if r.IsHole() {
			holes = append(holes, r)
		} else {
			shells = append(shells, r)
		}
	}
	if len(shells) == 1 {
		for _, h := range holes {
			shells[0].AddHole(h)
		}
		return shells, nil, nil
	}
	// Zero or multiple shells in the group: every ring not uniquely
	// assignable here is released to the free-hole pool (shells with no
	// group-mate hole just pass through with none assigned yet).
	return shells, holes, nil
}

// placeFreeHoles implements spec.md §4.4 step 6: for each free hole, find
// the innermost enclosing shell by envelope containment plus a
// representative-point ring test, tie-breaking on smallest enclosing
// envelope.
func placeFreeHoles(shells, holes []*graph.EdgeRing, factory *geom.GeometryFactory) error {
	for _, hole := range holes {
		holeRing, err := hole.ComputeRing(factory)
		if err != nil {
			return err
		}
		holeEnv := holeRing.Envelope()
		repPt, ok := holeRing.StartPoint().XY()
		if !ok {
			return geom.NewOrphanHole(geom.XY{})
		}

		var best *graph.EdgeRing
		var bestArea float64
		for _, shell := range shells {
			shellRing, err := shell.ComputeRing(factory)
			if err != nil {
				return err
			}
			if !shellRing.Envelope().ContainsEnvelope(holeEnv) {
				continue
			}
			if !geom.RingContainsPoint(shellRing, repPt) {
				continue
			}
			area := shellRing.Envelope().Area()
			if best == nil || area < bestArea {
				best, bestArea = shell, area
			}
		}
		if best == nil {
			return geom.NewOrphanHole(repPt)
		}
		best.AddHole(hole)
	}
	return nil
}
