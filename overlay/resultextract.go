package overlay

import (
	"github.com/spatialcore/overlay/geom"
	"github.com/spatialcore/overlay/graph"
)

// ResultExtractor walks a labelled PlanarGraph to decide which edges
// belong to the result under op, assembles polygons, and collects result
// linestrings and points, per spec.md §4.3.
type ResultExtractor struct {
	pg      *graph.PlanarGraph
	factory *geom.GeometryFactory
	op      OpCode
	dimA    int
	dimB    int
}

// NewResultExtractor returns an extractor for pg under op. dimA/dimB are
// the dimensions of the two input geometries, used by the empty-result
// policy (spec.md §4.7) if nothing is produced.
func NewResultExtractor(pg *graph.PlanarGraph, factory *geom.GeometryFactory, op OpCode, dimA, dimB int) *ResultExtractor {
	return &ResultExtractor{pg: pg, factory: factory, op: op, dimA: dimA, dimB: dimB}
}

// Extract runs the full per-operator result-extraction pipeline.
func (r *ResultExtractor) Extract() (geom.Geometry, error) {
	r.selectAreaEdges()

	polys, err := assembleRings(r.pg, r.factory)
	if err != nil {
		return nil, err
	}

	lines := r.extractLines()
	points := r.extractPoints(polys, lines)

	var result []geom.Geometry
	result = append(result, points...)
	result = append(result, lines...)
	result = append(result, polys...)

	if len(result) == 0 {
		return r.factory.CreateEmpty(emptyResultDimension(r.op, r.dimA, r.dimB)), nil
	}
	return r.factory.BuildGeometry(result), nil
}

// emptyResultDimension implements spec.md §4.7.
func emptyResultDimension(op OpCode, dimA, dimB int) int {
	switch op {
	case OpIntersection:
		return minInt(dimA, dimB)
	case OpUnion, OpSymDifference:
		return maxInt(dimA, dimB)
	default: // OpDifference
		return dimA
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// selectAreaEdges marks each area-labelled directed edge as in-result
// when spec.md §4.3's predicate holds on its RHS locations -- choosing
// the RHS ensures shells come out CW when walked forward -- mutually
// cancelling a directed edge and its Sym if both would otherwise be
// selected, and marking the underlying Edge covered so the line pass
// below does not re-emit it.
func (r *ResultExtractor) selectAreaEdges() {
	for _, de := range r.pg.DirectedEdges() {
		l := de.Label()
		if !l.AnyArea() {
			continue
		}
		if isResult(l.Right(0), l.Right(1), r.op) {
			de.SetInResult(true)
		}
	}
	for _, de := range r.pg.DirectedEdges() {
		if de.IsInResult() && de.Sym().IsInResult() {
			de.SetInResult(false)
			de.Sym().SetInResult(false)
		}
	}
	for _, de := range r.pg.DirectedEdges() {
		if de.IsInResult() {
			de.Edge().SetCovered(true)
			de.Edge().SetInResult(true)
		}
	}
}

// extractLines implements spec.md §4.3's "Line edges" and INTERSECTION
// boundary-touch rule.
func (r *ResultExtractor) extractLines() []geom.Geometry {
	var out []geom.Geometry
	seen := make(map[*graph.Edge]bool)
	for _, de := range r.pg.DirectedEdges() {
		e := de.Edge()
		if seen[e] || e.IsCovered() {
			continue
		}
		l := de.Label()
		qualifies := de.IsLineEdge() && isResult(l.On(0), l.On(1), r.op)
		if !qualifies && r.op == OpIntersection && l.AnyArea() {
			qualifies = isResult(l.Right(0), l.Right(1), r.op)
		}
		if !qualifies {
			continue
		}
		seen[e] = true
		out = append(out, r.factory.CreateLineString(geom.NewSequenceXY(e.Coordinates())))
	}
	return out
}

// extractPoints implements spec.md §4.3's "Point edges".
func (r *ResultExtractor) extractPoints(polys, lines []geom.Geometry) []geom.Geometry {
	covered := coveredCoordinates(polys, lines)

	var out []geom.Geometry
	for _, n := range r.pg.Nodes() {
		incidentResult := false
		for _, de := range n.Star().Edges() {
			if de.IsInResult() || de.Sym().IsInResult() {
				incidentResult = true
				break
			}
		}
		if incidentResult {
			continue
		}
		if n.Star().Degree() != 0 && r.op != OpIntersection {
			continue
		}
		l := *n.Label()
		if !isResult(l.On(0), l.On(1), r.op) {
			continue
		}
		if covered[n.Coordinate()] {
			continue
		}
		out = append(out, r.factory.CreatePoint(geom.Coordinates{XY: n.Coordinate()}))
	}
	return out
}

// coveredCoordinates collects every vertex of the already-extracted
// result lines and polygons, used to avoid re-emitting an isolated point
// already incorporated into a result area or line's boundary.
func coveredCoordinates(polys, lines []geom.Geometry) map[geom.XY]bool {
	set := make(map[geom.XY]bool)
	add := func(seq geom.Sequence) {
		for _, xy := range seq.XYs() {
			set[xy] = true
		}
	}
	for _, g := range lines {
		if ls, ok := g.(geom.LineString); ok {
			add(ls.Coordinates())
		}
	}
	var addPolygon func(p geom.Polygon)
	addPolygon = func(p geom.Polygon) {
		add(p.ExteriorRing().Coordinates())
		for i := 0; i < p.NumInteriorRings(); i++ {
			add(p.InteriorRingN(i).Coordinates())
		}
	}
	for _, g := range polys {
		switch p := g.(type) {
		case geom.Polygon:
			addPolygon(p)
		case geom.MultiPolygon:
			for i := 0; i < p.NumPolygons(); i++ {
				addPolygon(p.PolygonN(i))
			}
		}
	}
	return set
}
