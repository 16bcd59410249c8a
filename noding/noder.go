package noding

import (
	"sort"

	"github.com/spatialcore/overlay/geom"
	"github.com/spatialcore/overlay/graph"
)

// rawLine is one linear component extracted from an argument geometry
// before noding, paired with the label every sub-edge split from it
// should be seeded with.
type rawLine struct {
	coords []geom.XY
	label  graph.Label
}

// Noder builds a noded, uniquely-keyed edge set for a pair of argument
// geometries, per spec.md §4.1.
type Noder struct {
	li geom.LineIntersector
}

// NewNoder returns a Noder using li, or geom.RobustLineIntersector if li
// is nil.
func NewNoder(li geom.LineIntersector) *Noder {
	if li == nil {
		li = &geom.RobustLineIntersector{}
	}
	return &Noder{li: li}
}

// Node runs spec.md §4.1 steps 1-6 for g0 against g1: it copies isolated
// points into pg (step 1), self-nodes and cross-nodes the pair's linear
// components (steps 2-4), inserts the resulting sub-edges into a unique
// EdgeList (step 5), and validates the result (step 6).
func (n *Noder) Node(pg *graph.PlanarGraph, g0, g1 geom.Geometry, locator geom.PointLocator) (*EdgeList, error) {
	n.copyNodes(pg, g0, 0, locator)
	n.copyNodes(pg, g1, 1, locator)

	lines0 := extractLines(g0, 0)
	lines1 := extractLines(g1, 1)

	split0 := n.selfNode(lines0)
	split1 := n.selfNode(lines1)
	split0, split1 = n.crossNode(split0, split1)

	el := NewEdgeList()
	for _, rl := range split0 {
		el.Add(rl.coords, rl.label)
	}
	for _, rl := range split1 {
		el.Add(rl.coords, rl.label)
	}

	if err := Validate(el, n.li); err != nil {
		return nil, err
	}
	return el, nil
}

// copyNodes inserts every standalone point, the two endpoints of every
// linestring, and every polygon ring vertex of g into pg as isolated
// nodes, labelled per
// spec.md §4.1 step 1. Line endpoints are classified against the whole
// argument geometry via locator (the mod-2 Boundary Determination Rule);
// ring vertices are always BOUNDARY.
func (n *Noder) copyNodes(pg *graph.PlanarGraph, g geom.Geometry, arg int, locator geom.PointLocator) {
	if g == nil {
		return
	}
	for _, atom := range Flatten(g) {
		switch t := atom.(type) {
		case geom.Point:
			if xy, ok := t.XY(); ok {
				pg.InsertPoint(arg, xy, geom.LocInterior)
			}
		case geom.LineString:
			if t.IsEmpty() {
				continue
			}
			insertEndpoint(pg, g, arg, locator, t.StartPoint())
			insertEndpoint(pg, g, arg, locator, t.EndPoint())
		case geom.Polygon:
			if t.IsEmpty() {
				continue
			}
			oriented := t.ForceCCW()
			for _, xy := range oriented.ExteriorRing().Coordinates().XYs() {
				pg.InsertPoint(arg, xy, geom.LocBoundary)
			}
			for i := 0; i < oriented.NumInteriorRings(); i++ {
				for _, xy := range oriented.InteriorRingN(i).Coordinates().XYs() {
					pg.InsertPoint(arg, xy, geom.LocBoundary)
				}
			}
		}
	}
}

func insertEndpoint(pg *graph.PlanarGraph, g geom.Geometry, arg int, locator geom.PointLocator, pt geom.Point) {
	xy, ok := pt.XY()
	if !ok {
		return
	}
	pg.InsertPoint(arg, xy, locator.Locate(xy, g))
}

// Flatten recursively decomposes g through GeometryCollection/MultiPoint/
// MultiLineString/MultiPolygon down to its atomic Point/LineString/Polygon
// components, in traversal order. Exported for union's dimension
// partitioning (spec.md §4.8 step 1), which needs the same decomposition
// this package already performs before noding.
func Flatten(g geom.Geometry) []geom.Geometry {
	var out []geom.Geometry
	var walk func(geom.Geometry)
	walk = func(g geom.Geometry) {
		switch t := g.(type) {
		case geom.GeometryCollection:
			for i := 0; i < t.NumGeometries(); i++ {
				walk(t.GeometryN(i))
			}
		case geom.MultiPoint:
			for i := 0; i < t.NumPoints(); i++ {
				walk(t.PointN(i))
			}
		case geom.MultiLineString:
			for i := 0; i < t.NumLineStrings(); i++ {
				walk(t.LineStringN(i))
			}
		case geom.MultiPolygon:
			for i := 0; i < t.NumPolygons(); i++ {
				walk(t.PolygonN(i))
			}
		default:
			out = append(out, g)
		}
	}
	walk(g)
	return out
}

// extractLines returns every linear/areal component of g (as boundary
// rings for polygons, per the graph-construction orientation convention)
// in the form noding splits against each other.
func extractLines(g geom.Geometry, argIndex int) []rawLine {
	var out []rawLine
	for _, atom := range Flatten(g) {
		switch t := atom.(type) {
		case geom.LineString:
			if !t.IsEmpty() {
				out = append(out, rawLine{
					coords: t.Coordinates().XYs(),
					label:  graph.NewLabel(argIndex, geom.LocInterior),
				})
			}
		case geom.Polygon:
			out = append(out, extractPolygonRings(t, argIndex)...)
		}
	}
	return out
}

// extractPolygonRings returns one rawLine per ring of p, oriented per the
// graph-construction convention (shell CCW, holes CW) so that every ring
// edge uniformly carries LEFT=INTERIOR, RIGHT=EXTERIOR relative to p.
func extractPolygonRings(p geom.Polygon, argIndex int) []rawLine {
	if p.IsEmpty() {
		return nil
	}
	oriented := p.ForceCCW()
	ringLabel := graph.NewLabelArea(argIndex, geom.LocBoundary, geom.LocInterior, geom.LocExterior)

	out := []rawLine{{coords: oriented.ExteriorRing().Coordinates().XYs(), label: ringLabel}}
	for i := 0; i < oriented.NumInteriorRings(); i++ {
		out = append(out, rawLine{coords: oriented.InteriorRingN(i).Coordinates().XYs(), label: ringLabel})
	}
	return out
}

// selfNode splits every line against its own segments, per spec.md §4.1
// step 2.
func (n *Noder) selfNode(lines []rawLine) []rawLine {
	var out []rawLine
	for _, rl := range lines {
		pts, _ := n.intersectionPoints(rl.coords, rl.coords, true)
		out = append(out, splitLine(rl, pts)...)
	}
	return out
}

// crossNode splits every line of lines0 against every line of lines1 (and
// vice versa), per spec.md §4.1 step 3.
func (n *Noder) crossNode(lines0, lines1 []rawLine) ([]rawLine, []rawLine) {
	pts0 := make([][]geom.XY, len(lines0))
	pts1 := make([][]geom.XY, len(lines1))
	for i, a := range lines0 {
		for j, b := range lines1 {
			ia, ib := n.intersectionPoints(a.coords, b.coords, false)
			pts0[i] = append(pts0[i], ia...)
			pts1[j] = append(pts1[j], ib...)
		}
	}
	var out0, out1 []rawLine
	for i, a := range lines0 {
		out0 = append(out0, splitLine(a, pts0[i])...)
	}
	for j, b := range lines1 {
		out1 = append(out1, splitLine(b, pts1[j])...)
	}
	return out0, out1
}

// intersectionPoints returns, for each pair of segments across a and b,
// any intersection point that falls strictly in the interior of the
// respective segment (i.e. would introduce a genuinely new vertex).
// selfPair skips identical and adjacent segment pairs so a line's own
// consecutive segments (which always share an endpoint) are not reported
// as spurious self-intersections.
func (n *Noder) intersectionPoints(a, b []geom.XY, selfPair bool) (ptsA, ptsB []geom.XY) {
	na, nb := len(a)-1, len(b)-1
	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			if selfPair {
				if i == j || i+1 == j || j+1 == i {
					continue
				}
			}
			n.li.ComputeIntersection(a[i], a[i+1], b[j], b[j+1])
			if !n.li.HasIntersection() {
				continue
			}
			for k := 0; k < n.li.NumIntersections(); k++ {
				p := n.li.GetIntersection(k)
				if !p.Equals(a[i]) && !p.Equals(a[i+1]) {
					ptsA = append(ptsA, p)
				}
				if !p.Equals(b[j]) && !p.Equals(b[j+1]) {
					ptsB = append(ptsB, p)
				}
			}
		}
	}
	return ptsA, ptsB
}

type splitPoint struct {
	seg int
	t   float64
	pt  geom.XY
}

// splitLine divides rl at each of extraPts, producing one rawLine per
// resulting sub-span, per spec.md §4.1 step 4's "split-edge emission".
func splitLine(rl rawLine, extraPts []geom.XY) []rawLine {
	if len(extraPts) == 0 {
		return []rawLine{rl}
	}
	coords := rl.coords

	var sps []splitPoint
	for _, p := range extraPts {
		for i := 0; i+1 < len(coords); i++ {
			a, b := coords[i], coords[i+1]
			d := b.Sub(a)
			if d.Cross(p.Sub(a)) != 0 {
				continue
			}
			var t float64
			switch {
			case d.X != 0:
				t = (p.X - a.X) / d.X
			case d.Y != 0:
				t = (p.Y - a.Y) / d.Y
			default:
				continue
			}
			if t > 0 && t < 1 {
				sps = append(sps, splitPoint{seg: i, t: t, pt: p})
				break
			}
		}
	}
	if len(sps) == 0 {
		return []rawLine{rl}
	}
	sort.Slice(sps, func(i, j int) bool {
		if sps[i].seg != sps[j].seg {
			return sps[i].seg < sps[j].seg
		}
		return sps[i].t < sps[j].t
	})

	var out []rawLine
	cur := []geom.XY{coords[0]}
	spIdx := 0
	for seg := 0; seg < len(coords)-1; seg++ {
		for spIdx < len(sps) && sps[spIdx].seg == seg {
			cur = append(cur, sps[spIdx].pt)
			out = append(out, rawLine{coords: cur, label: rl.label})
			cur = []geom.XY{sps[spIdx].pt}
			spIdx++
		}
		cur = append(cur, coords[seg+1])
	}
	out = append(out, rawLine{coords: cur, label: rl.label})
	return out
}
