package overlay

import "github.com/spatialcore/overlay/geom"

// lineStringSnapper snaps one linear component's vertices to a fixed set
// of target points, per spec.md §4.6's LineStringSnapper: snapVertices
// moves near-coincident source vertices onto the target, snapSegments
// inserts any target point that falls near a source segment's interior
// instead. Grounded on the noding package's splitLine idiom (locate a
// point against a segment, insert mid-span) generalized here from
// "insert a computed intersection" to "insert a snap target".
type lineStringSnapper struct {
	snapTolerance                 float64
	allowSnappingToSourceVertices bool
}

func newLineStringSnapper(tolerance float64, allowSnapToSourceVertices bool) *lineStringSnapper {
	return &lineStringSnapper{snapTolerance: tolerance, allowSnappingToSourceVertices: allowSnapToSourceVertices}
}

// snap runs snapVertices then snapSegments against src, returning the
// adjusted vertex list. closed indicates src is a ring (first == last).
func (s *lineStringSnapper) snap(src []geom.XY, closed bool, snapPts []geom.XY) []geom.XY {
	out := s.snapVertices(src, closed, snapPts)
	return s.snapSegments(out, closed, snapPts)
}

// snapVertices implements spec.md §4.6's vertex pass: each source vertex
// within tolerance of an unequal snap point is replaced by it. A closed
// ring whose index-0 vertex was replaced gets the same replacement
// mirrored onto its last vertex to keep the ring closed.
func (s *lineStringSnapper) snapVertices(src []geom.XY, closed bool, snapPts []geom.XY) []geom.XY {
	out := make([]geom.XY, len(src))
	copy(out, src)

	for i, v := range out {
		target, ok := s.nearestSnapPoint(v, snapPts)
		if !ok || target.Equals(v) {
			continue
		}
		out[i] = target
		if closed && i == 0 && len(out) > 1 {
			out[len(out)-1] = target
		}
	}
	return out
}

// snapSegments implements spec.md §4.6's segment pass: a snap point not
// already coincident with a (post-vertex-pass) source vertex is inserted
// into the nearest source segment within tolerance, as a new vertex
// between that segment's two endpoints, tie-breaking on distance then on
// the lowest segment index.
func (s *lineStringSnapper) snapSegments(src []geom.XY, closed bool, snapPts []geom.XY) []geom.XY {
	distinct := dedupClosed(snapPts, closed)

	type insertion struct {
		seg int
		pt  geom.XY
	}
	var inserts []insertion

	for _, pt := range distinct {
		if containsXY(src, pt) {
			continue
		}
		bestSeg := -1
		bestDist := s.snapTolerance
		for i := 0; i+1 < len(src); i++ {
			a, b := src[i], src[i+1]
			if !s.allowSnappingToSourceVertices && (pt.Equals(a) || pt.Equals(b)) {
				continue
			}
			d := distancePointToSegment(pt, a, b)
			if d < bestDist || (bestSeg < 0 && d == bestDist) {
				bestDist = d
				bestSeg = i
			}
		}
		if bestSeg >= 0 {
			inserts = append(inserts, insertion{seg: bestSeg, pt: pt})
		}
	}

	if len(inserts) == 0 {
		return src
	}

	// Insert highest-index segment first so earlier indices stay valid.
	for i := 0; i < len(inserts); i++ {
		for j := i + 1; j < len(inserts); j++ {
			if inserts[j].seg > inserts[i].seg {
				inserts[i], inserts[j] = inserts[j], inserts[i]
			}
		}
	}

	out := make([]geom.XY, len(src))
	copy(out, src)
	for _, ins := range inserts {
		// "mid-position" is the snap point's position in the sequence,
		// between the segment's two endpoints -- not a computed midpoint.
		tail := append([]geom.XY{}, out[ins.seg+1:]...)
		out = append(out[:ins.seg+1], append([]geom.XY{ins.pt}, tail...)...)
	}
	return out
}

func (s *lineStringSnapper) nearestSnapPoint(v geom.XY, snapPts []geom.XY) (geom.XY, bool) {
	best, bestDist, found := geom.XY{}, s.snapTolerance, false
	for _, p := range snapPts {
		d := v.Sub(p).Length()
		if d <= bestDist {
			best, bestDist, found = p, d, true
		}
	}
	return best, found
}

func dedupClosed(pts []geom.XY, closed bool) []geom.XY {
	if !closed || len(pts) < 2 || !pts[0].Equals(pts[len(pts)-1]) {
		return pts
	}
	return pts[:len(pts)-1]
}

func containsXY(xys []geom.XY, pt geom.XY) bool {
	for _, x := range xys {
		if x.Equals(pt) {
			return true
		}
	}
	return false
}

func distancePointToSegment(pt, a, b geom.XY) float64 {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 == 0 {
		return pt.Sub(a).Length()
	}
	t := pt.Sub(a).Dot(ab) / abLen2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := geom.XY{X: a.X + t*ab.X, Y: a.Y + t*ab.Y}
	return pt.Sub(proj).Length()
}
