package overlay

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/spatialcore/overlay/geom"
)

// snapTolerance implements spec.md §4.6 step 1: tol(g) = max(size(g) *
// 1e-9, fixedGridTol), and the pair tolerance is the smaller of the two
// inputs'.
func snapTolerance(g0, g1 geom.Geometry) float64 {
	return math.Min(tol(g0), tol(g1))
}

func tol(g geom.Geometry) float64 {
	size := g.Envelope().Diagonal()
	t := size * 1e-9
	if grid := g.Factory().PrecisionModel().FixedGridTolerance(); grid > t {
		t = grid
	}
	return t
}

// collectVertices gathers every distinct vertex coordinate in g, used both
// as a geometry's own snap-target set (self-snap) and as the snap-target
// set handed to the second input (cross-snap).
func collectVertices(g geom.Geometry) []geom.XY {
	seen := make(map[geom.XY]bool)
	var out []geom.XY
	geom.WalkXY(g, func(xy geom.XY) {
		if !seen[xy] {
			seen[xy] = true
			out = append(out, xy)
		}
	})
	return out
}

// snapToVertices runs every linear component of g through
// lineStringSnapper against targets, per spec.md §4.6's LineStringSnapper
// description.
func snapToVertices(factory *geom.GeometryFactory, g geom.Geometry, targets []geom.XY, tolerance float64, allowSnapToSourceVertices bool) geom.Geometry {
	snapper := newLineStringSnapper(tolerance, allowSnapToSourceVertices)
	return geom.MapLinearComponents(factory, g, func(xys []geom.XY, closed bool) []geom.XY {
		return snapper.snap(xys, closed, targets)
	})
}

// snapOverlay implements spec.md §4.6's "Snap overlay": common-bits
// removal, self-snap each input, cross-snap the second onto the first,
// plain overlay on the snapped pair, then restore the common bits.
func snapOverlay(g0, g1 geom.Geometry, op OpCode, opts ...Option) (geom.Geometry, error) {
	factory := g0.Factory()
	tolerance := snapTolerance(g0, g1)

	remover := newCommonBitsRemover()
	geom.WalkXY(g0, func(xy geom.XY) { remover.add(xy.X, xy.Y) })
	geom.WalkXY(g1, func(xy geom.XY) { remover.add(xy.X, xy.Y) })
	commonX, commonY := remover.translation()

	translate := func(xy geom.XY) geom.XY { return geom.XY{X: xy.X - commonX, Y: xy.Y - commonY} }
	restore := func(xy geom.XY) geom.XY { return geom.XY{X: xy.X + commonX, Y: xy.Y + commonY} }

	t0 := geom.TransformXY(factory, g0, translate)
	t1 := geom.TransformXY(factory, g1, translate)

	selfSnapped0 := snapToVertices(factory, t0, collectVertices(t0), tolerance, true)
	selfSnapped1 := snapToVertices(factory, t1, collectVertices(t1), tolerance, true)
	crossSnapped1 := snapToVertices(factory, selfSnapped1, collectVertices(selfSnapped0), tolerance, false)

	op2 := NewOverlayOp(selfSnapped0, crossSnapped1, op, opts...)
	result, err := op2.Build()
	if err != nil {
		return nil, err
	}

	return geom.TransformXY(factory, result, restore), nil
}

// SnapIfNeededOverlay implements spec.md §4.6's top-level wrapper: attempt
// plain overlay first, and on any error fall back to snapOverlay. If the
// fallback also fails, the *original* error is re-raised, not the
// fallback's -- the design note's nesting-order requirement (spec.md §9).
func SnapIfNeededOverlay(g0, g1 geom.Geometry, op OpCode, opts ...Option) (geom.Geometry, error) {
	plain := NewOverlayOp(g0, g1, op, opts...)
	result, err := plain.Build()
	if err == nil {
		return result, nil
	}

	log.Warn().Err(err).Str("op", opName(op)).Msg("overlay: plain attempt failed, retrying with snap")

	snapped, snapErr := snapOverlay(g0, g1, op, opts...)
	if snapErr != nil {
		log.Error().Err(snapErr).Msg("overlay: snap retry also failed, surfacing original error")
		return nil, err
	}
	return snapped, nil
}
