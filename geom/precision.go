package geom

import "math"

// PrecisionModelType is the kind of precision model a geometry is snapped
// to: unconstrained floating point, or a fixed grid.
type PrecisionModelType int

const (
	Floating PrecisionModelType = iota
	Fixed
)

// PrecisionModel describes the coordinate precision a geometry's factory
// rounds to. See spec.md §3 and the fixedGridTol formula in §4.6.
type PrecisionModel struct {
	typ   PrecisionModelType
	scale float64
}

// NewFloatingPrecisionModel returns the unconstrained (default) precision
// model.
func NewFloatingPrecisionModel() PrecisionModel {
	return PrecisionModel{typ: Floating}
}

// NewFixedPrecisionModel returns a precision model that snaps coordinates
// to a grid of spacing 1/scale.
func NewFixedPrecisionModel(scale float64) PrecisionModel {
	return PrecisionModel{typ: Fixed, scale: scale}
}

func (p PrecisionModel) Type() PrecisionModelType { return p.typ }
func (p PrecisionModel) Scale() float64           { return p.scale }

// MakePrecise rounds xy to the grid implied by this precision model.
func (p PrecisionModel) MakePrecise(xy XY) XY {
	if p.typ != Fixed || p.scale == 0 {
		return xy
	}
	return XY{
		X: math.Round(xy.X*p.scale) / p.scale,
		Y: math.Round(xy.Y*p.scale) / p.scale,
	}
}

// FixedGridTolerance returns the diagonal of a single grid cell (√2/scale), used
// by the snap-overlay wrapper (spec.md §4.6) as the minimum snap tolerance
// for a FIXED precision model. It is zero for a FLOATING precision model.
func (p PrecisionModel) FixedGridTolerance() float64 {
	if p.typ != Fixed || p.scale == 0 {
		return 0
	}
	return (1 / p.scale) * 2 / math.Sqrt2
}
