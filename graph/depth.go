package graph

import "github.com/spatialcore/overlay/geom"

// depthNull marks a depth slot that has never been assigned, distinct from
// a real depth of 0.
const depthNull = -1

// Depth holds the per-argument (LEFT, RIGHT) integer winding depths
// accumulated when duplicate edges are merged during unique-edge insertion
// (spec.md §3, §4.1 step 5).
type Depth struct {
	d [2][2]int // [arg][PosLeft or PosRight]
}

// NewDepth returns a Depth with every slot unassigned.
func NewDepth() Depth {
	return Depth{d: [2][2]int{{depthNull, depthNull}, {depthNull, depthNull}}}
}

func posIndex(pos Position) int {
	if pos == PosLeft {
		return 0
	}
	return 1
}

// GetDepth returns the recorded depth at (arg, pos), or 0 if unassigned.
func (d Depth) GetDepth(arg int, pos Position) int {
	v := d.d[arg][posIndex(pos)]
	if v == depthNull {
		return 0
	}
	return v
}

// SetDepth assigns the depth at (arg, pos).
func (d *Depth) SetDepth(arg int, pos Position, depth int) {
	d.d[arg][posIndex(pos)] = depth
}

// IsNull reports whether neither side of arg has been assigned.
func (d Depth) IsNull(arg int) bool {
	return d.d[arg][0] == depthNull && d.d[arg][1] == depthNull
}

// GetDelta returns LEFT - RIGHT for argument arg, the quantity spec.md §3
// uses to detect dimensional collapse (delta == 0).
func (d Depth) GetDelta(arg int) int {
	return d.GetDepth(arg, PosLeft) - d.GetDepth(arg, PosRight)
}

// Add folds in the depth contribution of label, per spec.md §4.1 step 5's
// "add the (possibly flipped) label's depth contribution": an INTERIOR
// location on a side increments that side's depth by one relative to its
// current value; any other location leaves it unchanged.
func (d *Depth) Add(label Label) {
	for arg := 0; arg < 2; arg++ {
		if label.IsNull(arg) {
			continue
		}
		d.addLocation(arg, PosLeft, label.Left(arg))
		d.addLocation(arg, PosRight, label.Right(arg))
	}
}

func (d *Depth) addLocation(arg int, pos Position, loc geom.Location) {
	if loc != geom.LocInterior {
		return
	}
	d.SetDepth(arg, pos, d.GetDepth(arg, pos)+1)
}

// Normalize rescales both arguments' depths so that the minimum recorded
// depth across all slots is zero, per spec.md §4.2's "normalise so the
// minimum depth is zero".
func (d *Depth) Normalize() {
	for arg := 0; arg < 2; arg++ {
		if d.IsNull(arg) {
			continue
		}
		min := d.GetDepth(arg, PosLeft)
		if r := d.GetDepth(arg, PosRight); r < min {
			min = r
		}
		if min < 0 {
			min = 0
		}
		d.SetDepth(arg, PosLeft, d.GetDepth(arg, PosLeft)-min)
		d.SetDepth(arg, PosRight, d.GetDepth(arg, PosRight)-min)
	}
}

// LocationFromDepth maps a normalized depth to a location: 0 is EXTERIOR,
// any positive depth is INTERIOR, per spec.md §4.2.
func LocationFromDepth(depth int) geom.Location {
	if depth == 0 {
		return geom.LocExterior
	}
	return geom.LocInterior
}
