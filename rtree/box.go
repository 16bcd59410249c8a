package rtree

// Box is an axis-aligned bounding box, the unit of indexing for the RTree.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Intersects reports whether b and o share at least one point.
func (b Box) Intersects(o Box) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX &&
		b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// combine returns the smallest Box containing both a and b.
func combine(a, b Box) Box {
	return Box{
		MinX: min(a.MinX, b.MinX),
		MinY: min(a.MinY, b.MinY),
		MaxX: max(a.MaxX, b.MaxX),
		MaxY: max(a.MaxY, b.MaxY),
	}
}
