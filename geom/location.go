package geom

// Location is the topological classification of a point relative to a
// geometry, or of one side of an edge relative to an argument geometry
// (spec.md §3).
type Location int

const (
	// LocNone means the location is undefined (the edge does not
	// interact with this argument at all).
	LocNone Location = iota
	LocInterior
	LocBoundary
	LocExterior
)

func (l Location) String() string {
	switch l {
	case LocNone:
		return "NONE"
	case LocInterior:
		return "INTERIOR"
	case LocBoundary:
		return "BOUNDARY"
	case LocExterior:
		return "EXTERIOR"
	default:
		return "INVALID"
	}
}
