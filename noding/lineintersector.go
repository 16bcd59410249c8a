package noding

import "github.com/spatialcore/overlay/geom"

// LineIntersector is the noding package's name for the same contract
// geom.LineIntersector describes (spec.md §6); re-exported here so
// callers wiring a custom intersector into a Noder don't need to import
// geom directly just for the interface name.
type LineIntersector = geom.LineIntersector
