package graph_test

import (
	"github.com/google/go-cmp/cmp"

	"github.com/spatialcore/overlay/graph"
)

// labelSnapshot is a go-cmp-friendly projection of a Label's visible state,
// read entirely through its exported accessors: Label's fields are
// unexported, so a useful structural diff has to go through On/Left/Right/
// IsNull rather than cmp.AllowUnexported (which would also need to reach
// into the unexported labelElement type nested inside it).
type labelSnapshot struct {
	Null            [2]bool
	On, Left, Right [2]string
}

func snapshotLabel(l graph.Label) labelSnapshot {
	var s labelSnapshot
	for arg := 0; arg < 2; arg++ {
		s.Null[arg] = l.IsNull(arg)
		if s.Null[arg] {
			continue
		}
		s.On[arg] = l.On(arg).String()
		s.Left[arg] = l.Left(arg).String()
		s.Right[arg] = l.Right(arg).String()
	}
	return s
}

// diffLabels returns a human-readable diff (empty if equal) between two
// Labels' visible state.
func diffLabels(want, got graph.Label) string {
	return cmp.Diff(snapshotLabel(want), snapshotLabel(got))
}

// depthSnapshot is the Depth analogue of labelSnapshot.
type depthSnapshot struct {
	Null        [2]bool
	Left, Right [2]int
}

func snapshotDepth(d graph.Depth) depthSnapshot {
	var s depthSnapshot
	for arg := 0; arg < 2; arg++ {
		s.Null[arg] = d.IsNull(arg)
		s.Left[arg] = d.GetDepth(arg, graph.PosLeft)
		s.Right[arg] = d.GetDepth(arg, graph.PosRight)
	}
	return s
}

func diffDepths(want, got graph.Depth) string {
	return cmp.Diff(snapshotDepth(want), snapshotDepth(got))
}
