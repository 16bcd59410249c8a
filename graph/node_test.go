package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spatialcore/overlay/geom"
	"github.com/spatialcore/overlay/graph"
)

func TestNodeIsIsolatedWithNoIncidentEdges(t *testing.T) {
	n := graph.NewNode(geom.XY{X: 0, Y: 0})
	assert.True(t, n.IsIsolated())
	assert.Equal(t, 0, n.Star().Degree())
}

func TestNodeAddDirectedEdgeSetsOriginAndDegree(t *testing.T) {
	n := graph.NewNode(geom.XY{X: 0, Y: 0})
	e := graph.NewEdge([]geom.XY{{X: 0, Y: 0}, {X: 1, Y: 0}}, graph.NewLabel(0, geom.LocInterior))
	de := graph.NewDirectedEdge(e, true)

	n.AddDirectedEdge(de)

	assert.False(t, n.IsIsolated())
	assert.Equal(t, 1, n.Star().Degree())
	assert.Same(t, n, de.Node())
}

func TestNodeMergeLabelKeepsFirstSeen(t *testing.T) {
	n := graph.NewNode(geom.XY{X: 0, Y: 0})
	n.MergeLabel(graph.NewLabel(0, geom.LocInterior))
	n.MergeLabel(graph.NewLabel(0, geom.LocExterior)) // ignored, arg 0 already set
	n.MergeLabel(graph.NewLabel(1, geom.LocBoundary))

	assert.Equal(t, geom.LocInterior, n.Label().On(0))
	assert.Equal(t, geom.LocBoundary, n.Label().On(1))
}

func TestNodeSetLabelLocation(t *testing.T) {
	n := graph.NewNode(geom.XY{X: 0, Y: 0})
	n.SetLabelLocation(1, geom.LocExterior)
	assert.Equal(t, geom.LocExterior, n.Label().On(1))
}
