package union_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcore/overlay/geom"
	"github.com/spatialcore/overlay/union"
)

func TestUnaryUnionMixedDimensions(t *testing.T) {
	a := square(0, 0, 2)
	b := square(1, 1, 2)
	pt := testFactory.CreatePoint(geom.Coordinates{XY: geom.XY{X: 50, Y: 50}}) // disjoint from both squares
	gc := testFactory.CreateGeometryCollection([]geom.Geometry{a, b, pt})

	result, err := union.UnaryUnion(gc, testFactory)
	require.NoError(t, err)
	assert.Equal(t, geom.TypeGeometryCollection, result.Type())

	gcResult := result.(geom.GeometryCollection)
	var sawPolygonal, sawPuntal bool
	for i := 0; i < gcResult.NumGeometries(); i++ {
		g := gcResult.GeometryN(i)
		if geom.Polygonal(g) {
			sawPolygonal = true
			assert.InDelta(t, 7.0, areaOf(g), 1e-9)
		}
		if geom.Puntal(g) {
			sawPuntal = true
		}
	}
	assert.True(t, sawPolygonal)
	assert.True(t, sawPuntal)
}

func TestUnaryUnionDissolvesDuplicatePoints(t *testing.T) {
	p1 := testFactory.CreatePoint(geom.Coordinates{XY: geom.XY{X: 1, Y: 1}})
	p2 := testFactory.CreatePoint(geom.Coordinates{XY: geom.XY{X: 1, Y: 1}})
	p3 := testFactory.CreatePoint(geom.Coordinates{XY: geom.XY{X: 2, Y: 2}})

	result, err := union.UnaryUnion([]geom.Geometry{p1, p2, p3}, testFactory)
	require.NoError(t, err)

	mp, ok := result.(geom.MultiPoint)
	require.True(t, ok)
	assert.Equal(t, 2, mp.NumPoints())
}

func TestUnaryUnionPointOnPolygonBoundaryIsAbsorbed(t *testing.T) {
	poly := square(0, 0, 10)
	onEdge := testFactory.CreatePoint(geom.Coordinates{XY: geom.XY{X: 0, Y: 5}})

	result, err := union.UnaryUnion([]geom.Geometry{poly, onEdge}, testFactory)
	require.NoError(t, err)

	assert.True(t, geom.Polygonal(result))
	assert.InDelta(t, 100.0, areaOf(result), 1e-9)
}

func TestUnaryUnionEmptyInputYieldsEmptyCollection(t *testing.T) {
	result, err := union.UnaryUnion(nil, testFactory)
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
}

func TestUnaryUnionNilFactoryResolvedFromInput(t *testing.T) {
	poly := square(0, 0, 1)
	result, err := union.UnaryUnion(poly, nil)
	require.NoError(t, err)
	assert.Same(t, testFactory, result.Factory())
}
