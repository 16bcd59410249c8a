package union

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/spatialcore/overlay/geom"
	"github.com/spatialcore/overlay/rtree"
)

// CascadedUnion unions a batch of polygonal geometries via a balanced
// binary reduction over an STR-tree's hierarchical grouping (spec.md
// §4.5), concentrating pairwise work on spatially close inputs. Grounded
// on the teacher's rtree.BulkLoad for the packed spatial index and on
// this package's OverlapUnion for each pairwise step.
type CascadedUnion struct {
	input []geom.Geometry
	cfg   *config
	used  bool
}

// NewCascadedUnion returns a one-shot reducer over input.
func NewCascadedUnion(input []geom.Geometry, opts ...Option) *CascadedUnion {
	return &CascadedUnion{input: input, cfg: newConfig(opts)}
}

// Union runs the reduction exactly once; a second call returns
// geom.ErrInvalidState, matching OverlayOp's one-shot contract
// (spec.md §5, §9 open question 2).
func (c *CascadedUnion) Union() (geom.Geometry, error) {
	if c.used {
		return nil, fmt.Errorf("union: %w", geom.ErrInvalidState)
	}
	c.used = true

	if len(c.input) == 0 {
		return nil, nil
	}

	log.Debug().Int("count", len(c.input)).Msg("union: cascaded union starting")

	records := make([]geom.Geometry, len(c.input))
	tree := &rtree.RTree{}
	for i, g := range c.input {
		e := g.Envelope()
		tree.Insert(rtree.Box{MinX: e.MinX(), MinY: e.MinY(), MaxX: e.MaxX(), MaxY: e.MaxY()}, i)
		records[i] = g
	}
	tree.Build()
	c.input = nil // drop the reference; records is the only copy kept alive

	itemsTree := tree.ItemsTree()
	if len(itemsTree) == 0 {
		return nil, nil
	}
	return unionTree(itemsTree[0], records, c.cfg)
}

// unionTree implements spec.md §4.5's "recursively unionTree: each
// subtree is flattened to a list of geometries (recursing into
// sublists) and then reduced by binaryUnion".
func unionTree(node rtree.ItemsTreeNode, records []geom.Geometry, cfg *config) (geom.Geometry, error) {
	if node.Leaf && len(node.Children) == 0 {
		return records[node.RecordID], nil
	}

	geoms := make([]geom.Geometry, 0, len(node.Children))
	for _, child := range node.Children {
		if child.Leaf && len(child.Children) == 0 {
			geoms = append(geoms, records[child.RecordID])
			continue
		}
		g, err := unionTree(child, records, cfg)
		if err != nil {
			return nil, err
		}
		geoms = append(geoms, g)
	}
	return binaryUnion(geoms, cfg)
}

// binaryUnion reduces geoms by recursively halving and unioning, so
// spatially adjacent items (kept adjacent by the STR-tree's packing order)
// are combined first.
func binaryUnion(geoms []geom.Geometry, cfg *config) (geom.Geometry, error) {
	switch len(geoms) {
	case 0:
		return nil, nil
	case 1:
		return geoms[0], nil
	}
	mid := len(geoms) / 2
	left, err := binaryUnion(geoms[:mid], cfg)
	if err != nil {
		return nil, err
	}
	right, err := binaryUnion(geoms[mid:], cfg)
	if err != nil {
		return nil, err
	}
	merged, err := unionSafe(left, right, cfg)
	if err != nil {
		return nil, err
	}
	return restrictToPolygons(merged), nil
}

// CascadedUnionPolygons is the package-level entry point of spec.md §6 for
// the polygonal batch case.
func CascadedUnionPolygons(polys []geom.Geometry, opts ...Option) (geom.Geometry, error) {
	return NewCascadedUnion(polys, opts...).Union()
}
