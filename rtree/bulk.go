package rtree

import (
	"math"
	"sort"
)

// BulkItem is an item that can be inserted for bulk loading.
type BulkItem struct {
	Box      Box
	RecordID int
}

// BulkLoad builds a packed RTree from items in one bottom-up pass using the
// sort-tile-recurse (STR) construction: records are tiled into
// maxChildren-sized leaves by an X-slab/Y-sort pass, then each resulting
// level of nodes is tiled the same way against its own bounding boxes
// until a single root remains. This keeps every level to one packing
// pass over that level's nodes, rather than re-partitioning the same
// items at every recursion depth the way a top-down median split would.
func BulkLoad(items []BulkItem) *RTree {
	if len(items) == 0 {
		return &RTree{}
	}

	level := strTile(items, func(it BulkItem) Box { return it.Box }, leafFromItems)
	for len(level) > 1 {
		level = strTile(level, calculateBound, parentFromNodes)
	}
	return &RTree{root: level[0]}
}

func leafFromItems(group []BulkItem) *node {
	n := &node{isLeaf: true, numEntries: len(group)}
	for i, it := range group {
		n.entries[i] = entry{box: it.Box, recordID: it.RecordID}
	}
	return n
}

func parentFromNodes(group []*node) *node {
	n := &node{numEntries: len(group)}
	for i, child := range group {
		n.entries[i] = entry{box: calculateBound(child), child: child}
		child.parent = n
	}
	return n
}

// strTile performs one sort-tile-recurse pass over items: the items are
// sorted along X and cut into slabs sized so there are roughly
// sqrt(len(items)/maxChildren) of them, each slab is then sorted along Y
// and cut into runs of at most maxChildren items, and every run is
// handed to build to become one node of the level above.
func strTile[T any](items []T, boxOf func(T) Box, build func([]T) *node) []*node {
	sorted := append([]T(nil), items...)
	sort.Slice(sorted, func(i, j int) bool {
		bi, bj := boxOf(sorted[i]), boxOf(sorted[j])
		return bi.MinX+bi.MaxX < bj.MinX+bj.MaxX
	})

	leafCount := ceilDiv(len(sorted), maxChildren)
	slabCount := int(math.Ceil(math.Sqrt(float64(leafCount))))
	if slabCount < 1 {
		slabCount = 1
	}
	slabSize := slabCount * maxChildren

	var out []*node
	for start := 0; start < len(sorted); start += slabSize {
		end := start + slabSize
		if end > len(sorted) {
			end = len(sorted)
		}
		slab := sorted[start:end]
		sort.Slice(slab, func(i, j int) bool {
			bi, bj := boxOf(slab[i]), boxOf(slab[j])
			return bi.MinY+bi.MaxY < bj.MinY+bj.MaxY
		})
		for s := 0; s < len(slab); s += maxChildren {
			e := s + maxChildren
			if e > len(slab) {
				e = len(slab)
			}
			out = append(out, build(slab[s:e]))
		}
	}
	return out
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
