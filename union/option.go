package union

import "github.com/spatialcore/overlay/geom"

// config holds the configurable collaborators for a union computation.
type config struct {
	buffer0 Buffer0er
	locator geom.PointLocator
}

func newConfig(opts []Option) *config {
	c := &config{buffer0: RingUnionBuffer0{}, locator: geom.SimplePointLocator{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures UnaryUnion and CascadedUnionPolygons.
type Option func(*config)

// WithBuffer0er overrides the default RingUnionBuffer0 fallback used when
// a pairwise union raises a TopologyError (spec.md §4.5.2).
func WithBuffer0er(b Buffer0er) Option {
	return func(c *config) { c.buffer0 = b }
}

// WithPointLocator overrides the default geom.SimplePointLocator used by
// PointGeometryUnion's EXTERIOR filter (spec.md §4.8 step 6).
func WithPointLocator(pl geom.PointLocator) Option {
	return func(c *config) { c.locator = pl }
}
