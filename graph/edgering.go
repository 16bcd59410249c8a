package graph

import "github.com/spatialcore/overlay/geom"

// EdgeRing is a cycle of directed edges forming either a shell (CW) or a
// hole (CCW), per spec.md §3. MaximalEdgeRing (degree >2 nodes allowed)
// and MinimalEdgeRing (degree <=2, OGC-compatible) are built by walking
// Next or NextMin respectively; see overlay/ringassembly.go for the
// construction and classification algorithm. EdgeRing itself only holds
// the assembled cycle and the shell/hole bookkeeping spec.md §4.4 needs.
type EdgeRing struct {
	start *DirectedEdge
	edges []*DirectedEdge

	ring    geom.LinearRing
	hasRing bool

	shell *EdgeRing
	holes []*EdgeRing
}

// NewEdgeRing returns a ring starting at start, with no directed edges
// collected yet.
func NewEdgeRing(start *DirectedEdge) *EdgeRing {
	return &EdgeRing{start: start}
}

// Start returns the directed edge the ring traversal began at.
func (r *EdgeRing) Start() *DirectedEdge { return r.start }

// AddDirectedEdge appends de to the ring's traversal order. Callers are
// responsible for also calling de.SetEdgeRing/SetMinEdgeRing as
// appropriate -- this method is shared by both maximal- and
// minimal-ring construction, which target different slots on de.
func (r *EdgeRing) AddDirectedEdge(de *DirectedEdge) {
	r.edges = append(r.edges, de)
}

// DirectedEdges returns the ring's directed edges in traversal order.
func (r *EdgeRing) DirectedEdges() []*DirectedEdge { return r.edges }

// Coordinates returns the closed coordinate sequence walked by the ring:
// each directed edge's coordinates in its own orientation, with
// consecutive duplicate vertices at edge boundaries removed.
func (r *EdgeRing) Coordinates() []geom.XY {
	var out []geom.XY
	for _, de := range r.edges {
		coords := de.Edge().Coordinates()
		if !de.IsForward() {
			coords = reverseXY(coords)
		}
		if len(out) > 0 {
			coords = coords[1:]
		}
		out = append(out, coords...)
	}
	return out
}

func reverseXY(in []geom.XY) []geom.XY {
	out := make([]geom.XY, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

// ComputeRing builds and caches the ring's LinearRing via factory,
// applying the factory's precision model to every vertex.
func (r *EdgeRing) ComputeRing(factory *geom.GeometryFactory) (geom.LinearRing, error) {
	if r.hasRing {
		return r.ring, nil
	}
	coords := r.Coordinates()
	seq := geom.NewSequenceXY(coords)
	lr, err := factory.CreateLinearRing(seq)
	if err != nil {
		return geom.LinearRing{}, err
	}
	r.ring = lr
	r.hasRing = true
	return lr, nil
}

// IsHole reports whether the ring, once built, is oriented CCW (a hole)
// rather than CW (a shell).
func (r *EdgeRing) IsHole() bool {
	return r.ring.IsCCW()
}

// SetShell assigns the shell a hole ring belongs to.
func (r *EdgeRing) SetShell(s *EdgeRing) { r.shell = s }

// Shell returns the shell this ring was assigned to, or nil.
func (r *EdgeRing) Shell() *EdgeRing { return r.shell }

// AddHole records h as one of this (shell) ring's holes.
func (r *EdgeRing) AddHole(h *EdgeRing) {
	h.shell = r
	r.holes = append(r.holes, h)
}

// Holes returns the holes assigned to this shell ring.
func (r *EdgeRing) Holes() []*EdgeRing { return r.holes }

// Envelope returns the bounding box of the ring's built LinearRing.
func (r *EdgeRing) Envelope() geom.Envelope {
	return r.ring.Envelope()
}

// MaxNodeDegree returns the highest directed-edge-star degree among the
// nodes this ring passes through, used by spec.md §4.4 step 3 to decide
// whether a maximal ring needs splitting into minimal rings.
func (r *EdgeRing) MaxNodeDegree() int {
	max := 0
	for _, de := range r.edges {
		if d := de.Node().Star().Degree(); d > max {
			max = d
		}
	}
	return max
}
