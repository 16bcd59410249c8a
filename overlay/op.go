package overlay

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/spatialcore/overlay/geom"
	"github.com/spatialcore/overlay/graph"
	"github.com/spatialcore/overlay/noding"
)

// OverlayOp drives one Boolean overlay computation end to end: noding,
// labelling, and result extraction (spec.md §4.1-§4.3), per the design
// note's one-shot driver shape. Grounded on the closest architectural
// analogue in the retrieved pack, an S2 BooleanOperation/Build driver,
// generalized here with this core's label-driven result-extraction logic.
type OverlayOp struct {
	g0, g1 geom.Geometry
	op     OpCode

	locator        geom.PointLocator
	li             geom.LineIntersector
	validateResult func(geom.Geometry) bool

	used     bool
	result   geom.Geometry
	buildErr error
}

// Option configures an OverlayOp or a package-level Overlay call.
type Option func(*OverlayOp)

// WithLineIntersector overrides the default RobustLineIntersector.
func WithLineIntersector(li geom.LineIntersector) Option {
	return func(o *OverlayOp) { o.li = li }
}

// WithPointLocator overrides the default SimplePointLocator, used to
// classify incomplete graph nodes against the argument geometries.
func WithPointLocator(pl geom.PointLocator) Option {
	return func(o *OverlayOp) { o.locator = pl }
}

// WithValidateResult installs a secondary validity check run against the
// extracted result before it's returned. spec.md §9 Open Question 1 notes
// the source this was distilled from short-circuits this check to valid;
// this hook makes that choice explicit rather than hard-coding it: the
// default is a no-op that always reports valid.
func WithValidateResult(fn func(geom.Geometry) bool) Option {
	return func(o *OverlayOp) { o.validateResult = fn }
}

// NewOverlayOp returns a driver computing g0 op g1, using g0's factory.
// The computation does not run until Build is called.
func NewOverlayOp(g0, g1 geom.Geometry, op OpCode, opts ...Option) *OverlayOp {
	o := &OverlayOp{
		g0:             g0,
		g1:             g1,
		op:             op,
		locator:        geom.SimplePointLocator{},
		validateResult: func(geom.Geometry) bool { return true },
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Build runs the overlay exactly once; a second call returns
// geom.ErrInvalidState, per spec.md §5's one-shot contract and §9 open
// question 2's resolution in favor of enforcing it.
func (o *OverlayOp) Build() (geom.Geometry, error) {
	if o.used {
		return nil, fmt.Errorf("overlay: %w", geom.ErrInvalidState)
	}
	o.used = true

	log.Debug().Str("op", opName(o.op)).Msg("overlay: build starting")

	factory := o.g0.Factory()
	pg := graph.NewPlanarGraph()
	noder := noding.NewNoder(o.li)
	edgeList, err := noder.Node(pg, o.g0, o.g1, o.locator)
	if err != nil {
		o.buildErr = fmt.Errorf("overlay: noding failed: %w", err)
		return nil, o.buildErr
	}

	lbl := &labelling{pg: pg, locator: o.locator, g0: o.g0, g1: o.g1}
	lbl.run(edgeList.Edges())

	extractor := NewResultExtractor(pg, factory, o.op, o.g0.Dimension(), o.g1.Dimension())
	result, err := extractor.Extract()
	if err != nil {
		o.buildErr = fmt.Errorf("overlay: result extraction failed: %w", err)
		return nil, o.buildErr
	}

	if !o.validateResult(result) {
		o.buildErr = fmt.Errorf("overlay: %w", geom.NewRobustnessError("result failed validation"))
		return nil, o.buildErr
	}

	log.Debug().Str("op", opName(o.op)).Msg("overlay: build complete")
	o.result = result
	return o.result, nil
}

func opName(op OpCode) string {
	switch op {
	case OpIntersection:
		return "intersection"
	case OpUnion:
		return "union"
	case OpDifference:
		return "difference"
	case OpSymDifference:
		return "symdifference"
	default:
		return "unknown"
	}
}

// Overlay is the package-level entry point of spec.md §6: compute g0 op
// g1, with robustness fallback handled by SnapIfNeededOverlay. The result
// factory is taken from g0.
func Overlay(g0, g1 geom.Geometry, op OpCode, opts ...Option) (geom.Geometry, error) {
	return SnapIfNeededOverlay(g0, g1, op, opts...)
}
