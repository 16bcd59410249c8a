package features_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/spatialcore/overlay/geom"
	"github.com/spatialcore/overlay/overlay"
	"github.com/spatialcore/overlay/union"
)

var testFactory = geom.NewGeometryFactory(geom.NewFloatingPrecisionModel())

// overlayWorld carries state across the steps of a single scenario.
type overlayWorld struct {
	named  map[string]geom.Geometry
	result geom.Geometry
}

func newOverlayWorld() *overlayWorld {
	return &overlayWorld{named: make(map[string]geom.Geometry)}
}

func parseVertices(raw string) []geom.XY {
	var pts []geom.XY
	for _, tok := range strings.Fields(raw) {
		tok = strings.Trim(tok, "()")
		parts := strings.Split(tok, ",")
		x, _ := strconv.ParseFloat(parts[0], 64)
		y, _ := strconv.ParseFloat(parts[1], 64)
		pts = append(pts, geom.XY{X: x, Y: y})
	}
	return pts
}

func (w *overlayWorld) polygonWithVertices(name, raw string) error {
	pts := parseVertices(raw)
	pts = append(pts, pts[0]) // close the ring
	ring, err := testFactory.CreateLinearRing(geom.NewSequenceXY(pts))
	if err != nil {
		return err
	}
	w.named[name] = testFactory.CreatePolygon(ring, nil)
	return nil
}

func (w *overlayWorld) lineFromTo(name, fromRaw, toRaw string) error {
	from := parseVertices(fmt.Sprintf("(%s)", fromRaw))[0]
	to := parseVertices(fmt.Sprintf("(%s)", toRaw))[0]
	w.named[name] = testFactory.CreateLineString(geom.NewSequenceXY([]geom.XY{from, to}))
	return nil
}

func (w *overlayWorld) pointAt(name, raw string) error {
	xy := parseVertices(fmt.Sprintf("(%s)", raw))[0]
	w.named[name] = testFactory.CreatePoint(geom.Coordinates{XY: xy})
	return nil
}

func (w *overlayWorld) runOverlay(op overlay.OpCode, a, b string) error {
	result, err := overlay.Overlay(w.named[a], w.named[b], op)
	if err != nil {
		return err
	}
	w.result = result
	return nil
}

func (w *overlayWorld) union2(a, b string) error {
	return w.runOverlay(overlay.OpUnion, a, b)
}

func (w *overlayWorld) intersect2(a, b string) error {
	return w.runOverlay(overlay.OpIntersection, a, b)
}

func (w *overlayWorld) symDifference2(a, b string) error {
	return w.runOverlay(overlay.OpSymDifference, a, b)
}

func (w *overlayWorld) unaryUnionNamed(names string) error {
	var geoms []geom.Geometry
	for _, n := range strings.Fields(names) {
		n = strings.Trim(n, `"`)
		geoms = append(geoms, w.named[n])
	}
	result, err := union.UnaryUnion(geoms, testFactory)
	if err != nil {
		return err
	}
	w.result = result
	return nil
}

func areaOfGeometry(g geom.Geometry) float64 {
	switch t := g.(type) {
	case geom.Polygon:
		return t.Area()
	case geom.MultiPolygon:
		var sum float64
		for i := 0; i < t.NumPolygons(); i++ {
			sum += t.PolygonN(i).Area()
		}
		return sum
	default:
		return 0
	}
}

func (w *overlayWorld) resultIsASinglePolygon() error {
	if w.result.Type() != geom.TypePolygon {
		return fmt.Errorf("expected a polygon, got %v", w.result.Type())
	}
	return nil
}

func (w *overlayWorld) resultHasArea(want float64) error {
	got := areaOfGeometry(w.result)
	if diff := got - want; diff > 1e-6 || diff < -1e-6 {
		return fmt.Errorf("expected area %v, got %v", want, got)
	}
	return nil
}

func (w *overlayWorld) resultHasHoles(want int) error {
	poly, ok := w.result.(geom.Polygon)
	if !ok {
		return fmt.Errorf("expected a polygon, got %v", w.result.Type())
	}
	if got := poly.NumInteriorRings(); got != want {
		return fmt.Errorf("expected %d holes, got %d", want, got)
	}
	return nil
}

func (w *overlayWorld) resultIsAMultiPolygonWith(count int) error {
	mp, ok := w.result.(geom.MultiPolygon)
	if !ok {
		return fmt.Errorf("expected a multipolygon, got %v", w.result.Type())
	}
	if got := mp.NumPolygons(); got != count {
		return fmt.Errorf("expected %d components, got %d", count, got)
	}
	return nil
}

func (w *overlayWorld) oneComponentHasArea(want float64) error {
	mp, ok := w.result.(geom.MultiPolygon)
	if !ok {
		return fmt.Errorf("expected a multipolygon, got %v", w.result.Type())
	}
	for i := 0; i < mp.NumPolygons(); i++ {
		if a := mp.PolygonN(i).Area(); a-want < 1e-6 && a-want > -1e-6 {
			return nil
		}
	}
	return fmt.Errorf("no component with area %v found", want)
}

func (w *overlayWorld) resultIsThePoint(raw string) error {
	pt, ok := w.result.(geom.Point)
	if !ok {
		return fmt.Errorf("expected a point, got %v", w.result.Type())
	}
	want := parseVertices(fmt.Sprintf("(%s)", raw))[0]
	got, ok := pt.XY()
	if !ok || got != want {
		return fmt.Errorf("expected point %v, got %v (empty=%v)", want, got, !ok)
	}
	return nil
}

func (w *overlayWorld) resultIsAGeometryCollectionWithAPointAndAPolygon() error {
	gc, ok := w.result.(geom.GeometryCollection)
	if !ok {
		return fmt.Errorf("expected a geometry collection, got %v", w.result.Type())
	}
	var sawPoint, sawPolygon bool
	for i := 0; i < gc.NumGeometries(); i++ {
		switch gc.GeometryN(i).Type() {
		case geom.TypePoint:
			sawPoint = true
		case geom.TypePolygon:
			sawPolygon = true
		}
	}
	if !sawPoint || !sawPolygon {
		return fmt.Errorf("expected a point and a polygon member, got point=%v polygon=%v", sawPoint, sawPolygon)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	w := newOverlayWorld()

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		w.named = make(map[string]geom.Geometry)
		w.result = nil
		return c, nil
	})

	ctx.Step(`^polygon "([^"]+)" with vertices ((?:\([^)]+\)\s*)+)$`, w.polygonWithVertices)
	ctx.Step(`^line "([^"]+)" from \(([^)]+)\) to \(([^)]+)\)$`, w.lineFromTo)
	ctx.Step(`^point "([^"]+)" at \(([^)]+)\)$`, w.pointAt)

	ctx.Step(`^I union "([^"]+)" and "([^"]+)"$`, w.union2)
	ctx.Step(`^I intersect "([^"]+)" and "([^"]+)"$`, w.intersect2)
	ctx.Step(`^I symmetric-difference "([^"]+)" and "([^"]+)"$`, w.symDifference2)
	ctx.Step(`^I unary-union ((?:"[^"]+"\s*)+)$`, w.unaryUnionNamed)

	ctx.Step(`^the result is a single polygon$`, w.resultIsASinglePolygon)
	ctx.Step(`^the result has area (\d+(?:\.\d+)?)$`, func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		return w.resultHasArea(v)
	})
	ctx.Step(`^the result has (\d+) holes?$`, func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		return w.resultHasHoles(n)
	})
	ctx.Step(`^the result is a multipolygon with (\d+) components?$`, func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		return w.resultIsAMultiPolygonWith(n)
	})
	ctx.Step(`^one component has area (\d+(?:\.\d+)?)$`, func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		return w.oneComponentHasArea(v)
	})
	ctx.Step(`^the result is the point \(([^)]+)\)$`, w.resultIsThePoint)
	ctx.Step(`^the result is a geometry collection with a point and a polygon$`, w.resultIsAGeometryCollectionWithAPointAndAPolygon)
}

func TestOverlayFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"overlay.feature"},
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
