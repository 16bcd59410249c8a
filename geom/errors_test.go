package geom_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spatialcore/overlay/geom"
)

func TestTopologyErrorMessages(t *testing.T) {
	nf := geom.NewNodingFailure(geom.XY{X: 1, Y: 2})
	assert.Contains(t, nf.Error(), "noding failure")

	oh := geom.NewOrphanHole(geom.XY{X: 3, Y: 4})
	assert.Contains(t, oh.Error(), "orphan hole")

	rb := geom.NewRobustnessError("grid too coarse")
	assert.Contains(t, rb.Error(), "grid too coarse")
}

func TestTopologyErrorIsDiscoverableViaErrorsAs(t *testing.T) {
	var err error = geom.NewNodingFailure(geom.XY{X: 5, Y: 6})
	wrapped := errors.New("overlay: " + err.Error())
	_ = wrapped

	var topoErr *geom.TopologyError
	assert.True(t, errors.As(err, &topoErr))
	assert.Equal(t, geom.NodingFailure, topoErr.Kind)
	assert.Equal(t, geom.XY{X: 5, Y: 6}, topoErr.Coord)
}

func TestInvalidStateErrorIsSentinelThroughWrapping(t *testing.T) {
	err := fmt.Errorf("overlay: %w", geom.ErrInvalidState)
	assert.True(t, errors.Is(err, geom.ErrInvalidState))
	assert.Contains(t, err.Error(), "already consumed")
}

func TestInvalidArgumentErrorMessage(t *testing.T) {
	err := &geom.InvalidArgumentError{Msg: "bad shape"}
	assert.Equal(t, "invalid argument: bad shape", err.Error())
}
