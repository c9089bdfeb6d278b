package downsample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fans963/audioengine/types"
)

func TestEqualStepSamplesAtStride(t *testing.T) {
	pts := make([]types.Point, 20)
	for i := range pts {
		pts[i] = types.Point{X: float32(i), Y: float32(i)}
	}
	chart := types.NewChart(types.TypeAudio, pts, 0, 19)

	out := EqualStep{}.DownSample(chart, 5)

	stride := 20 / 5
	require.GreaterOrEqual(t, len(out.Points), 5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, pts[i*stride], out.Points[i])
	}
}

func TestEqualStepAppendsLastPointWhenMissing(t *testing.T) {
	pts := make([]types.Point, 20)
	for i := range pts {
		pts[i] = types.Point{X: float32(i), Y: float32(i)}
	}
	chart := types.NewChart(types.TypeAudio, pts, 0, 19)

	out := EqualStep{}.DownSample(chart, 5)
	assert.Equal(t, pts[len(pts)-1], out.Points[len(out.Points)-1])
}

func TestEqualStepNoOpWhenAlreadySmall(t *testing.T) {
	pts := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	chart := types.NewChart(types.TypeAudio, pts, 0, 2)

	out := EqualStep{}.DownSample(chart, 10)
	assert.Equal(t, pts, out.Points)
}

func TestEqualStepNoOpWhenTargetTooSmall(t *testing.T) {
	pts := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	chart := types.NewChart(types.TypeAudio, pts, 0, 3)

	out := EqualStep{}.DownSample(chart, 1)
	assert.Equal(t, pts, out.Points)
}
