package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fans963/audioengine/engineconfig"
	"github.com/fans963/audioengine/types"
)

// Scenario 3: energy framing.
func TestEnergyFraming(t *testing.T) {
	samples := []float32{1, 1, 1, 1, 2, 2, 2, 2}
	chart, err := Energy{}.Transform(types.Audio{Samples: samples}, engineconfig.Config{FrameSize: 4})
	require.NoError(t, err)

	require.Len(t, chart.Points, 2)
	assert.Equal(t, types.Point{X: 0, Y: 4}, chart.Points[0])
	assert.Equal(t, types.Point{X: 4, Y: 16}, chart.Points[1])
}

func TestEnergyFrameXIsMultipleOfFrameSize(t *testing.T) {
	samples := make([]float32, 37)
	for i := range samples {
		samples[i] = float32(i) * 0.01
	}
	frameSize := 5
	chart, err := Energy{}.Transform(types.Audio{Samples: samples}, engineconfig.Config{FrameSize: frameSize})
	require.NoError(t, err)

	for k, p := range chart.Points {
		assert.Equal(t, float32(k*frameSize), p.X)
	}
}
