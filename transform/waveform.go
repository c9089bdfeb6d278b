package transform

import (
	"github.com/fans963/audioengine/engineconfig"
	"github.com/fans963/audioengine/types"
	"github.com/fans963/audioengine/workerpool"
)

const waveformChunkSize = 16384

// Waveform is the identity transform: x = i, y = sample[i] for every
// sample.
type Waveform struct{}

func (Waveform) Transform(audio types.Audio, _ engineconfig.Config) (types.Chart, error) {
	n := len(audio.Samples)
	points := make([]types.Point, n)

	numChunks := numFrames(n, waveformChunkSize)
	workerpool.Each(numChunks, func(i int) {
		start, end := frameBounds(i, waveformChunkSize, n)
		for j := start; j < end; j++ {
			points[j] = types.Point{X: float32(j), Y: audio.Samples[j]}
		}
	})

	minY, maxY := types.MinMax(points)
	return types.NewChart(types.TypeAudio, points, minY, maxY), nil
}
