package transform

import (
	"github.com/fans963/audioengine/engineconfig"
	"github.com/fans963/audioengine/types"
	"github.com/fans963/audioengine/workerpool"
)

// Energy computes short-time energy (sum of squared samples) over
// non-overlapping frames.
type Energy struct{}

func (Energy) Transform(audio types.Audio, cfg engineconfig.Config) (types.Chart, error) {
	n := len(audio.Samples)
	if n == 0 {
		return types.NewChart(types.TypeEnergy, nil, 0, 0), nil
	}

	frameSize := cfg.EffectiveFrameSize(n)
	frames := numFrames(n, frameSize)
	points := make([]types.Point, frames)

	workerpool.Each(frames, func(i int) {
		start, end := frameBounds(i, frameSize, n)
		var energy float32
		for _, s := range audio.Samples[start:end] {
			energy += s * s
		}
		points[i] = types.Point{X: float32(i * frameSize), Y: energy}
	})

	minY, maxY := types.MinMax(points)
	return types.NewChart(types.TypeEnergy, points, minY, maxY), nil
}
