package transform

import (
	"github.com/fans963/audioengine/engineconfig"
	"github.com/fans963/audioengine/types"
	"github.com/fans963/audioengine/workerpool"
)

// ZeroCrossingRate counts sign changes per non-overlapping frame, under the
// convention sample >= 0 is non-negative.
type ZeroCrossingRate struct{}

func (ZeroCrossingRate) Transform(audio types.Audio, cfg engineconfig.Config) (types.Chart, error) {
	n := len(audio.Samples)
	if n == 0 {
		return types.NewChart(types.TypeZeroCrossingRate, nil, 0, 0), nil
	}

	frameSize := cfg.EffectiveFrameSize(n)
	frames := numFrames(n, frameSize)
	points := make([]types.Point, frames)

	workerpool.Each(frames, func(i int) {
		start, end := frameBounds(i, frameSize, n)
		frame := audio.Samples[start:end]
		var crossings float32
		for j := 1; j < len(frame); j++ {
			if nonNegative(frame[j-1]) != nonNegative(frame[j]) {
				crossings++
			}
		}
		points[i] = types.Point{X: float32(i * frameSize), Y: crossings}
	})

	minY, maxY := types.MinMax(points)
	return types.NewChart(types.TypeZeroCrossingRate, points, minY, maxY), nil
}

func nonNegative(s float32) bool { return s >= 0 }
