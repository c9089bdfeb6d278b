package downsample

import (
	"github.com/fans963/audioengine/types"
	"github.com/fans963/audioengine/workerpool"
)

// EqualStep is the alternative down-sampler: it keeps the first point of
// every n/target chunk, plus the final point. Cheaper than MinMax but can
// miss transient extrema inside a chunk.
type EqualStep struct{}

func (EqualStep) DownSample(chart types.Chart, target int) types.Chart {
	points := chart.Points
	n := len(points)
	if target < 2 || n <= target {
		return chart
	}

	stride := (n + target - 1) / target
	if stride < 1 {
		stride = 1
	}
	numChunks := (n + stride - 1) / stride

	sampled := make([]types.Point, numChunks)
	workerpool.Each(numChunks, func(i int) {
		sampled[i] = points[i*stride]
	})

	last := points[n-1]
	if sampled[len(sampled)-1] != last {
		sampled = append(sampled, last)
	}

	return types.Chart{
		Type:    chart.Type,
		Points:  sampled,
		MinY:    chart.MinY,
		MaxY:    chart.MaxY,
		Visible: chart.Visible,
	}
}
