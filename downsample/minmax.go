package downsample

import (
	"github.com/fans963/audioengine/types"
	"github.com/fans963/audioengine/workerpool"
)

// MinMax is the default down-sampler: for every bucket it keeps the
// minimum- and maximum-y points (in original order), guaranteeing every
// bucket's extrema stay visible. This preserves a waveform's silhouette
// under aggressive reduction while keeping the cost O(n).
type MinMax struct{}

func (MinMax) DownSample(chart types.Chart, target int) types.Chart {
	points := chart.Points
	n := len(points)
	if target < 2 || n <= target {
		return chart
	}

	buckets := target / 2
	if buckets < 1 {
		buckets = 1
	}
	bucketSize := (n + buckets - 1) / buckets
	if bucketSize < 1 {
		bucketSize = 1
	}
	numChunks := (n + bucketSize - 1) / bucketSize

	chunkPoints := make([][]types.Point, numChunks)
	workerpool.Each(numChunks, func(i int) {
		start := i * bucketSize
		end := start + bucketSize
		if end > n {
			end = n
		}
		chunk := points[start:end]

		minIdx, maxIdx := 0, 0
		for idx, p := range chunk {
			if p.Y < chunk[minIdx].Y {
				minIdx = idx
			}
			if p.Y > chunk[maxIdx].Y {
				maxIdx = idx
			}
		}

		switch {
		case minIdx < maxIdx:
			chunkPoints[i] = []types.Point{chunk[minIdx], chunk[maxIdx]}
		case minIdx > maxIdx:
			chunkPoints[i] = []types.Point{chunk[maxIdx], chunk[minIdx]}
		default:
			chunkPoints[i] = []types.Point{chunk[minIdx]}
		}
	})

	out := make([]types.Point, 0, numChunks*2+2)
	out = append(out, points[0])
	for _, cp := range chunkPoints {
		out = append(out, cp...)
	}
	out = append(out, points[n-1])

	return types.Chart{
		Type:    chart.Type,
		Points:  out,
		MinY:    chart.MinY,
		MaxY:    chart.MaxY,
		Visible: chart.Visible,
	}
}
