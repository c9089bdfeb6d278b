package types

import (
	"math"

	"github.com/fans963/audioengine/workerpool"
)

// minMaxChunkSize is the smallest slice worth handing to its own worker;
// below this the sequential scan wins on overhead alone.
const minMaxChunkSize = 4096

// MinMax folds min_y/max_y over points via a parallel chunked reduce,
// identity (+Inf, -Inf). An empty slice returns (0, 0): the sentinel
// infinities are normalized away so callers never see them (see
// Concrete scenario 1: empty FFT chart must report min_y=0, max_y=0).
func MinMax(points []Point) (min, max float32) {
	n := len(points)
	if n == 0 {
		return 0, 0
	}
	if n <= minMaxChunkSize {
		return minMaxSeq(points)
	}

	numChunks := (n + minMaxChunkSize - 1) / minMaxChunkSize
	mins := make([]float32, numChunks)
	maxs := make([]float32, numChunks)
	workerpool.Each(numChunks, func(i int) {
		start := i * minMaxChunkSize
		end := start + minMaxChunkSize
		if end > n {
			end = n
		}
		mins[i], maxs[i] = minMaxSeq(points[start:end])
	})

	min = float32(math.Inf(1))
	max = float32(math.Inf(-1))
	for i := range mins {
		if mins[i] < min {
			min = mins[i]
		}
		if maxs[i] > max {
			max = maxs[i]
		}
	}
	return min, max
}

func minMaxSeq(points []Point) (min, max float32) {
	min = points[0].Y
	max = points[0].Y
	for _, p := range points[1:] {
		if p.Y < min {
			min = p.Y
		}
		if p.Y > max {
			max = p.Y
		}
	}
	return min, max
}
