// Package transform holds the pure analysis kernels: waveform, spectrum
// (FFT), energy, and zero-crossing rate. Each is a pure function from
// decoded audio to a Chart; all four parallelize over frames on the shared
// worker pool and have no inter-frame dependency.
package transform

import (
	"github.com/fans963/audioengine/engineconfig"
	"github.com/fans963/audioengine/types"
)

// Transform computes one analysis series from decoded audio.
type Transform interface {
	Transform(audio types.Audio, cfg engineconfig.Config) (types.Chart, error)
}

// numFrames returns how many non-overlapping frames of frameSize fit over
// n samples, rounding up so a short final frame is still counted.
func numFrames(n, frameSize int) int {
	if n == 0 {
		return 0
	}
	return (n + frameSize - 1) / frameSize
}

func frameBounds(frameIndex, frameSize, n int) (start, end int) {
	start = frameIndex * frameSize
	end = start + frameSize
	if end > n {
		end = n
	}
	return start, end
}
