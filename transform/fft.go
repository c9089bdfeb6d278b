package transform

import (
	"math"

	fft "github.com/mjibson/go-dsp/fft"

	"github.com/fans963/audioengine/engineconfig"
	"github.com/fans963/audioengine/types"
	"github.com/fans963/audioengine/workerpool"
)

// Spectrum computes a magnitude-only, rectangular-windowed, non-overlapping
// FFT per frame, using the same github.com/mjibson/go-dsp/fft.FFTReal call
// already exercised elsewhere in the pack for audio visualization. A zero
// or negative frame size means "treat the whole buffer as one frame".
//
// The x coordinate intentionally mixes the frame's starting sample index
// with the bin index (x = chunk*frameSize + bin*2): this isn't a frequency
// axis, it's preserved as-is per spec.md's open question on the matter.
type Spectrum struct{}

func (Spectrum) Transform(audio types.Audio, cfg engineconfig.Config) (types.Chart, error) {
	n := len(audio.Samples)
	if n == 0 {
		return types.NewChart(types.TypeSpectrum, nil, 0, 0), nil
	}

	frameSize := cfg.EffectiveFrameSize(n)
	outputLen := frameSize / 2
	frames := numFrames(n, frameSize)

	pointsPerFrame := make([][]types.Point, frames)
	workerpool.Each(frames, func(i int) {
		start, end := frameBounds(i, frameSize, n)

		// A planner-equivalent instance (FFTReal builds its own plan
		// internally) is created per call, never shared, keeping the
		// kernel lock-free across frames.
		buf := make([]float64, frameSize)
		for j := start; j < end; j++ {
			buf[j-start] = float64(audio.Samples[j])
		}
		spectrum := fft.FFTReal(buf)

		framePoints := make([]types.Point, outputLen)
		base := float32(i * frameSize)
		for bin := 0; bin < outputLen; bin++ {
			re := real(spectrum[bin])
			im := imag(spectrum[bin])
			mag := float32(math.Sqrt(re*re + im*im))
			framePoints[bin] = types.Point{X: base + float32(bin*2), Y: mag}
		}
		pointsPerFrame[i] = framePoints
	})

	points := make([]types.Point, 0, frames*outputLen)
	for _, fp := range pointsPerFrame {
		points = append(points, fp...)
	}

	minY, maxY := types.MinMax(points)
	return types.NewChart(types.TypeSpectrum, points, minY, maxY), nil
}
