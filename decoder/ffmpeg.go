package decoder

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/fans963/audioengine/apperror"
	"github.com/fans963/audioengine/types"
)

// FFmpegDecoder decodes encoded audio blobs by piping them through a
// one-shot ffmpeg subprocess, generalizing the teacher's streaming
// ffmpegBaseDevice (audio/ffmpegbase.go) from a long-lived capture loop into
// a single blocking decode-to-completion call, per spec.md's synchronous,
// CPU-bound decoder contract.
type FFmpegDecoder struct {
	// FFmpegPath overrides the ffmpeg binary on PATH, mirroring the
	// teacher's --ffmpeg flag plumbed through options.FFMPEGPath.
	FFmpegPath string
}

// NewFFmpegDecoder creates a decoder that shells out to the system ffmpeg.
func NewFFmpegDecoder() *FFmpegDecoder {
	return &FFmpegDecoder{}
}

// Decode implements Decoder.
func (d *FFmpegDecoder) Decode(format string, data []byte) (types.Audio, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return types.Audio{}, apperror.Format("empty format hint")
	}

	var stdout, stderr bytes.Buffer

	inputArgs := ffmpeg.KwArgs{"f": format}
	outputArgs := ffmpeg.KwArgs{
		"f":   "f32le",
		"c:a": "pcm_f32le",
	}

	stream := ffmpeg.Input("pipe:0", inputArgs).
		Output("pipe:1", outputArgs).
		WithInput(bytes.NewReader(data)).
		WithOutput(&stdout)

	cmd := stream.Compile()
	if d.FFmpegPath != "" {
		cmd.Path = d.FFmpegPath
	}
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	raw := stdout.Bytes()
	if runErr != nil && len(raw) == 0 {
		// A genuine codec/format failure (corrupt blob, wrong -f hint, "Invalid
		// data found when processing input") must surface with its own stderr,
		// not be relabeled as a missing audio track below.
		return types.Audio{}, apperror.Wrap(apperror.KindDecode, runErr, "ffmpeg decode failed: %s", strings.TrimSpace(stderr.String()))
	}
	// A non-nil runErr with non-empty output is treated as the stream
	// terminating mid-decode (spec.md's I/O-exhausted end-of-stream case):
	// the samples read so far are returned rather than discarded.

	sampleRate, channels, found := probeStderr(stderr.String())
	if !found {
		return types.Audio{}, apperror.Decode("No audio track")
	}

	samples := bytesToFloat32(raw)
	samples = deinterleaveChannels(samples, channels)

	return types.Audio{Samples: samples, SampleRate: sampleRate}, nil
}

func bytesToFloat32(raw []byte) []float32 {
	n := len(raw) / 4
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		bits := binary.LittleEndian.Uint32(raw[i*4 : i*4+4])
		out[i] = math.Float32frombits(bits)
	}
	return out
}

// deinterleaveChannels turns ffmpeg's sample-interleaved PCM (L,R,L,R,...)
// into the channel-concatenated layout spec.md's decoder contract calls
// for (all of channel 0, then all of channel 1, ...). This is a
// whole-buffer approximation of the original per-packet concatenation: the
// ffmpeg pipe does not expose packet boundaries, and spec.md §9 already
// documents multi-channel flattening as a known limitation, not a bug.
func deinterleaveChannels(interleaved []float32, channels int) []float32 {
	if channels <= 1 || len(interleaved) == 0 {
		return interleaved
	}
	frames := len(interleaved) / channels
	out := make([]float32, frames*channels)
	for ch := 0; ch < channels; ch++ {
		for f := 0; f < frames; f++ {
			out[ch*frames+f] = interleaved[f*channels+ch]
		}
	}
	return out
}
