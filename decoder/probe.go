package decoder

import (
	"regexp"
	"strconv"
)

// streamLineRe matches ffmpeg's stderr banner line for an audio stream, e.g.
//
//	Stream #0:0: Audio: pcm_s16le, 44100 Hz, stereo, s16, 1411 kb/s
//
// We only need the sample rate and a channel-count hint out of it.
var streamLineRe = regexp.MustCompile(`Stream #\d+:\d+.*: Audio: [^,]+, (\d+) Hz, ([^,]+)`)

var channelLayoutCounts = map[string]int{
	"mono":          1,
	"stereo":        2,
	"2.1":           3,
	"3.0":           3,
	"quad":          4,
	"4.0":           4,
	"5.0":           5,
	"5.1":           6,
	"6.1":           7,
	"7.1":           8,
	"downmix":       2,
}

var channelCountRe = regexp.MustCompile(`(\d+) channels`)

// probeStderr scans ffmpeg's diagnostic output for the first audio stream's
// sample rate and channel count. It reports ok=false if no audio stream
// line was found at all ("No audio track").
func probeStderr(stderr string) (sampleRate uint32, channels int, ok bool) {
	m := streamLineRe.FindStringSubmatch(stderr)
	if m == nil {
		return 0, 0, false
	}
	rate, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return 0, 0, false
	}
	layout := m[2]
	if n, found := channelLayoutCounts[layout]; found {
		channels = n
	} else if cm := channelCountRe.FindStringSubmatch(layout); cm != nil {
		channels, _ = strconv.Atoi(cm[1])
	} else {
		channels = 1
	}
	if channels < 1 {
		channels = 1
	}
	return uint32(rate), channels, true
}
