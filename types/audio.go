package types

// Audio holds decoded PCM samples and the source sample rate. Multi-channel
// input is flattened channel-interleaved by the decoder: samples is treated
// as a single stream downstream. Samples is shared by reference; callers
// must not mutate it after construction.
type Audio struct {
	Samples    []float32
	SampleRate uint32
}
