// Package engine orchestrates decode → cache → range-select → down-sample
// → publish. It is the single writer of viewport state: entry points are
// serialized by an internal mutex (AddChart releases it while deriving a
// chart that is not cached yet), while the stores it calls into allow concurrent readers and the
// data-parallel kernels it calls into run on the shared worker pool.
package engine

import (
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/fans963/audioengine/apperror"
	"github.com/fans963/audioengine/audiostore"
	"github.com/fans963/audioengine/chartstore"
	"github.com/fans963/audioengine/decoder"
	"github.com/fans963/audioengine/downsample"
	"github.com/fans963/audioengine/engineconfig"
	"github.com/fans963/audioengine/publisher"
	"github.com/fans963/audioengine/transform"
	"github.com/fans963/audioengine/types"
)

const (
	defaultDownSamplePoints = 500
	defaultMaxIndex         = 10000
	defaultYRangeMin        = -0.5
	defaultYRangeMax        = 0.5
)

// Engine is the audio analysis engine: decode→transform→cache→range→
// downsample→publish, plus the viewport state every viewport mutation and
// republish-all act on.
type Engine struct {
	mu sync.Mutex

	config      engineconfig.Config
	decoder     decoder.Decoder
	audio       *audiostore.Store
	charts      *chartstore.Store
	downSampler downsample.DownSampler
	pub         *publisher.Publisher
	transforms  map[types.DataType]transform.Transform

	// dedupes concurrent add_chart calls for the same (key, dataType) so
	// two racing viewport updates don't redo the same derivation.
	inflight singleflight.Group

	indexRangeStart     float32
	indexRangeEnd       float32
	downSamplePointsNum int
	maxIndex            float32
	yRangeMin           float32
	yRangeMax           float32
	selectedAudio       *string
}

// New creates an engine wired to the default ffmpeg decoder, sharded
// in-memory stores, and the min-max down-sampler.
func New(cfg engineconfig.Config) *Engine {
	return NewWithDecoder(cfg, decoder.NewFFmpegDecoder())
}

// NewWithDecoder is New but lets callers substitute the decoder
// capability, e.g. for tests that don't want to shell out to ffmpeg.
func NewWithDecoder(cfg engineconfig.Config, dec decoder.Decoder) *Engine {
	return &Engine{
		config:      cfg,
		decoder:     dec,
		audio:       audiostore.New(),
		charts:      chartstore.New(),
		downSampler: downsample.MinMax{},
		pub:         publisher.NewPublisher(),
		transforms: map[types.DataType]transform.Transform{
			types.TypeSpectrum:         transform.Spectrum{},
			types.TypeEnergy:           transform.Energy{},
			types.TypeZeroCrossingRate: transform.ZeroCrossingRate{},
		},
		// index_range defaults to the full default viewport rather than
		// the original source's (0.0, 0.0): a zero-width initial range
		// would make every chart emitted by add() empty. See DESIGN.md.
		indexRangeStart:     0,
		indexRangeEnd:       defaultMaxIndex,
		downSamplePointsNum: defaultDownSamplePoints,
		maxIndex:            defaultMaxIndex,
		yRangeMin:           defaultYRangeMin,
		yRangeMax:           defaultYRangeMax,
	}
}

// Add decodes bytes, stores the audio, derives and caches its waveform
// chart, and publishes the downsampled waveform plus updated axis bounds.
func (e *Engine) Add(key, format string, data []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	audio, err := e.decoder.Decode(format, data)
	if err != nil {
		return err
	}
	e.audio.Save(key, audio)

	chart, err := transform.Waveform{}.Transform(audio, e.config)
	if err != nil {
		return apperror.Processing("waveform transform failed for %q: %v", key, err)
	}
	e.charts.Add(key, chart)

	e.applyAxisBoundsLocked(chart)
	e.publishChartLocked(key, chart)
	e.pub.UpdateMaxIndex(e.maxIndex)
	e.pub.UpdateYRange(e.yRangeMin, e.yRangeMax)
	return nil
}

// RemoveAudio removes the audio entry for key and cascades removal of
// every chart cached under it.
func (e *Engine) RemoveAudio(key string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.audio.Remove(key); err != nil {
		return err
	}
	e.charts.RemoveAllFor(key)
	return nil
}

// AddChart reuses the cached chart of dataType for key if present;
// otherwise it loads the audio, runs the matching transform, caches the
// result, and publishes it at the current viewport.
//
// The derivation (audio load + transform) runs with e.mu released, so two
// genuinely concurrent AddChart calls for the same (key, dataType) race
// into inflight.Do and dedupe for real, rather than serializing on e.mu
// and finding the group already resolved.
func (e *Engine) AddChart(key string, dataType types.DataType) error {
	e.mu.Lock()
	chart, err := e.charts.Get(key, dataType)
	if err == nil {
		e.applyAxisBoundsLocked(chart)
		e.pub.UpdateMaxIndex(e.maxIndex)
		e.pub.UpdateYRange(e.yRangeMin, e.yRangeMax)
		e.publishChartLocked(key, chart)
		e.mu.Unlock()
		return nil
	}
	if !apperror.Is(err, apperror.KindNotFound) {
		e.mu.Unlock()
		return err
	}

	if dataType == types.TypeAudio {
		e.mu.Unlock()
		return apperror.NotFound("no cached waveform chart for key %q; call add first", key)
	}

	xform, ok := e.transforms[dataType]
	if !ok {
		e.mu.Unlock()
		return apperror.Processing("no transform registered for data type %q", dataType)
	}
	cfg := e.config
	e.mu.Unlock()

	dedupeKey := key + "\x00" + string(dataType)
	result, derivErr, _ := e.inflight.Do(dedupeKey, func() (any, error) {
		audio, loadErr := e.audio.Load(key)
		if loadErr != nil {
			return nil, loadErr
		}
		c, transErr := xform.Transform(audio, cfg)
		if transErr != nil {
			return nil, apperror.Processing("%s transform failed for %q: %v", dataType, key, transErr)
		}
		return c, nil
	})
	if derivErr != nil {
		return derivErr
	}
	chart = result.(types.Chart)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.charts.Add(key, chart)
	e.applyAxisBoundsLocked(chart)
	e.pub.UpdateMaxIndex(e.maxIndex)
	e.pub.UpdateYRange(e.yRangeMin, e.yRangeMax)
	e.publishChartLocked(key, chart)
	return nil
}

// RemoveChart removes the cached chart of dataType for key.
func (e *Engine) RemoveChart(key string, dataType types.DataType) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.charts.Remove(key, dataType); err != nil {
		return err
	}
	e.pub.RemoveChart(key, dataType)
	return nil
}

// SetIndexRange updates the visible domain window and republishes every
// cached chart.
func (e *Engine) SetIndexRange(start, end float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.indexRangeStart, e.indexRangeEnd = start, end
	e.republishAllLocked()
}

// SetDownSamplePointsNum updates the down-sample target and republishes
// every cached chart.
func (e *Engine) SetDownSamplePointsNum(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.downSamplePointsNum = n
	e.republishAllLocked()
}

// SetConfig updates the framing configuration and republishes every cached
// chart. Existing cached charts are not retroactively re-derived: they keep
// whatever frame size they were computed with until their key is re-added
// or re-derived.
func (e *Engine) SetConfig(cfg engineconfig.Config) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.config = cfg
	e.republishAllLocked()
}

// SetSelectedAudio records which source key the UI is currently focused
// on; it does not by itself trigger a republish.
func (e *Engine) SetSelectedAudio(key *string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selectedAudio = key
}

// GetMaxIndex returns the current max_index axis bound.
func (e *Engine) GetMaxIndex() float32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.maxIndex
}

// ToggleVisible parses "<key> <suffix>" (suffix one of audio, spectrum,
// energy, zeroCrossingRate), flips that chart's visible flag, and
// republishes every cached chart.
func (e *Engine) ToggleVisible(name string) error {
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return apperror.InvalidChartName("invalid chart name %q: expected \"<key> <suffix>\"", name)
	}
	key, suffix := name[:idx], name[idx+1:]
	dataType, ok := types.ParseDataType(suffix)
	if !ok {
		return apperror.InvalidChartName("invalid chart name %q: unknown suffix %q", name, suffix)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	chart, err := e.charts.Get(key, dataType)
	if err != nil {
		return apperror.InvalidChartName("invalid chart name %q: %v", name, err)
	}
	chart.Visible.Store(!chart.Visible.Load())

	e.republishAllLocked()
	return nil
}

func (e *Engine) applyAxisBoundsLocked(chart types.Chart) {
	if !chart.IsVisible() {
		return
	}
	e.foldYRangeLocked(chart)
	e.advanceMaxIndexLocked(chart)
}

func (e *Engine) foldYRangeLocked(chart types.Chart) {
	if len(chart.Points) == 0 {
		return
	}
	if chart.MinY < e.yRangeMin {
		e.yRangeMin = chart.MinY
	}
	if chart.MaxY > e.yRangeMax {
		e.yRangeMax = chart.MaxY
	}
}

// advanceMaxIndexLocked implements spec.md's max_index update rule: if the
// chart's last point is past the current max_index, max_index advances to
// the next multiple of frame_size at or beyond it.
func (e *Engine) advanceMaxIndexLocked(chart types.Chart) {
	if len(chart.Points) == 0 {
		return
	}
	lastX := chart.Points[len(chart.Points)-1].X
	if lastX <= e.maxIndex {
		return
	}
	frameSize := float32(e.config.EffectiveFrameSize(len(chart.Points)))
	if frameSize <= 0 {
		frameSize = 1
	}
	steps := ceilDiv(lastX, frameSize)
	e.maxIndex = steps * frameSize
}

func ceilDiv(a, b float32) float32 {
	q := a / b
	whole := float32(int64(q))
	if q > whole {
		whole++
	}
	return whole
}

func (e *Engine) publishChartLocked(key string, chart types.Chart) {
	visible := chart.GetRange(e.indexRangeStart, e.indexRangeEnd)
	downsampled := e.downSampler.DownSample(visible, e.downSamplePointsNum)
	e.pub.AddChart(downsampled.ToCommunicatorChart(key))
}
