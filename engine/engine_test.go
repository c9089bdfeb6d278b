package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fans963/audioengine/apperror"
	"github.com/fans963/audioengine/engineconfig"
	"github.com/fans963/audioengine/types"
)

// mapDecoder is a fake decoder.Decoder that returns a preset Audio per
// format string, so tests never shell out to a real ffmpeg process.
type mapDecoder map[string]types.Audio

func (m mapDecoder) Decode(format string, _ []byte) (types.Audio, error) {
	a, ok := m[format]
	if !ok {
		return types.Audio{}, apperror.Decode("no fixture audio for format %q", format)
	}
	return a, nil
}

func samplesOfLength(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i%7) * 0.1
	}
	return out
}

// Scenario 5: range clipping. A 1000-sample waveform ranged to
// [200.0, 300.5] yields exactly 101 points (indices 200..300 inclusive).
func TestSetIndexRangeClipsWaveform(t *testing.T) {
	rec := useRecordingSink(t)

	dec := mapDecoder{"raw": {Samples: samplesOfLength(1000), SampleRate: 8000}}
	e := NewWithDecoder(engineconfig.Default(), dec)

	require.NoError(t, e.Add("clip", "raw", nil))
	e.SetIndexRange(200.0, 300.5)

	all := rec.lastUpdateAllCharts()
	require.NotEmpty(t, all)
	var audioChart *types.CommunicatorChart
	for i := range all {
		if all[i].Type == types.TypeAudio {
			audioChart = &all[i]
		}
	}
	require.NotNil(t, audioChart)
	assert.Len(t, audioChart.Points, 101)
}

// Scenario 6: toggling a chart's visibility folds/unfolds it into the
// published y-range.
func TestToggleVisibleAffectsYRange(t *testing.T) {
	rec := useRecordingSink(t)

	low := make([]float32, 10)
	for i := range low {
		low[i] = 1.0
	}
	low[0] = 0
	high := make([]float32, 10)
	for i := range high {
		high[i] = 5.0
	}
	high[0] = 0

	dec := mapDecoder{
		"low":  {Samples: low, SampleRate: 8000},
		"high": {Samples: high, SampleRate: 8000},
	}
	e := NewWithDecoder(engineconfig.Default(), dec)

	require.NoError(t, e.Add("a", "low", nil))
	require.NoError(t, e.Add("b", "high", nil))
	assert.Equal(t, float32(5.0), rec.lastYRange()[1])

	require.NoError(t, e.ToggleVisible("b audio"))
	assert.Equal(t, float32(1.0), rec.lastYRange()[1])

	require.NoError(t, e.ToggleVisible("b audio"))
	assert.Equal(t, float32(5.0), rec.lastYRange()[1])
}

func TestAddChartReusesCacheOnSecondCall(t *testing.T) {
	useRecordingSink(t)

	dec := mapDecoder{"raw": {Samples: samplesOfLength(100), SampleRate: 8000}}
	e := NewWithDecoder(engineconfig.Default(), dec)
	require.NoError(t, e.Add("clip", "raw", nil))

	require.NoError(t, e.AddChart("clip", types.TypeEnergy))
	first, err := e.charts.Get("clip", types.TypeEnergy)
	require.NoError(t, err)

	require.NoError(t, e.AddChart("clip", types.TypeEnergy))
	second, err := e.charts.Get("clip", types.TypeEnergy)
	require.NoError(t, err)

	assert.Equal(t, first.Points, second.Points)
}

func TestAddChartAudioWithoutAddIsNotFound(t *testing.T) {
	useRecordingSink(t)

	dec := mapDecoder{}
	e := NewWithDecoder(engineconfig.Default(), dec)

	err := e.AddChart("missing", types.TypeAudio)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestRemoveAudioCascadesCharts(t *testing.T) {
	useRecordingSink(t)

	dec := mapDecoder{"raw": {Samples: samplesOfLength(100), SampleRate: 8000}}
	e := NewWithDecoder(engineconfig.Default(), dec)
	require.NoError(t, e.Add("clip", "raw", nil))
	require.NoError(t, e.AddChart("clip", types.TypeEnergy))

	require.NoError(t, e.RemoveAudio("clip"))

	_, err := e.charts.Get("clip", types.TypeAudio)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	_, err = e.charts.Get("clip", types.TypeEnergy)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestSetIndexRangeTwiceEmitsTwoIdenticalUpdates(t *testing.T) {
	rec := useRecordingSink(t)

	dec := mapDecoder{"raw": {Samples: samplesOfLength(50), SampleRate: 8000}}
	e := NewWithDecoder(engineconfig.Default(), dec)
	require.NoError(t, e.Add("clip", "raw", nil))

	e.SetIndexRange(5, 10)
	e.SetIndexRange(5, 10)

	rec.mu.Lock()
	n := len(rec.updateAllCharts)
	require.GreaterOrEqual(t, n, 2)
	a := rec.updateAllCharts[n-2]
	b := rec.updateAllCharts[n-1]
	rec.mu.Unlock()
	assert.Equal(t, a, b)
}

func TestToggleVisibleInvalidNameFormat(t *testing.T) {
	useRecordingSink(t)

	dec := mapDecoder{}
	e := NewWithDecoder(engineconfig.Default(), dec)

	err := e.ToggleVisible("no-space-here")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInvalidChartName))
}

func TestToggleVisibleUnknownChart(t *testing.T) {
	useRecordingSink(t)

	dec := mapDecoder{"raw": {Samples: samplesOfLength(50), SampleRate: 8000}}
	e := NewWithDecoder(engineconfig.Default(), dec)
	require.NoError(t, e.Add("clip", "raw", nil))

	err := e.ToggleVisible("clip spectrum")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInvalidChartName))
}

func TestGetMaxIndexAdvancesPastSampleCount(t *testing.T) {
	useRecordingSink(t)

	cfg := engineconfig.Config{FrameSize: 512}
	dec := mapDecoder{"raw": {Samples: samplesOfLength(20000), SampleRate: 8000}}
	e := NewWithDecoder(cfg, dec)
	require.NoError(t, e.Add("clip", "raw", nil))

	assert.Greater(t, e.GetMaxIndex(), float32(10000))
}
