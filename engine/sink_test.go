package engine

import (
	"sync"

	"github.com/fans963/audioengine/publisher"
	"github.com/fans963/audioengine/types"
)

// Only the first call to publisher.InstallChartEventSink/InstallCacheEventSink
// in a process takes effect, so every test in this package routes through one
// process-wide forwarding sink installed once and retargeted per test.

type recordingChartSink struct {
	mu              sync.Mutex
	addChart        []types.CommunicatorChart
	removeChart     []string
	updateAllCharts [][]types.CommunicatorChart
	removeAllCalls  int
	maxIndex        []float32
	yRanges         [][2]float32
}

func (r *recordingChartSink) AddChart(chart types.CommunicatorChart) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addChart = append(r.addChart, chart)
}

func (r *recordingChartSink) RemoveChart(key string, dataType types.DataType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeChart = append(r.removeChart, key+" "+string(dataType))
}

func (r *recordingChartSink) UpdateAllCharts(charts []types.CommunicatorChart) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateAllCharts = append(r.updateAllCharts, charts)
}

func (r *recordingChartSink) RemoveAllCharts() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeAllCalls++
}

func (r *recordingChartSink) UpdateMaxIndex(maxIndex float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.maxIndex = append(r.maxIndex, maxIndex)
}

func (r *recordingChartSink) UpdateYRange(minY, maxY float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.yRanges = append(r.yRanges, [2]float32{minY, maxY})
}

func (r *recordingChartSink) lastYRange() [2]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.yRanges) == 0 {
		return [2]float32{}
	}
	return r.yRanges[len(r.yRanges)-1]
}

func (r *recordingChartSink) lastUpdateAllCharts() []types.CommunicatorChart {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.updateAllCharts) == 0 {
		return nil
	}
	return r.updateAllCharts[len(r.updateAllCharts)-1]
}

// chartSinkRouter is the single process-wide sink installed via init; it
// forwards every call to whatever target each test assigned it.
type chartSinkRouter struct {
	mu     sync.Mutex
	target publisher.ChartSink
}

func (r *chartSinkRouter) current() publisher.ChartSink {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target
}

func (r *chartSinkRouter) set(target publisher.ChartSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = target
}

func (r *chartSinkRouter) AddChart(chart types.CommunicatorChart) {
	if t := r.current(); t != nil {
		t.AddChart(chart)
	}
}

func (r *chartSinkRouter) RemoveChart(key string, dataType types.DataType) {
	if t := r.current(); t != nil {
		t.RemoveChart(key, dataType)
	}
}

func (r *chartSinkRouter) UpdateAllCharts(charts []types.CommunicatorChart) {
	if t := r.current(); t != nil {
		t.UpdateAllCharts(charts)
	}
}

func (r *chartSinkRouter) RemoveAllCharts() {
	if t := r.current(); t != nil {
		t.RemoveAllCharts()
	}
}

func (r *chartSinkRouter) UpdateMaxIndex(maxIndex float32) {
	if t := r.current(); t != nil {
		t.UpdateMaxIndex(maxIndex)
	}
}

func (r *chartSinkRouter) UpdateYRange(minY, maxY float32) {
	if t := r.current(); t != nil {
		t.UpdateYRange(minY, maxY)
	}
}

var testChartRouter = &chartSinkRouter{}

func init() {
	publisher.InstallChartEventSink(testChartRouter)
}

// useRecordingSink installs a fresh recorder as the router's target for the
// duration of one test and restores nil afterwards.
func useRecordingSink(t interface{ Cleanup(func()) }) *recordingChartSink {
	rec := &recordingChartSink{}
	testChartRouter.set(rec)
	t.Cleanup(func() { testChartRouter.set(nil) })
	return rec
}
