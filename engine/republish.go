package engine

import "github.com/fans963/audioengine/types"

// republishAllLocked re-derives and re-emits every cached chart at the
// current viewport. Called after any viewport mutation (set_index_range,
// set_down_sample_points_num, set_config, toggle_visible). Must be called
// with e.mu held.
func (e *Engine) republishAllLocked() {
	e.yRangeMin = defaultYRangeMin
	e.yRangeMax = defaultYRangeMax
	e.maxIndex = defaultMaxIndex

	entries := e.charts.GetAll()

	for _, entry := range entries {
		if entry.Chart.IsVisible() {
			e.foldYRangeLocked(entry.Chart)
			e.advanceMaxIndexLocked(entry.Chart)
		}
	}

	derived := make([]types.CommunicatorChart, 0, len(entries))
	for _, entry := range entries {
		visible := entry.Chart.GetRange(e.indexRangeStart, e.indexRangeEnd)
		downsampled := e.downSampler.DownSample(visible, e.downSamplePointsNum)
		derived = append(derived, downsampled.ToCommunicatorChart(entry.Key))
	}

	e.pub.UpdateAllCharts(derived)
	e.pub.UpdateMaxIndex(e.maxIndex)
	e.pub.UpdateYRange(e.yRangeMin, e.yRangeMax)
}
