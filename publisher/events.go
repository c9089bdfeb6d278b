package publisher

import "github.com/fans963/audioengine/types"

// ChartSink receives chart lifecycle and viewport events for the external
// presentation layer. Implementations must not block meaningfully: the
// engine treats emission as fire-and-forget.
type ChartSink interface {
	AddChart(chart types.CommunicatorChart)
	RemoveChart(key string, dataType types.DataType)
	UpdateAllCharts(charts []types.CommunicatorChart)
	RemoveAllCharts()
	UpdateMaxIndex(maxIndex float32)
	UpdateYRange(minY, maxY float32)
}

// CacheSink receives observability-only events about chart store mutations.
type CacheSink interface {
	ChartUpdated(key string, chart types.Chart)
	ChartRemoved(key string, dataType types.DataType)
}
