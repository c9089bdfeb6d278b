package publisher

import "github.com/fans963/audioengine/types"

// Publisher is the engine's fire-and-forget emitter onto the process-wide
// chart sink. It never blocks the caller and never fails visibly: if no
// sink has been installed yet, every call below is a silent no-op.
type Publisher struct{}

func NewPublisher() *Publisher { return &Publisher{} }

func (p *Publisher) AddChart(chart types.CommunicatorChart) {
	if sink, ok := chartCell.Get(); ok {
		sink.AddChart(chart)
	}
}

func (p *Publisher) RemoveChart(key string, dataType types.DataType) {
	if sink, ok := chartCell.Get(); ok {
		sink.RemoveChart(key, dataType)
	}
}

func (p *Publisher) UpdateAllCharts(charts []types.CommunicatorChart) {
	if sink, ok := chartCell.Get(); ok {
		sink.UpdateAllCharts(charts)
	}
}

func (p *Publisher) UpdateMaxIndex(maxIndex float32) {
	if sink, ok := chartCell.Get(); ok {
		sink.UpdateMaxIndex(maxIndex)
	}
}

func (p *Publisher) UpdateYRange(minY, maxY float32) {
	if sink, ok := chartCell.Get(); ok {
		sink.UpdateYRange(minY, maxY)
	}
}

// CachePublisher is the observability-only emitter onto the process-wide
// cache sink, used by the chart store to report its own mutations.
type CachePublisher struct{}

func NewCachePublisher() *CachePublisher { return &CachePublisher{} }

func (p *CachePublisher) ChartUpdated(key string, chart types.Chart) {
	if sink, ok := cacheCell.Get(); ok {
		sink.ChartUpdated(key, chart)
	}
}

func (p *CachePublisher) ChartRemoved(key string, dataType types.DataType) {
	if sink, ok := cacheCell.Get(); ok {
		sink.ChartRemoved(key, dataType)
	}
}
