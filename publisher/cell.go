package publisher

import "sync/atomic"

// cell is a write-once, lock-free-after-bind holder for a sink. The first
// Install wins; later calls are no-ops. Emissions before Install are
// dropped silently, matching the fire-and-forget contract: the publisher
// never blocks the caller and never fails visibly.
type cell[T any] struct {
	ptr atomic.Pointer[T]
}

func (c *cell[T]) Install(v T) {
	c.ptr.CompareAndSwap(nil, &v)
}

func (c *cell[T]) Get() (T, bool) {
	p := c.ptr.Load()
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

var (
	chartCell cell[ChartSink]
	cacheCell cell[CacheSink]
)

// InstallChartEventSink binds the process-wide chart event sink. Only the
// first call has any effect.
func InstallChartEventSink(sink ChartSink) {
	chartCell.Install(sink)
}

// InstallCacheEventSink binds the process-wide cache event sink. Only the
// first call has any effect.
func InstallCacheEventSink(sink CacheSink) {
	cacheCell.Install(sink)
}
