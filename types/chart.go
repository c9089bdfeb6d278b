package types

import (
	"sort"
	"sync/atomic"
)

// Chart is a named analytical series derived from one source audio. Points
// is shared by reference across the cache, range slices, and down-sampled
// emissions; callers must never mutate it after construction. Visible is a
// pointer so range-selected and down-sampled derivatives of the same chart
// continue to observe toggles against the original.
type Chart struct {
	Type    DataType
	Points  []Point
	MinY    float32
	MaxY    float32
	Visible *atomic.Bool
}

// NewChart builds a chart with a fresh, default-visible flag.
func NewChart(dataType DataType, points []Point, minY, maxY float32) Chart {
	v := &atomic.Bool{}
	v.Store(true)
	return Chart{Type: dataType, Points: points, MinY: minY, MaxY: maxY, Visible: v}
}

// IsVisible reports the chart's current visibility with relaxed semantics;
// it is an advisory flag, not a synchronization primitive.
func (c Chart) IsVisible() bool {
	if c.Visible == nil {
		return true
	}
	return c.Visible.Load()
}

// GetRange returns a new chart containing only points with startX <= x <=
// endX. min_y, max_y, data_type, and the shared visible handle are
// preserved. Points is sorted by X, so the bounds are found by binary
// search rather than a linear scan.
func (c Chart) GetRange(startX, endX float32) Chart {
	n := len(c.Points)
	start := sort.Search(n, func(i int) bool { return c.Points[i].X >= startX })
	end := sort.Search(n, func(i int) bool { return c.Points[i].X > endX })
	if end < start {
		end = start
	}
	return Chart{
		Type:    c.Type,
		Points:  c.Points[start:end],
		MinY:    c.MinY,
		MaxY:    c.MaxY,
		Visible: c.Visible,
	}
}

// CommunicatorChart is the wire shape published to the external
// presentation layer: a chart plus the cache key it belongs to.
type CommunicatorChart struct {
	Key    string
	Type   DataType
	Points []Point
}

// ToCommunicatorChart projects a Chart into its published form.
func (c Chart) ToCommunicatorChart(key string) CommunicatorChart {
	return CommunicatorChart{Key: key, Type: c.Type, Points: c.Points}
}
