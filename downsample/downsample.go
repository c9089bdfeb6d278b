// Package downsample reduces a chart's point count while preserving the
// visual extrema (or, for the equal-step alternative, a uniform stride)
// needed to keep a plotted silhouette faithful at low resolution.
package downsample

import "github.com/fans963/audioengine/types"

// DownSampler reduces chart to at most target points (plus up to 2 for
// endpoint preservation), preserving DataType, MinY, MaxY, and the shared
// Visible handle.
type DownSampler interface {
	DownSample(chart types.Chart, target int) types.Chart
}
