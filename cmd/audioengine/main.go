// Command audioengine is a minimal CLI driver around the audio analysis
// engine. It stands in for the FFI binding layer spec.md treats as out of
// scope: it loads one file from disk as the "encoded blob" input, wires a
// stdout-printing sink for both event channels, and drives add/add_chart/
// viewport operations end-to-end.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fans963/audioengine/engine"
	"github.com/fans963/audioengine/engineconfig"
	"github.com/fans963/audioengine/publisher"
	"github.com/fans963/audioengine/types"
)

type options struct {
	InputFile  *string
	FrameSize  *int
	DownSample *int
	RangeStart *float64
	RangeEnd   *float64
	ChartKinds *string
}

func main() {
	opts := &options{}
	opts.InputFile = flag.String("input", "", "path to an encoded audio file to load")
	opts.FrameSize = flag.Int("frame-size", engineconfig.DefaultFrameSize, "frame size for framed transforms")
	opts.DownSample = flag.Int("down-sample-points", 500, "target point count for viewport emissions")
	opts.RangeStart = flag.Float64("range-start", 0, "visible index range start")
	opts.RangeEnd = flag.Float64("range-end", 10000, "visible index range end")
	opts.ChartKinds = flag.String("charts", "spectrum,energy,zeroCrossingRate", "comma-separated derived chart kinds to add")
	flag.Parse()

	if *opts.InputFile == "" {
		log.Fatalf("missing -input file")
	}

	publisher.InstallChartEventSink(stdoutChartSink{})
	publisher.InstallCacheEventSink(stdoutCacheSink{})

	eng := engine.New(engineconfig.Config{FrameSize: *opts.FrameSize})

	data, err := os.ReadFile(*opts.InputFile)
	if err != nil {
		log.Fatalf("reading input file: %v", err)
	}
	format := strings.TrimPrefix(filepath.Ext(*opts.InputFile), ".")
	key := *opts.InputFile

	log.Printf("Adding %s (format=%s, %d bytes)", key, format, len(data))
	if err := eng.Add(key, format, data); err != nil {
		log.Fatalf("add failed: %v", err)
	}

	eng.SetDownSamplePointsNum(*opts.DownSample)
	eng.SetIndexRange(float32(*opts.RangeStart), float32(*opts.RangeEnd))

	for _, kind := range strings.Split(*opts.ChartKinds, ",") {
		kind = strings.TrimSpace(kind)
		if kind == "" {
			continue
		}
		dataType, ok := types.ParseDataType(kind)
		if !ok {
			log.Printf("skipping unknown chart kind %q", kind)
			continue
		}
		if err := eng.AddChart(key, dataType); err != nil {
			log.Printf("add_chart(%s, %s) failed: %v", key, dataType, err)
		}
	}

	log.Printf("max_index = %v", eng.GetMaxIndex())
}

type stdoutChartSink struct{}

func (stdoutChartSink) AddChart(chart types.CommunicatorChart) {
	fmt.Printf("AddChart key=%s type=%s points=%d\n", chart.Key, chart.Type, len(chart.Points))
}

func (stdoutChartSink) RemoveChart(key string, dataType types.DataType) {
	fmt.Printf("RemoveChart key=%s type=%s\n", key, dataType)
}

func (stdoutChartSink) UpdateAllCharts(charts []types.CommunicatorChart) {
	fmt.Printf("UpdateAllCharts count=%d\n", len(charts))
}

func (stdoutChartSink) RemoveAllCharts() {
	fmt.Println("RemoveAllCharts")
}

func (stdoutChartSink) UpdateMaxIndex(maxIndex float32) {
	fmt.Printf("UpdateMaxIndex max_index=%v\n", maxIndex)
}

func (stdoutChartSink) UpdateYRange(minY, maxY float32) {
	fmt.Printf("UpdateYRange min_y=%v max_y=%v\n", minY, maxY)
}

type stdoutCacheSink struct{}

func (stdoutCacheSink) ChartUpdated(key string, chart types.Chart) {
	fmt.Printf("ChartUpdated key=%s type=%s points=%d\n", key, chart.Type, len(chart.Points))
}

func (stdoutCacheSink) ChartRemoved(key string, dataType types.DataType) {
	fmt.Printf("ChartRemoved key=%s type=%s\n", key, dataType)
}
