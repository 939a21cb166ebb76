// Package telemetry implements the metrics sink using OpenTelemetry.
package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.revet.dev/revet/internal/core/ports"
)

// InstrumentationName identifies this package's meter.
const InstrumentationName = "go.revet.dev/revet/projectcache"

// Recorder implements ports.Metrics as OpenTelemetry histograms, one per
// metric name, created lazily and cached.
type Recorder struct {
	meter metric.Meter
	mu    sync.Mutex
	hists map[string]metric.Float64Histogram
}

// NewRecorder creates a Recorder on the globally registered meter provider.
func NewRecorder() *Recorder {
	return NewRecorderWithMeter(otel.Meter(InstrumentationName))
}

// NewRecorderWithMeter creates a Recorder on a specific meter. Used by tests
// to avoid the global provider.
func NewRecorderWithMeter(meter metric.Meter) *Recorder {
	return &Recorder{
		meter: meter,
		hists: make(map[string]metric.Float64Histogram),
	}
}

var _ ports.Metrics = (*Recorder)(nil)

// RecordLatency records one latency observation in milliseconds. Recording
// is observational only; instrument failures are swallowed.
func (r *Recorder) RecordLatency(name string, d time.Duration) {
	h, err := r.histogram(name)
	if err != nil {
		return
	}
	h.Record(context.Background(), float64(d)/float64(time.Millisecond))
}

func (r *Recorder) histogram(name string) (metric.Float64Histogram, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.hists[name]; ok {
		return h, nil
	}
	h, err := r.meter.Float64Histogram(
		name,
		metric.WithUnit("ms"),
		metric.WithDescription("latency of "+name),
	)
	if err != nil {
		return nil, err
	}
	r.hists[name] = h
	return h, nil
}
