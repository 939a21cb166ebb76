package ports

import "time"

// Metrics is the telemetry sink for cache measurements. Recording is purely
// observational; failures to record never affect correctness.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// RecordLatency records one latency observation under the given name.
	RecordLatency(name string, d time.Duration)
}
