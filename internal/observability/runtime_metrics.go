package observability

import (
	"context"
	"fmt"
	"math"
	runtimemetrics "runtime/metrics"

	"go.opentelemetry.io/otel/metric"
)

const (
	metricGoroutines = "pyconv.runtime.goroutines"
	metricHeapBytes  = "pyconv.runtime.heap.bytes"
	metricHeapAllocs = "pyconv.runtime.heap.allocs.bytes"

	sampleGoroutines = "/sched/goroutines:goroutines"
	sampleHeapBytes  = "/memory/classes/heap/objects:bytes"
	sampleHeapAllocs = "/gc/heap/allocs:bytes"
)

// RuntimeMetrics reports goroutine and heap figures from runtime/metrics on
// every collection.
type RuntimeMetrics struct {
	goroutines metric.Int64ObservableGauge
	heapBytes  metric.Int64ObservableGauge
	heapAllocs metric.Int64ObservableCounter
}

// NewRuntimeMetrics registers the instruments and their callback on mt.
func NewRuntimeMetrics(mt metric.Meter) (*RuntimeMetrics, error) {
	b := newMetricBuilder(mt)

	rm := &RuntimeMetrics{
		goroutines: b.gauge(metricGoroutines, "Live goroutines", "{goroutine}"),
		heapBytes:  b.gauge(metricHeapBytes, "Heap memory occupied by live and unswept objects", "By"),
		heapAllocs: b.observableCounter(metricHeapAllocs, "Cumulative heap allocations", "By"),
	}

	if b.err != nil {
		return nil, b.err
	}

	_, err := mt.RegisterCallback(rm.observe, rm.goroutines, rm.heapBytes, rm.heapAllocs)
	if err != nil {
		return nil, fmt.Errorf("register runtime metrics callback: %w", err)
	}

	return rm, nil
}

func (rm *RuntimeMetrics) observe(_ context.Context, obs metric.Observer) error {
	samples := []runtimemetrics.Sample{
		{Name: sampleGoroutines},
		{Name: sampleHeapBytes},
		{Name: sampleHeapAllocs},
	}

	runtimemetrics.Read(samples)

	for i := range samples {
		val, ok := sampleInt64(samples[i].Value)
		if !ok {
			continue
		}

		switch samples[i].Name {
		case sampleGoroutines:
			obs.ObserveInt64(rm.goroutines, val)
		case sampleHeapBytes:
			obs.ObserveInt64(rm.heapBytes, val)
		case sampleHeapAllocs:
			obs.ObserveInt64(rm.heapAllocs, val)
		}
	}

	return nil
}

// sampleInt64 reads a scalar runtime/metrics value; unsupported samples
// report KindBad and are skipped.
func sampleInt64(val runtimemetrics.Value) (int64, bool) {
	switch val.Kind() {
	case runtimemetrics.KindUint64:
		u := val.Uint64()
		if u > math.MaxInt64 {
			return math.MaxInt64, true
		}

		return int64(u), true
	case runtimemetrics.KindFloat64:
		return int64(val.Float64()), true
	case runtimemetrics.KindBad, runtimemetrics.KindFloat64Histogram:
		return 0, false
	default:
		return 0, false
	}
}
