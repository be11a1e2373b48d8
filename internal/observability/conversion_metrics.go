package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricFilesTotal     = "pyconv.convert.files.total"
	metricNodesTotal     = "pyconv.convert.nodes.total"
	metricRulesTotal     = "pyconv.convert.rule.applications.total"
	metricFailuresTotal  = "pyconv.convert.failures.total"
	metricFileDuration   = "pyconv.convert.file.duration.seconds"
	metricBytesTotal     = "pyconv.convert.bytes.total"
	metricCacheHitsTotal = "pyconv.cache.hits.total"
	metricCacheMisses    = "pyconv.cache.misses.total"

	attrRule      = "rule"
	attrClass     = "class"
	attrDirection = "direction"
)

// ConversionMetrics holds the instruments of tree conversions.
type ConversionMetrics struct {
	files        metric.Int64Counter
	nodes        metric.Int64Counter
	rules        metric.Int64Counter
	failures     metric.Int64Counter
	fileDuration metric.Float64Histogram
	bytes        metric.Int64Counter
	cacheHits    metric.Int64Counter
	cacheMisses  metric.Int64Counter
}

// FileStats describes one converted document.
type FileStats struct {
	Nodes       int
	Rules       map[string]int
	InputBytes  int
	OutputBytes int
	Seconds     float64
	Cached      bool
	// FailureClass is empty on success, otherwise "malformed",
	// "unsupported" or "other".
	FailureClass string
}

// NewConversionMetrics creates the instruments on mt.
func NewConversionMetrics(mt metric.Meter) (*ConversionMetrics, error) {
	b := newMetricBuilder(mt)

	cm := &ConversionMetrics{
		files:        b.counter(metricFilesTotal, "Documents processed", "{file}"),
		nodes:        b.counter(metricNodesTotal, "Modern nodes produced", "{node}"),
		rules:        b.counter(metricRulesTotal, "Rewrite rule applications by rule", "{application}"),
		failures:     b.counter(metricFailuresTotal, "Failed conversions by error class", "{file}"),
		fileDuration: b.histogram(metricFileDuration, "Per-document conversion time", "s", durationBuckets...),
		bytes:        b.counter(metricBytesTotal, "Document bytes read and written", "By"),
		cacheHits:    b.counter(metricCacheHitsTotal, "Result cache hits", "{hit}"),
		cacheMisses:  b.counter(metricCacheMisses, "Result cache misses", "{miss}"),
	}

	if b.err != nil {
		return nil, b.err
	}

	return cm, nil
}

// RecordFile records one document. Safe on a nil receiver.
func (cm *ConversionMetrics) RecordFile(ctx context.Context, fs FileStats) {
	if cm == nil {
		return
	}

	status := StatusOK
	if fs.FailureClass != "" {
		status = StatusError
		cm.failures.Add(ctx, 1, metric.WithAttributes(attribute.String(attrClass, fs.FailureClass)))
	}

	cm.files.Add(ctx, 1, metric.WithAttributes(attribute.String(attrStatus, status)))
	cm.fileDuration.Record(ctx, fs.Seconds, metric.WithAttributes(attribute.String(attrStatus, status)))
	cm.bytes.Add(ctx, int64(fs.InputBytes), metric.WithAttributes(attribute.String(attrDirection, "in")))

	if status == StatusOK {
		cm.nodes.Add(ctx, int64(fs.Nodes))
		cm.bytes.Add(ctx, int64(fs.OutputBytes), metric.WithAttributes(attribute.String(attrDirection, "out")))
	}

	for rule, n := range fs.Rules {
		cm.rules.Add(ctx, int64(n), metric.WithAttributes(attribute.String(attrRule, rule)))
	}
}

// RecordCache records one cache lookup. Safe on a nil receiver.
func (cm *ConversionMetrics) RecordCache(ctx context.Context, hit bool) {
	if cm == nil {
		return
	}

	if hit {
		cm.cacheHits.Add(ctx, 1)

		return
	}

	cm.cacheMisses.Add(ctx, 1)
}
