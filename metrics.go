package invert

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting resolver metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordResolve is called after each Resolve call.
	// args is the argument count, err is nil if successful.
	RecordResolve(args int, duration time.Duration, err error)

	// RecordSelection is called for each inverted index that resolved,
	// with the pick domain size and the normalized skip count.
	RecordSelection(picks, skips int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordResolve(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSelection(int, int)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	ResolveCount      atomic.Int64
	ResolveErrors     atomic.Int64
	ResolveTotalNanos atomic.Int64
	ArgCount          atomic.Int64
	SelectionCount    atomic.Int64
	PickCount         atomic.Int64
	SkipCount         atomic.Int64
}

// RecordResolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResolve(args int, duration time.Duration, err error) {
	b.ResolveCount.Add(1)
	b.ArgCount.Add(int64(args))
	b.ResolveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ResolveErrors.Add(1)
	}
}

// RecordSelection implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelection(picks, skips int) {
	b.SelectionCount.Add(1)
	b.PickCount.Add(int64(picks))
	b.SkipCount.Add(int64(skips))
}

// MetricsStats is a snapshot of BasicMetricsCollector counters.
type MetricsStats struct {
	ResolveCount       int64
	ResolveErrors      int64
	AvgResolveDuration time.Duration
	SelectionCount     int64
	PickCount          int64
	SkipCount          int64
}

// GetStats returns current metrics statistics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	count := b.ResolveCount.Load()
	var avg time.Duration
	if count > 0 {
		avg = time.Duration(b.ResolveTotalNanos.Load() / count)
	}
	return MetricsStats{
		ResolveCount:       count,
		ResolveErrors:      b.ResolveErrors.Load(),
		AvgResolveDuration: avg,
		SelectionCount:     b.SelectionCount.Load(),
		PickCount:          b.PickCount.Load(),
		SkipCount:          b.SkipCount.Load(),
	}
}

// Reset resets all metrics to zero.
func (b *BasicMetricsCollector) Reset() {
	b.ResolveCount.Store(0)
	b.ResolveErrors.Store(0)
	b.ResolveTotalNanos.Store(0)
	b.ArgCount.Store(0)
	b.SelectionCount.Store(0)
	b.PickCount.Store(0)
	b.SkipCount.Store(0)
}
