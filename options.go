package invert

import "log/slog"

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	strictCoverage   bool
}

// Option configures a Resolver.
type Option func(*options)

// WithLogger configures structured logging for resolution.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := invert.NewJSONLogger(slog.LevelDebug)
//	r := invert.NewResolver(invert.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &invert.BasicMetricsCollector{}
//	r := invert.NewResolver(invert.WithMetricsCollector(metrics))
//	// ... resolve ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithStrictCoverage controls whether a sole inverted index must span the
// whole array. It is on by default; turning it off lets a lower-rank
// selector invert only the leading axes and leave the rest to the caller.
func WithStrictCoverage(strict bool) Option {
	return func(o *options) {
		o.strictCoverage = strict
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		strictCoverage:   true,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
