package eventbus

// Option defines a functional option for configuring EventBus.
type Option func(*EventBus) error

// WithPoolSize sets the number of workers executing handler invocations.
// The pool is bounded and fixed for the lifetime of the bus.
func WithPoolSize(size int) Option {
	return func(b *EventBus) error {
		if size <= 0 {
			return ErrInvalidPoolSize
		}

		b.poolSize = size

		return nil
	}
}

// WithQueueCapacity sets the capacity of the task queue in front of the
// worker pool. Publish calls block while the queue is full.
func WithQueueCapacity(capacity int) Option {
	return func(b *EventBus) error {
		if capacity < 0 {
			return ErrInvalidQueueCapacity
		}

		b.queueCapacity = capacity

		return nil
	}
}

// WithLogger sets the logger for the EventBus.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: per-publish dispatch information (development use)
// Warn level: publishes on a closed bus, awaited dispatches abandoned by deadline
// Error level: handler failures and panics caught at the dispatch boundary.
func WithLogger(logger Logger) Option {
	return func(b *EventBus) error {
		b.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the EventBus.
// The contextual logger will receive log messages with context information including
// automatic trace/span correlation when tracing is enabled, enabling unified observability.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(b *EventBus) error {
		b.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the EventBus.
// The metrics collector will receive publish counts, per-handler invocation
// durations, handler failure counts, and the pool queue depth.
func WithMetrics(collector MetricsCollector) Option {
	return func(b *EventBus) error {
		b.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the EventBus.
// The tracing collector will receive one span per publish operation with
// event type and handler count attributes.
func WithTracing(collector TracingCollector) Option {
	return func(b *EventBus) error {
		b.tracingCollector = collector
		return nil
	}
}
