package eventbus

import (
	"context"
	"fmt"
	"math"
	"time"
)

// logDebug logs dispatch information at debug level if a logger is configured.
func (b *EventBus) logDebug(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Debug(msg, args...)
	}
}

// logWarn logs non-critical issues at warn level if a logger is configured.
func (b *EventBus) logWarn(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Warn(msg, args...)
	}
}

// logErrorContext logs handler failures, preferring the contextual logger for
// trace correlation and falling back to the plain logger.
func (b *EventBus) logErrorContext(ctx context.Context, msg string, args ...any) {
	if b.contextualLogger != nil {
		b.contextualLogger.ErrorContext(ctx, msg, args...)
		return
	}

	if b.logger != nil {
		b.logger.Error(msg, args...)
	}
}

// recordPublishMetrics counts a publish operation and samples the pool queue depth.
func (b *EventBus) recordPublishMetrics(ctx context.Context, eventType string, mode string) {
	if b.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		logAttrEventType:    eventType,
		logAttrDispatchMode: mode,
	}

	if contextualCollector, ok := b.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricPublishes, labels)
		contextualCollector.RecordValueContext(ctx, metricQueueDepth, float64(b.pool.queueDepth()), nil)
	} else {
		b.metricsCollector.IncrementCounter(metricPublishes, labels)
		b.metricsCollector.RecordValue(metricQueueDepth, float64(b.pool.queueDepth()), nil)
	}
}

// recordHandlerDurationMetrics records how long a single handler invocation took.
func (b *EventBus) recordHandlerDurationMetrics(ctx context.Context, eventType string, mode string, duration time.Duration) {
	if b.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		logAttrEventType:    eventType,
		logAttrDispatchMode: mode,
	}

	if contextualCollector, ok := b.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricHandlerDuration, duration, labels)
	} else {
		b.metricsCollector.RecordDuration(metricHandlerDuration, duration, labels)
	}
}

// recordHandlerFailureMetrics counts a caught handler failure.
func (b *EventBus) recordHandlerFailureMetrics(ctx context.Context, eventType string, mode string, reason string) {
	if b.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		logAttrEventType:    eventType,
		logAttrDispatchMode: mode,
		"reason":            reason,
	}

	if contextualCollector, ok := b.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricHandlerFailures, labels)
	} else {
		b.metricsCollector.IncrementCounter(metricHandlerFailures, labels)
	}
}

// startPublishSpan starts a tracing span for a publish operation if a tracing collector is configured.
func (b *EventBus) startPublishSpan(
	ctx context.Context,
	spanName string,
	eventType string,
	handlerCount int,
) (context.Context, SpanContext) {
	if b.tracingCollector == nil {
		return ctx, nil
	}

	spanAttrs := map[string]string{
		spanAttrEventType:    eventType,
		spanAttrHandlerCount: fmt.Sprintf("%d", handlerCount),
	}

	return b.tracingCollector.StartSpan(ctx, spanName, spanAttrs)
}

// finishPublishSpan finishes a publish span if one was started.
func (b *EventBus) finishPublishSpan(span SpanContext, status string) {
	if b.tracingCollector != nil && span != nil {
		b.tracingCollector.FinishSpan(span, status, nil)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
