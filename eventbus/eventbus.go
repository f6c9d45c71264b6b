package eventbus

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultPoolSize is the number of pool workers used when WithPoolSize is not supplied.
	DefaultPoolSize = 10

	// DefaultQueueCapacity is the task queue size used when WithQueueCapacity is not supplied.
	DefaultQueueCapacity = 256
)

const (
	logMsgHandlerFailed       = "event handler failed"
	logMsgHandlerPanicked     = "event handler panicked"
	logMsgPublishedDeferred   = "event published for deferred dispatch"
	logMsgPublishedAwaited    = "event published for awaited dispatch"
	logMsgAwaitAbandoned      = "awaited dispatch abandoned before all handlers finished"
	logMsgPublishOnClosedBus  = "event published on closed bus, delivery dropped"
	logAttrError              = "error"
	logAttrPanic              = "panic"
	logAttrEventType          = "event_type"
	logAttrDispatchMode       = "dispatch_mode"
	logAttrHandlerCount       = "handler_count"
	logAttrDurationMS         = "duration_ms"
	metricPublishes           = "eventbus_publish_total"
	metricHandlerFailures     = "eventbus_handler_failures_total"
	metricHandlerDuration     = "eventbus_handler_duration_seconds"
	metricQueueDepth          = "eventbus_pool_queue_depth"
	spanNamePublishDeferred   = "eventbus.publish_deferred"
	spanNamePublishAwaited    = "eventbus.publish_awaited"
	spanAttrEventType         = "event_type"
	spanAttrHandlerCount      = "handler_count"
	dispatchModeDeferred      = "deferred"
	dispatchModeAwaited       = "awaited"
	failureReasonHandlerError = "handler_error"
	failureReasonPanic        = "panic"
	statusSuccess             = "success"
	statusAbandoned           = "abandoned"
)

// Event is the minimal contract a publishable domain event must satisfy.
// The returned tag is the dispatch key: handlers registered under exactly
// this tag receive the event, with no supertype or interface matching.
type Event interface {
	IsEventType() string
}

// Handler is the single uniform signature for all subscribers.
// Cooperative handlers observe ctx at their own suspension points; plain
// handlers may ignore it. A returned error (or a panic) is caught at the
// dispatch boundary, logged, and never propagated to the publisher.
type Handler func(ctx context.Context, event Event) error

// EventBus maintains a mapping from exact event-type tag to an ordered list
// of handler registrations and dispatches published events to all matching
// handlers, either fire-and-forget on a bounded worker pool (PublishDeferred)
// or awaited until full fan-out (PublishAwaited).
//
// Registering the same handler twice registers it twice: delivery happens
// per registration, with no deduplication.
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[EventTypeString][]Handler
	closed      bool

	pool          *workerPool
	poolSize      int
	queueCapacity int

	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewEventBus creates a new EventBus with optional configuration and starts
// its worker pool.
func NewEventBus(options ...Option) (*EventBus, error) {
	bus := &EventBus{
		subscribers:   make(map[EventTypeString][]Handler),
		poolSize:      DefaultPoolSize,
		queueCapacity: DefaultQueueCapacity,
	}

	for _, option := range options {
		if err := option(bus); err != nil {
			return nil, err
		}
	}

	bus.pool = newWorkerPool(bus.poolSize, bus.queueCapacity)

	return bus, nil
}

// Subscribe appends the handler to the registration list for the given
// event-type tag. Matching at publish time is by exact tag only.
func (b *EventBus) Subscribe(eventType EventTypeString, handler Handler) error {
	if eventType == "" {
		return ErrEmptyEventTypeSupplied
	}

	if handler == nil {
		return ErrNilHandlerSupplied
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)

	return nil
}

// PublishDeferred submits one independent unit of work per matching
// registration to the worker pool and returns without waiting for any
// handler to finish. Publishing an event with zero subscribers is a no-op.
//
// There is no cancellation handle once submitted, and a delivery still
// queued when the process terminates is permanently lost.
func (b *EventBus) PublishDeferred(event Event) {
	eventType := event.IsEventType()
	handlers, closed := b.snapshotHandlers(eventType)

	if closed {
		b.logWarn(logMsgPublishOnClosedBus, logAttrEventType, eventType)
		return
	}

	ctx, span := b.startPublishSpan(context.Background(), spanNamePublishDeferred, eventType, len(handlers))
	b.recordPublishMetrics(ctx, eventType, dispatchModeDeferred)

	for _, handler := range handlers {
		h := handler
		b.pool.submit(func() {
			b.invoke(ctx, h, event, dispatchModeDeferred)
		})
	}

	b.logDebug(logMsgPublishedDeferred, logAttrEventType, eventType, logAttrHandlerCount, len(handlers))
	b.finishPublishSpan(span, statusSuccess)
}

// PublishAwaited invokes all matching registrations concurrently and waits
// until every handler has been attempted - successfully or with a caught
// failure - before returning. The aggregate result is "all handlers
// attempted", never "all handlers succeeded": per-handler failures are
// logged individually and do not surface here.
//
// When ctx expires before the fan-out completes, the wait returns ctx.Err()
// early. Handlers still running are not stopped; their outcome must be
// treated as unknown, not as failure.
func (b *EventBus) PublishAwaited(ctx context.Context, event Event) error {
	eventType := event.IsEventType()
	handlers, closed := b.snapshotHandlers(eventType)

	if closed {
		b.logWarn(logMsgPublishOnClosedBus, logAttrEventType, eventType)
		return nil
	}

	ctx, span := b.startPublishSpan(ctx, spanNamePublishAwaited, eventType, len(handlers))
	b.recordPublishMetrics(ctx, eventType, dispatchModeAwaited)

	var wg sync.WaitGroup
	wg.Add(len(handlers))

	for _, handler := range handlers {
		h := handler
		submitted := b.pool.submit(func() {
			defer wg.Done()
			b.invoke(ctx, h, event, dispatchModeAwaited)
		})

		if !submitted {
			wg.Done()
		}
	}

	allAttempted := make(chan struct{})
	go func() {
		wg.Wait()
		close(allAttempted)
	}()

	select {
	case <-allAttempted:
		b.logDebug(logMsgPublishedAwaited, logAttrEventType, eventType, logAttrHandlerCount, len(handlers))
		b.finishPublishSpan(span, statusSuccess)

		return nil

	case <-ctx.Done():
		b.logWarn(logMsgAwaitAbandoned, logAttrEventType, eventType, logAttrError, ctx.Err().Error())
		b.finishPublishSpan(span, statusAbandoned)

		return ctx.Err()
	}
}

// Close stops accepting publishes and shuts the worker pool down after the
// already queued deliveries have run.
func (b *EventBus) Close() {
	b.mu.Lock()
	alreadyClosed := b.closed
	b.closed = true
	b.mu.Unlock()

	if alreadyClosed {
		return
	}

	b.pool.stop()
}

// snapshotHandlers copies the registration list for the tag so that dispatch
// never holds the registry lock while handlers run.
func (b *EventBus) snapshotHandlers(eventType EventTypeString) ([]Handler, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil, true
	}

	registered := b.subscribers[eventType]
	handlers := make([]Handler, len(registered))
	copy(handlers, registered)

	return handlers, false
}

// invoke runs a single handler registration as an isolated unit of work:
// a returned error or a panic is caught here and never reaches sibling
// handlers, the pool, or the publisher.
func (b *EventBus) invoke(ctx context.Context, handler Handler, event Event, mode string) {
	eventType := event.IsEventType()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			b.logErrorContext(ctx, logMsgHandlerPanicked,
				logAttrEventType, eventType, logAttrDispatchMode, mode, logAttrPanic, fmt.Sprintf("%v", r))
			b.recordHandlerFailureMetrics(ctx, eventType, mode, failureReasonPanic)
		}
	}()

	err := handler(ctx, event)
	duration := time.Since(start)
	b.recordHandlerDurationMetrics(ctx, eventType, mode, duration)

	if err != nil {
		b.logErrorContext(ctx, logMsgHandlerFailed,
			logAttrEventType, eventType, logAttrDispatchMode, mode,
			logAttrError, err.Error(), logAttrDurationMS, toMilliseconds(duration))
		b.recordHandlerFailureMetrics(ctx, eventType, mode, failureReasonHandlerError)
	}
}
