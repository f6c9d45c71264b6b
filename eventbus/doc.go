// Package eventbus provides an in-process domain-event bus with two dispatch
// strategies: fire-and-forget dispatch on a bounded worker pool and fully
// awaited fan-out.
//
// The bus is completely agnostic of the client code's domain events: it
// dispatches on the event-type tag returned by Event.IsEventType, using an
// explicit dispatch table instead of reflection-based type lookup.
//
// Key types:
//   - EventBus: subscriber registry plus the two publish operations
//   - Event: the minimal contract a publishable event must satisfy
//   - Handler: the single uniform handler signature for plain and
//     cooperative (context-aware) subscribers
//
// Delivery guarantees are deliberately weak: at-least-once per
// (event, registration) pair per publish call, no ordering across handlers
// or across publishes, no durability and no redelivery. A handler failure is
// caught at the dispatch boundary, logged, and lost - there is no retry.
//
// Common usage pattern:
//
//	bus, err := eventbus.NewEventBus(eventbus.WithPoolSize(10))
//	if err != nil {
//		// handle error
//	}
//	defer bus.Close()
//
//	_ = bus.Subscribe(core.OrderConfirmedEventType, func(ctx context.Context, e eventbus.Event) error {
//		// update a projection, send a notification, ...
//		return nil
//	})
//
//	bus.PublishDeferred(event)                 // returns immediately
//	err = bus.PublishAwaited(ctx, event)       // waits for full fan-out
package eventbus
