package orderprojection

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventflux/domain-eventbus-go/eventbus"
	"github.com/eventflux/domain-eventbus-go/example/shared/core"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell/projectionstore"
)

// ErrUnexpectedEventType is returned when a subscribed callback receives an
// event of a type it did not register for.
var ErrUnexpectedEventType = errors.New("unexpected event type")

// EventSubscriber defines the interface needed by the Projector to register its callbacks.
type EventSubscriber interface {
	Subscribe(eventType eventbus.EventTypeString, handler eventbus.Handler) error
}

// Projector owns the order read model. All writes to the projection store
// go through its event callbacks; query handlers only read.
type Projector struct {
	projections projectionstore.Store
}

// NewProjector creates a Projector and subscribes it to OrderConfirmed events.
func NewProjector(bus EventSubscriber, projections projectionstore.Store) (*Projector, error) {
	projector := &Projector{
		projections: projections,
	}

	if err := bus.Subscribe(core.OrderConfirmedEventType, projector.handleOrderConfirmed); err != nil {
		return nil, err
	}

	return projector, nil
}

func (p *Projector) handleOrderConfirmed(ctx context.Context, event eventbus.Event) error {
	confirmed, ok := event.(core.OrderConfirmed)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedEventType, event)
	}

	return p.projections.Save(ctx, ProjectionFromOrderConfirmed(confirmed))
}
