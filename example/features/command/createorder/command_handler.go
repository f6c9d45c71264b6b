package createorder

import (
	"context"

	"github.com/eventflux/domain-eventbus-go/eventbus"
	"github.com/eventflux/domain-eventbus-go/example/shared/core"
)

// OrderStore defines the interface needed by the CommandHandler for write store operations.
type OrderStore interface {
	Save(order *core.Order)
}

// EventPublisher defines the interface needed by the CommandHandler to publish domain events.
type EventPublisher interface {
	PublishDeferred(event eventbus.Event)
}

// CommandHandler orchestrates the complete command processing workflow:
// Build -> AddItem -> Confirm -> Save -> Publish.
// Business rules live in the Order aggregate; the handler only sequences
// the steps and hands the drained events to the bus.
type CommandHandler struct {
	orders    OrderStore
	publisher EventPublisher
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(orders OrderStore, publisher EventPublisher) CommandHandler {
	return CommandHandler{
		orders:    orders,
		publisher: publisher,
	}
}

// Handle executes the command and returns the new order's ID.
// When any item is rejected or the order cannot be confirmed, the error is
// returned verbatim and the write store stays untouched.
// Events are published after the aggregate is persisted, fire-and-forget.
func (h CommandHandler) Handle(_ context.Context, command Command) (core.OrderIDString, error) {
	order := core.BuildOrder(command.CustomerID, command.OccurredAt)

	for _, item := range command.Items {
		addErr := order.AddItem(item.ProductID, item.ProductName, item.UnitPrice, item.Quantity, command.OccurredAt)
		if addErr != nil {
			return "", addErr
		}
	}

	if confirmErr := order.Confirm(command.OccurredAt); confirmErr != nil {
		return "", confirmErr
	}

	h.orders.Save(order)

	for _, event := range order.DrainEvents() {
		h.publisher.PublishDeferred(event)
	}

	return order.OrderID(), nil
}
