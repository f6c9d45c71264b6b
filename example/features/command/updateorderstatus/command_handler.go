package updateorderstatus

import (
	"context"

	"github.com/eventflux/domain-eventbus-go/example/shared/core"
)

// OrderStore defines the interface needed by the CommandHandler for write store operations.
type OrderStore interface {
	Get(orderID core.OrderIDString) (*core.Order, bool)
	Save(order *core.Order)
}

// CommandHandler applies status changes to stored orders.
type CommandHandler struct {
	orders OrderStore
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(orders OrderStore) CommandHandler {
	return CommandHandler{
		orders: orders,
	}
}

// Handle executes the command.
// Returns core.ErrOrderNotFound when the order ID is unknown.
func (h CommandHandler) Handle(_ context.Context, command Command) error {
	order, found := h.orders.Get(command.OrderID)
	if !found {
		return core.ErrOrderNotFound
	}

	order.ChangeStatus(command.NewStatus, command.OccurredAt)
	h.orders.Save(order)

	return nil
}
