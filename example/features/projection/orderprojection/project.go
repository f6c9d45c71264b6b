package orderprojection

import (
	"github.com/eventflux/domain-eventbus-go/example/shared/core"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell"
)

// ProjectionFromOrderConfirmed builds the read-model record for a confirmed
// order. This is a pure function with no side effects - every field of the
// projection is derived from the event alone.
func ProjectionFromOrderConfirmed(event core.OrderConfirmed) shell.OrderProjection {
	return shell.OrderProjection{
		OrderID:     event.OrderID,
		CustomerID:  event.CustomerID,
		TotalAmount: event.TotalAmount.Amount().String(),
		Currency:    event.TotalAmount.Currency(),
		ConfirmedAt: event.ConfirmedAt,
		Status:      core.StatusConfirmed.String(),
	}
}
