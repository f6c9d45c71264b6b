package core

import (
	"time"
)

// OrderConfirmedEventType is the event type identifier.
const OrderConfirmedEventType = "OrderConfirmed"

// OrderConfirmed represents when an order was confirmed by its customer.
type OrderConfirmed struct {
	EventType   EventTypeString
	OrderID     OrderIDString
	CustomerID  CustomerIDString
	TotalAmount Money
	ConfirmedAt OccurredAtTS
}

// BuildOrderConfirmed creates a new OrderConfirmed event.
func BuildOrderConfirmed(
	orderID OrderIDString,
	customerID CustomerIDString,
	totalAmount Money,
	confirmedAt time.Time,
) OrderConfirmed {

	event := OrderConfirmed{
		EventType:   OrderConfirmedEventType,
		OrderID:     orderID,
		CustomerID:  customerID,
		TotalAmount: totalAmount,
		ConfirmedAt: ToOccurredAt(confirmedAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e OrderConfirmed) IsEventType() string {
	return OrderConfirmedEventType
}

// HasOccurredAt returns when this event occurred.
func (e OrderConfirmed) HasOccurredAt() time.Time {
	return e.ConfirmedAt
}
