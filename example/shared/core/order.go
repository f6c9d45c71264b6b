package core

import (
	"time"

	"github.com/google/uuid"
)

// Order is the aggregate root of the order example. It owns its OrderItems
// and its pending-event log exclusively; neither is ever shared across
// aggregate instances. An Order instance is not safe for concurrent use -
// the write side mutates one instance from one goroutine at a time.
type Order struct {
	orderID    OrderIDString
	customerID CustomerIDString
	status     OrderStatus
	items      []OrderItem
	createdAt  time.Time
	updatedAt  time.Time

	// pendingEvents is created per instance in BuildOrder so that events can
	// never leak between unrelated aggregates.
	pendingEvents DomainEvents
}

// BuildOrder creates a new Order in Pending status with a generated order ID.
func BuildOrder(customerID CustomerIDString, now time.Time) *Order {
	createdAt := ToOccurredAt(now)

	return &Order{
		orderID:       uuid.New().String(),
		customerID:    customerID,
		status:        StatusPending,
		items:         make([]OrderItem, 0),
		createdAt:     createdAt,
		updatedAt:     createdAt,
		pendingEvents: make(DomainEvents, 0),
	}
}

// AddItem adds an order line while the order is Pending.
// If the product is already in the order, its quantity is replaced instead
// of appending a duplicate line (upsert semantics).
// Returns ErrOrderNotPending outside Pending status and
// ErrQuantityNotPositive for a non-positive quantity; a failed call leaves
// the item list unchanged.
func (o *Order) AddItem(
	productID ProductIDString,
	productName string,
	unitPrice Money,
	quantity int,
	now time.Time,
) error {

	if o.status != StatusPending {
		return ErrOrderNotPending
	}

	for idx, item := range o.items {
		if item.ProductID() == productID {
			updated, err := item.withQuantity(quantity)
			if err != nil {
				return err
			}

			o.items[idx] = updated
			o.updatedAt = ToOccurredAt(now)

			return nil
		}
	}

	newItem, err := BuildOrderItem(productID, productName, unitPrice, quantity)
	if err != nil {
		return err
	}

	o.items = append(o.items, newItem)
	o.updatedAt = ToOccurredAt(now)

	return nil
}

// RemoveItem removes the line for the given product while the order is
// Pending. Removing an absent product is a no-op and leaves updatedAt
// untouched.
func (o *Order) RemoveItem(productID ProductIDString, now time.Time) error {
	if o.status != StatusPending {
		return ErrOrderNotPending
	}

	remaining := make([]OrderItem, 0, len(o.items))
	for _, item := range o.items {
		if item.ProductID() != productID {
			remaining = append(remaining, item)
		}
	}

	if len(remaining) == len(o.items) {
		return nil
	}

	o.items = remaining
	o.updatedAt = ToOccurredAt(now)

	return nil
}

// Confirm transitions the order from Pending to Confirmed and appends
// exactly one OrderConfirmed event to the pending-event log.
// Returns ErrOrderNotPending outside Pending status and ErrOrderHasNoItems
// for an empty order; a failed call leaves the status unchanged.
func (o *Order) Confirm(now time.Time) error {
	if o.status != StatusPending {
		return ErrOrderNotPending
	}

	if len(o.items) == 0 {
		return ErrOrderHasNoItems
	}

	totalAmount, err := o.TotalAmount()
	if err != nil {
		return err
	}

	confirmedAt := ToOccurredAt(now)
	o.status = StatusConfirmed
	o.updatedAt = confirmedAt

	o.pendingEvents = append(o.pendingEvents, BuildOrderConfirmed(
		o.orderID,
		o.customerID,
		totalAmount,
		confirmedAt,
	))

	return nil
}

// ChangeStatus applies the given status and stamps updatedAt.
// Transition rules beyond Pending -> Confirmed are an extension point and
// not validated here; Confirm is the only transition that emits an event.
func (o *Order) ChangeStatus(newStatus OrderStatus, now time.Time) {
	o.status = newStatus
	o.updatedAt = ToOccurredAt(now)
}

// TotalAmount is the sum of all item total prices, recomputed on demand so
// it can never drift from the item list. Returns ZeroMoney for an empty order.
func (o *Order) TotalAmount() (Money, error) {
	if len(o.items) == 0 {
		return ZeroMoney(), nil
	}

	total, err := o.items[0].TotalPrice()
	if err != nil {
		return Money{}, err
	}

	for _, item := range o.items[1:] {
		itemTotal, totalErr := item.TotalPrice()
		if totalErr != nil {
			return Money{}, totalErr
		}

		total, totalErr = total.Add(itemTotal)
		if totalErr != nil {
			return Money{}, totalErr
		}
	}

	return total, nil
}

// DrainEvents returns the pending events and clears the log. The command
// handler calls this after persisting the aggregate, then publishes the
// returned events - the aggregate never publishes itself.
func (o *Order) DrainEvents() DomainEvents {
	drained := o.pendingEvents
	o.pendingEvents = make(DomainEvents, 0)

	return drained
}

// PendingEvents returns a copy of the not-yet-drained events.
func (o *Order) PendingEvents() DomainEvents {
	pending := make(DomainEvents, len(o.pendingEvents))
	copy(pending, o.pendingEvents)

	return pending
}

// Items returns a copy of the order lines.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)

	return items
}

// OrderID returns the unique identifier assigned at creation.
func (o *Order) OrderID() OrderIDString {
	return o.orderID
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() CustomerIDString {
	return o.customerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() OrderStatus {
	return o.status
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}
