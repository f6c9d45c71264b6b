package core

// OrderStatus is the lifecycle status of an Order.
//
// Only the Pending -> Confirmed transition carries validated rules in this
// core (see Order.Confirm). The remaining statuses are declared for the
// commands that will exercise them; no transition table is enforced yet.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPaid      OrderStatus = "paid"
	StatusShipped   OrderStatus = "shipped"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// String returns the status value for logging and projections.
func (s OrderStatus) String() string {
	return string(s)
}
