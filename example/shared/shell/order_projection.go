package shell

import (
	"time"

	"github.com/eventflux/domain-eventbus-go/example/shared/core"
)

// OrderProjection is the denormalized read-model record kept per order.
// It is keyed by OrderID, owned exclusively by the projector's event
// callback, and rebuilt wholesale on each relevant event - query callers
// only ever read it.
//
// TotalAmount is kept as a decimal string so the record stays scalar for
// serialization; use TotalMoney to get it back as a value object.
type OrderProjection struct {
	OrderID     core.OrderIDString
	CustomerID  core.CustomerIDString
	TotalAmount string
	Currency    core.CurrencyCodeString
	ConfirmedAt time.Time
	Status      string
}

// TotalMoney converts the stored decimal string back into a Money value.
func (p OrderProjection) TotalMoney() (core.Money, error) {
	return core.MoneyFromString(p.TotalAmount, p.Currency)
}
