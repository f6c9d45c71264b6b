package getcustomerorders

import (
	"github.com/eventflux/domain-eventbus-go/example/shared/core"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell"
)

// CustomerOrders represents the query result containing one page of a
// customer's order projections.
type CustomerOrders struct {
	CustomerID core.CustomerIDString
	Orders     []shell.OrderProjection
	Page       int
	Size       int
	Count      int
}
