package getorder

import (
	"github.com/eventflux/domain-eventbus-go/example/shared/core"
)

const (
	queryType = "GetOrder"
)

// Query represents the intent to read a single order projection.
type Query struct {
	OrderID core.OrderIDString
}

// BuildQuery creates a new Query with the provided order ID.
func BuildQuery(orderID core.OrderIDString) Query {
	return Query{
		OrderID: orderID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
