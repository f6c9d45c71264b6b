package getcustomerorders

import (
	"github.com/eventflux/domain-eventbus-go/example/shared/core"
)

const (
	queryType = "GetCustomerOrders"

	// DefaultPage and DefaultSize are applied when BuildQuery receives
	// non-positive values.
	DefaultPage = 1
	DefaultSize = 20
)

// Query represents the intent to list a customer's order projections,
// paginated. Page is 1-based.
type Query struct {
	CustomerID core.CustomerIDString
	Page       int
	Size       int
}

// BuildQuery creates a new Query, normalizing non-positive page and size
// to their defaults.
func BuildQuery(customerID core.CustomerIDString, page int, size int) Query {
	if page < 1 {
		page = DefaultPage
	}

	if size < 1 {
		size = DefaultSize
	}

	return Query{
		CustomerID: customerID,
		Page:       page,
		Size:       size,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
