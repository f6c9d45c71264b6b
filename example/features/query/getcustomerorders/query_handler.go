package getcustomerorders

import (
	"context"

	"github.com/eventflux/domain-eventbus-go/example/shared/core"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell"
)

// ProjectionReader defines the interface needed by the QueryHandler for projection store reads.
type ProjectionReader interface {
	ByCustomer(ctx context.Context, customerID core.CustomerIDString, page int, size int) (
		[]shell.OrderProjection,
		error,
	)
}

// QueryHandler lists customer order projections page by page.
type QueryHandler struct {
	projections ProjectionReader
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(projections ProjectionReader) QueryHandler {
	return QueryHandler{
		projections: projections,
	}
}

// Handle executes the query.
// A page beyond the customer's data yields an empty result, not an error.
func (h QueryHandler) Handle(ctx context.Context, query Query) (CustomerOrders, error) {
	orders, err := h.projections.ByCustomer(ctx, query.CustomerID, query.Page, query.Size)
	if err != nil {
		return CustomerOrders{}, err
	}

	return CustomerOrders{
		CustomerID: query.CustomerID,
		Orders:     orders,
		Page:       query.Page,
		Size:       query.Size,
		Count:      len(orders),
	}, nil
}
