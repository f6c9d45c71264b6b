package getorder

import (
	"context"

	"github.com/eventflux/domain-eventbus-go/example/shared/core"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell"
)

// ProjectionReader defines the interface needed by the QueryHandler for projection store reads.
type ProjectionReader interface {
	Get(ctx context.Context, orderID core.OrderIDString) (shell.OrderProjection, bool, error)
}

// QueryHandler reads single order projections.
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
// An unknown order ID yields found=false with a nil error; errors are
// reserved for storage failures.
func (h QueryHandler) Handle(ctx context.Context, query Query) (shell.OrderProjection, bool, error) {
	return h.projections.Get(ctx, query.OrderID)
}
