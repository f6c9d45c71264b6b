// Package memoryengine provides the in-memory projection store engine.
// It is the default engine for the example and for tests; records live in
// a map for process lifetime only.
package memoryengine

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/eventflux/domain-eventbus-go/example/shared/core"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell/projectionstore"
)

// ProjectionStore keeps order projections in memory, keyed by order ID.
// It is safe for concurrent use.
type ProjectionStore struct {
	mu          sync.RWMutex
	projections map[core.OrderIDString]shell.OrderProjection
}

// NewProjectionStore creates an empty in-memory projection store.
func NewProjectionStore() *ProjectionStore {
	return &ProjectionStore{
		projections: make(map[core.OrderIDString]shell.OrderProjection),
	}
}

// Save upserts the projection keyed by its OrderID.
func (s *ProjectionStore) Save(_ context.Context, projection shell.OrderProjection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projections[projection.OrderID] = projection

	return nil
}

// Get returns the projection for the given order ID and whether it exists.
func (s *ProjectionStore) Get(_ context.Context, orderID core.OrderIDString) (
	shell.OrderProjection,
	bool,
	error,
) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	projection, found := s.projections[orderID]

	return projection, found, nil
}

// ByCustomer returns the customer's projections ordered by ConfirmedAt
// ascending with OrderID as tie-breaker, sliced to the requested page.
func (s *ProjectionStore) ByCustomer(
	_ context.Context,
	customerID core.CustomerIDString,
	page int,
	size int,
) ([]shell.OrderProjection, error) {

	if page < 1 {
		return nil, projectionstore.ErrInvalidPage
	}

	if size < 1 {
		return nil, projectionstore.ErrInvalidPageSize
	}

	s.mu.RLock()
	matching := make([]shell.OrderProjection, 0)
	for _, projection := range s.projections {
		if projection.CustomerID == customerID {
			matching = append(matching, projection)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(matching, func(a, b shell.OrderProjection) int {
		if cmp := a.ConfirmedAt.Compare(b.ConfirmedAt); cmp != 0 {
			return cmp
		}

		return strings.Compare(a.OrderID, b.OrderID)
	})

	start := (page - 1) * size
	if start >= len(matching) {
		return []shell.OrderProjection{}, nil
	}

	end := min(start+size, len(matching))

	return matching[start:end], nil
}

var _ projectionstore.Store = (*ProjectionStore)(nil)
