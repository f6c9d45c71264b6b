// Package orderstore is the in-memory write store for Order aggregates.
//
// Only the command handlers mutate it. Concurrent reads are safe; writes to
// the same key are serialized by the store's lock, since two dispatches for
// overlapping order ids could otherwise race. The store lives for process
// lifetime only - durability is an explicit non-goal.
package orderstore

import (
	"sync"

	"github.com/eventflux/domain-eventbus-go/example/shared/core"
)

// Store keeps Order aggregates keyed by order ID.
type Store struct {
	mu     sync.RWMutex
	orders map[core.OrderIDString]*core.Order
}

// NewStore creates an empty write store.
func NewStore() *Store {
	return &Store{
		orders: make(map[core.OrderIDString]*core.Order),
	}
}

// Save stores the order under its ID, replacing any previous version.
func (s *Store) Save(order *core.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[order.OrderID()] = order
}

// Get returns the order for the given ID and whether it exists.
func (s *Store) Get(orderID core.OrderIDString) (*core.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, found := s.orders[orderID]

	return order, found
}

// Count returns how many orders are stored.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.orders)
}
