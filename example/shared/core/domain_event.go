package core

import (
	"time"
)

// DomainEvents is a slice of DomainEvent instances.
type DomainEvents = []DomainEvent

// DomainEvent represents a business event that has occurred in the domain.
//
// The event-type tag returned by IsEventType is the key under which
// subscribers register on the bus; dispatch matches the exact tag only.
type DomainEvent interface {
	// IsEventType returns the string identifier for this event type.
	IsEventType() string

	// HasOccurredAt returns when this event occurred.
	HasOccurredAt() time.Time
}
