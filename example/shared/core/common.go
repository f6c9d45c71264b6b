package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// OrderIDString represents an order identifier
type OrderIDString = string

// CustomerIDString represents a customer identifier
type CustomerIDString = string

// ProductIDString represents a product identifier
type ProductIDString = string

// EventTypeString represents the type tag of a domain event
type EventTypeString = string

// CurrencyCodeString represents an ISO-ish currency code
type CurrencyCodeString = string

// OccurredAtTS represents when an event occurred
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
