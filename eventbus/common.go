package eventbus

import (
	"errors"
)

var ErrInvalidPoolSize = errors.New("worker pool size must be positive")
var ErrInvalidQueueCapacity = errors.New("task queue capacity must not be negative")
var ErrEmptyEventTypeSupplied = errors.New("empty event type supplied")
var ErrNilHandlerSupplied = errors.New("nil handler supplied")

// EventTypeString is a type alias for string, representing the tag under which handlers are registered.
type EventTypeString = string
