package core

import (
	"errors"
	"fmt"
)

// Category sentinels. Specific errors below wrap exactly one of them, so
// callers can branch on the category with errors.Is as well as on the
// specific error value.
var (
	// ErrValidation marks malformed input: non-positive quantities, negative amounts, currency mismatches.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidState marks operations that are not allowed in the aggregate's current status.
	ErrInvalidState = errors.New("invalid state for operation")

	// ErrNotFound marks lookups for identifiers that do not exist.
	ErrNotFound = errors.New("not found")
)

var (
	ErrNegativeAmount      = fmt.Errorf("%w: amount must not be negative", ErrValidation)
	ErrCurrencyMismatch    = fmt.Errorf("%w: currency codes do not match", ErrValidation)
	ErrQuantityNotPositive = fmt.Errorf("%w: quantity must be positive", ErrValidation)
	ErrAmountNotANumber    = fmt.Errorf("%w: amount is not a representable decimal", ErrValidation)

	ErrOrderNotPending = fmt.Errorf("%w: order can only be modified while pending", ErrInvalidState)
	ErrOrderHasNoItems = fmt.Errorf("%w: order must contain at least one item", ErrInvalidState)

	ErrOrderNotFound = fmt.Errorf("%w: order does not exist", ErrNotFound)
)
