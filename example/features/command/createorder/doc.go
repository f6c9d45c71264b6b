// Package createorder implements the Create Order use case.
//
// This feature builds a new Order aggregate for a customer, adds the
// requested items, confirms the order and stores it in the write store.
// The OrderConfirmed event produced by the confirmation is drained from
// the aggregate and published fire-and-forget, so the read side catches
// up eventually while the caller gets the new order ID immediately.
//
// The flow is all-or-nothing: if any item is invalid or the order cannot
// be confirmed, nothing is stored and nothing is published.
package createorder
