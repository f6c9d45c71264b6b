// Package getorder implements the Get Order query use case.
//
// This feature reads a single order projection from the projection store.
// It is a pure read: the write store and the aggregates are never touched,
// and a confirmed order only becomes visible here once the projector has
// processed its OrderConfirmed event.
package getorder
