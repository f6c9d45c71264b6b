// Package updateorderstatus implements the Update Order Status use case.
//
// This feature loads an existing Order from the write store and applies a
// new lifecycle status. Status transitions other than confirmation are not
// validated and emit no events; Confirm on the aggregate is the only
// event-producing transition.
package updateorderstatus
