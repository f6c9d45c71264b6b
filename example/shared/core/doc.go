// Package core contains the pure domain model of the order example:
// the Order aggregate with its OrderItems, the Money value object, and the
// domain events produced by valid state transitions.
//
// Code in this package enforces business invariants locally and records
// events as a byproduct of valid transitions. It performs no I/O and no
// dispatch - draining and publishing pending events is the command
// handlers' job.
package core
