// Package orderprojection maintains the order read model.
//
// The Projector subscribes to OrderConfirmed events on the bus at
// construction time and keeps one projection record per order in the
// projection store. Projection is a pure function of the event, and Save
// overwrites by order ID, so replaying an event leaves the read model
// unchanged.
package orderprojection
