// Package shell contains the infrastructure side of the order example:
// the projection record shared between the read-model projector and the
// query handlers, the write store, the projection store engines, and the
// environment configuration.
//
// Following the core/shell split, nothing in here enforces business rules -
// that is the core package's job.
package shell
