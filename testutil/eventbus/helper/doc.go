// Package helper provides test doubles for event bus observability tests:
// spies capturing logger, metrics and tracing calls for inspection.
package helper
