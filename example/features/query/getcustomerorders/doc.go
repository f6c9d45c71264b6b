// Package getcustomerorders implements the Get Customer Orders query use case.
//
// This feature lists a customer's order projections page by page. Results
// are ordered by confirmation time ascending with the order ID as
// tie-breaker, so repeated queries over the same data always return the
// same pages.
package getcustomerorders
