// Package projectionstore defines the storage contract for the order
// read model and the errors its engines share. The engines live in the
// memoryengine and sqliteengine subpackages so the projector and the
// query handlers depend only on this interface.
package projectionstore

import (
	"context"
	"errors"

	"github.com/eventflux/domain-eventbus-go/example/shared/core"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell"
)

var (
	// ErrNilDatabaseConnection is returned when a nil database connection is supplied to a factory method.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrEmptyTableName is returned when an empty table name is supplied as an option.
	ErrEmptyTableName = errors.New("table name must not be empty")

	// ErrInvalidPage is returned when a page below 1 is supplied.
	ErrInvalidPage = errors.New("page must be 1 or greater")

	// ErrInvalidPageSize is returned when a non-positive page size is supplied.
	ErrInvalidPageSize = errors.New("page size must be greater than zero")

	// ErrBuildingQueryFailed is returned when the sql query could not be built.
	ErrBuildingQueryFailed = errors.New("building sql query failed")

	// ErrSavingProjectionFailed is returned when a projection could not be stored.
	ErrSavingProjectionFailed = errors.New("saving projection failed")

	// ErrQueryingProjectionsFailed is returned when a projection query could not be executed.
	ErrQueryingProjectionsFailed = errors.New("querying projections failed")

	// ErrScanningDBRowFailed is returned when scanning a database row fails.
	ErrScanningDBRowFailed = errors.New("scanning database row failed")

	// ErrEncodingProjectionFailed is returned when a projection could not be serialized.
	ErrEncodingProjectionFailed = errors.New("encoding projection failed")

	// ErrDecodingProjectionFailed is returned when a stored projection could not be deserialized.
	ErrDecodingProjectionFailed = errors.New("decoding projection failed")

	// ErrCreatingSchemaFailed is returned when the projection table could not be created.
	ErrCreatingSchemaFailed = errors.New("creating projection schema failed")
)

// Store is the contract every projection store engine implements.
//
// Save upserts the record keyed by its OrderID, so replaying the same event
// overwrites instead of duplicating.
//
// ByCustomer returns the given customer's projections ordered by ConfirmedAt
// ascending with OrderID as tie-breaker, sliced to the requested page
// (1-based) and page size. A page beyond the data returns an empty slice.
type Store interface {
	Save(ctx context.Context, projection shell.OrderProjection) error
	Get(ctx context.Context, orderID core.OrderIDString) (shell.OrderProjection, bool, error)
	ByCustomer(ctx context.Context, customerID core.CustomerIDString, page int, size int) ([]shell.OrderProjection, error)
}
