// Package sqliteengine provides a SQLite-backed projection store engine.
//
// It supports database/sql and sqlx connections through an internal adapter
// layer and builds its SQL with goqu. The engine is meant for embedded use,
// an in-memory SQLite database works well for demos and tests via
// OpenInMemory.
package sqliteengine

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3" // dialect import
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	_ "modernc.org/sqlite" // driver import

	"github.com/eventflux/domain-eventbus-go/example/shared/core"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell/projectionstore"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell/projectionstore/sqliteengine/internal/adapters"
)

const (
	defaultTableName          = "order_projections"
	logMsgBuildQueryFailed    = "failed to build sql query"
	logMsgDBQueryFailed       = "database query execution failed"
	logMsgDBExecFailed        = "database execution failed"
	logMsgCloseRowsFailed     = "failed to close database rows"
	logMsgScanRowFailed       = "failed to scan database row"
	logMsgDecodePayloadFailed = "failed to decode projection payload"
	logMsgEncodePayloadFailed = "failed to encode projection payload"
	logMsgProjectionSaved     = "projection saved"
	logMsgQueryCompleted      = "query completed"
	logMsgSQLExecuted         = "executed sql for: "
	logMsgOperation           = "projectionstore operation: "
	logAttrError              = "error"
	logAttrQuery              = "query"
	logAttrOrderID            = "order_id"
	logAttrCustomerID         = "customer_id"
	logAttrRecordCount        = "record_count"
	logAttrDurationMS         = "duration_ms"
	logActionSave             = "save"
	logActionGet              = "get"
	logActionByCustomer       = "by_customer"
	colOrderID                = "order_id"
	colCustomerID             = "customer_id"
	colConfirmedAt            = "confirmed_at"
	colPayload                = "payload"
	dialectSQLite             = "sqlite3"
	driverNameSQLite          = "sqlite"

	// confirmedAtLayout is fixed-width so lexicographic ordering of the
	// stored TEXT column equals chronological ordering. Timestamps are
	// UTC and microsecond-truncated before they reach the store.
	confirmedAtLayout = "2006-01-02T15:04:05.000000Z"
)

type sqlQueryString = string

// Logger interface for SQL query logging, operational metrics, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ProjectionStore stores order projections in a SQLite table. The full record
// is kept as a JSON payload column; order_id, customer_id and confirmed_at
// are extracted into indexed columns for lookups and ordering.
type ProjectionStore struct {
	db        adapters.DBAdapter
	tableName string
	logger    Logger
}

// Option defines a functional option for configuring ProjectionStore.
type Option func(*ProjectionStore) error

// WithTableName sets the table name for the ProjectionStore.
func WithTableName(tableName string) Option {
	return func(ps *ProjectionStore) error {
		if tableName == "" {
			return projectionstore.ErrEmptyTableName
		}

		ps.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the ProjectionStore.
func WithLogger(logger Logger) Option {
	return func(ps *ProjectionStore) error {
		ps.logger = logger
		return nil
	}
}

// NewProjectionStoreFromSQLDB creates a new ProjectionStore using a sql.DB
// with optional configuration and ensures the schema exists.
func NewProjectionStoreFromSQLDB(db *sql.DB, options ...Option) (*ProjectionStore, error) {
	if db == nil {
		return nil, projectionstore.ErrNilDatabaseConnection
	}

	return buildProjectionStore(adapters.NewSQLAdapter(db), options...)
}

// NewProjectionStoreFromSQLX creates a new ProjectionStore using a sqlx.DB
// with optional configuration and ensures the schema exists.
func NewProjectionStoreFromSQLX(db *sqlx.DB, options ...Option) (*ProjectionStore, error) {
	if db == nil {
		return nil, projectionstore.ErrNilDatabaseConnection
	}

	return buildProjectionStore(adapters.NewSQLXAdapter(db), options...)
}

func buildProjectionStore(db adapters.DBAdapter, options ...Option) (*ProjectionStore, error) {
	ps := &ProjectionStore{
		db:        db,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(ps); err != nil {
			return nil, err
		}
	}

	if err := ps.createSchema(context.Background()); err != nil {
		return nil, err
	}

	return ps, nil
}

// OpenInMemory opens an in-memory SQLite database ready to be passed to
// NewProjectionStoreFromSQLX.
func OpenInMemory() (*sqlx.DB, error) {
	db, err := sqlx.Open(driverNameSQLite, ":memory:")
	if err != nil {
		return nil, err
	}

	// A second pooled connection to ":memory:" would open a separate,
	// empty database, so the pool must stay at one connection.
	db.SetMaxOpenConns(1)

	return db, nil
}

// Save upserts the projection keyed by its OrderID.
func (ps *ProjectionStore) Save(ctx context.Context, projection shell.OrderProjection) error {
	payloadJSON, marshalErr := json.Marshal(projection)
	if marshalErr != nil {
		if ps.logger != nil {
			ps.logger.Error(logMsgEncodePayloadFailed, logAttrError, marshalErr.Error(), logAttrOrderID, projection.OrderID)
		}

		return errors.Join(projectionstore.ErrEncodingProjectionFailed, marshalErr)
	}

	confirmedAt := projection.ConfirmedAt.UTC().Format(confirmedAtLayout)

	insertStmt := goqu.Dialect(dialectSQLite).
		Insert(ps.tableName).
		Cols(colOrderID, colCustomerID, colConfirmedAt, colPayload).
		Vals(goqu.Vals{projection.OrderID, projection.CustomerID, confirmedAt, string(payloadJSON)}).
		OnConflict(goqu.DoUpdate(colOrderID, goqu.Record{
			colCustomerID:  projection.CustomerID,
			colConfirmedAt: confirmedAt,
			colPayload:     string(payloadJSON),
		}))

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		if ps.logger != nil {
			ps.logger.Error(logMsgBuildQueryFailed, logAttrError, toSQLErr.Error(), logAttrOrderID, projection.OrderID)
		}

		return errors.Join(projectionstore.ErrBuildingQueryFailed, toSQLErr)
	}

	start := time.Now()
	_, execErr := ps.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	ps.logQueryWithDuration(sqlQuery, logActionSave, duration)

	if execErr != nil {
		if ps.logger != nil {
			ps.logger.Error(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		}

		return errors.Join(projectionstore.ErrSavingProjectionFailed, execErr)
	}

	ps.logOperation(
		logMsgProjectionSaved,
		logAttrOrderID, projection.OrderID,
		logAttrDurationMS, ps.durationToMilliseconds(duration))

	return nil
}

// Get returns the projection for the given order ID and whether it exists.
func (ps *ProjectionStore) Get(ctx context.Context, orderID core.OrderIDString) (
	shell.OrderProjection,
	bool,
	error,
) {

	var empty shell.OrderProjection

	selectStmt := goqu.Dialect(dialectSQLite).
		From(ps.tableName).
		Select(colPayload).
		Where(goqu.Ex{colOrderID: orderID})

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		if ps.logger != nil {
			ps.logger.Error(logMsgBuildQueryFailed, logAttrError, toSQLErr.Error(), logAttrOrderID, orderID)
		}

		return empty, false, errors.Join(projectionstore.ErrBuildingQueryFailed, toSQLErr)
	}

	projections, queryErr := ps.queryProjections(ctx, sqlQuery, logActionGet)
	if queryErr != nil {
		return empty, false, queryErr
	}

	if len(projections) == 0 {
		return empty, false, nil
	}

	return projections[0], true, nil
}

// ByCustomer returns the customer's projections ordered by ConfirmedAt
// ascending with OrderID as tie-breaker, sliced to the requested page.
func (ps *ProjectionStore) ByCustomer(
	ctx context.Context,
	customerID core.CustomerIDString,
	page int,
	size int,
) ([]shell.OrderProjection, error) {

	if page < 1 {
		return nil, projectionstore.ErrInvalidPage
	}

	if size < 1 {
		return nil, projectionstore.ErrInvalidPageSize
	}

	selectStmt := goqu.Dialect(dialectSQLite).
		From(ps.tableName).
		Select(colPayload).
		Where(goqu.Ex{colCustomerID: customerID}).
		Order(goqu.I(colConfirmedAt).Asc(), goqu.I(colOrderID).Asc()).
		Limit(uint(size)).
		Offset(uint((page - 1) * size))

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		if ps.logger != nil {
			ps.logger.Error(logMsgBuildQueryFailed, logAttrError, toSQLErr.Error(), logAttrCustomerID, customerID)
		}

		return nil, errors.Join(projectionstore.ErrBuildingQueryFailed, toSQLErr)
	}

	projections, queryErr := ps.queryProjections(ctx, sqlQuery, logActionByCustomer)
	if queryErr != nil {
		return nil, queryErr
	}

	ps.logOperation(
		logMsgQueryCompleted,
		logAttrCustomerID, customerID,
		logAttrRecordCount, len(projections))

	return projections, nil
}

// queryProjections executes the SQL query and decodes each payload row.
func (ps *ProjectionStore) queryProjections(
	ctx context.Context,
	sqlQuery sqlQueryString,
	action string,
) ([]shell.OrderProjection, error) {

	start := time.Now()
	rows, queryErr := ps.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	ps.logQueryWithDuration(sqlQuery, action, duration)

	if queryErr != nil {
		if ps.logger != nil {
			ps.logger.Error(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		}

		return nil, errors.Join(projectionstore.ErrQueryingProjectionsFailed, queryErr)
	}
	defer ps.closeRows(rows)

	projections := make([]shell.OrderProjection, 0)

	for rows.Next() {
		var payloadJSON string

		if rowScanErr := rows.Scan(&payloadJSON); rowScanErr != nil {
			if ps.logger != nil {
				ps.logger.Error(logMsgScanRowFailed, logAttrError, rowScanErr.Error())
			}

			return nil, errors.Join(projectionstore.ErrScanningDBRowFailed, rowScanErr)
		}

		var projection shell.OrderProjection

		if unmarshalErr := jsoniter.ConfigFastest.Unmarshal([]byte(payloadJSON), &projection); unmarshalErr != nil {
			if ps.logger != nil {
				ps.logger.Error(logMsgDecodePayloadFailed, logAttrError, unmarshalErr.Error())
			}

			return nil, errors.Join(projectionstore.ErrDecodingProjectionFailed, unmarshalErr)
		}

		projections = append(projections, projection)
	}

	return projections, nil
}

// createSchema creates the projection table and its lookup index if they do not exist.
func (ps *ProjectionStore) createSchema(ctx context.Context) error {
	createTable := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (
			%s TEXT PRIMARY KEY,
			%s TEXT NOT NULL,
			%s TEXT NOT NULL,
			%s TEXT NOT NULL
		)`,
		ps.tableName, colOrderID, colCustomerID, colConfirmedAt, colPayload,
	)

	createIndex := fmt.Sprintf(
		`CREATE INDEX IF NOT EXISTS idx_%s_customer ON %s (%s, %s, %s)`,
		ps.tableName, ps.tableName, colCustomerID, colConfirmedAt, colOrderID,
	)

	for _, statement := range []string{createTable, createIndex} {
		if _, execErr := ps.db.Exec(ctx, statement); execErr != nil {
			if ps.logger != nil {
				ps.logger.Error(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, statement)
			}

			return errors.Join(projectionstore.ErrCreatingSchemaFailed, execErr)
		}
	}

	return nil
}

// closeRows safely closes database rows and logs any errors.
func (ps *ProjectionStore) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if ps.logger != nil {
			ps.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

// logQueryWithDuration logs SQL queries with execution time at debug level if the logger is configured.
func (ps *ProjectionStore) logQueryWithDuration(
	sqlQuery string,
	action string,
	duration time.Duration,
) {

	if ps.logger != nil {
		ps.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, ps.durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (ps *ProjectionStore) logOperation(action string, args ...any) {
	if ps.logger != nil {
		ps.logger.Info(logMsgOperation+action, args...)
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (ps *ProjectionStore) durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

var _ projectionstore.Store = (*ProjectionStore)(nil)
