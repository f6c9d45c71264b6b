package adapters

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// DBAdapter is what the projection store programs against: execute an
// interpolated SQL string, get rows or an execution result back.
type DBAdapter interface {
	Query(ctx context.Context, query string) (DBRows, error)
	Exec(ctx context.Context, query string) (DBResult, error)
}

// DBRows is the row cursor returned by Query.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
}

// DBResult is the outcome of Exec.
type DBResult interface {
	RowsAffected() (int64, error)
}

// queryExecutor is the narrow surface the projection store needs from a
// database handle. Both *sql.DB and *sqlx.DB satisfy it, sqlx through its
// embedded *sql.DB, so a single adapter covers both connection types.
type queryExecutor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Handle adapts a database handle to the DBAdapter interface. Queries arrive
// as fully interpolated SQL strings, so no bind arguments are passed through.
type Handle struct {
	db queryExecutor
}

// NewSQLAdapter wraps a database/sql handle.
func NewSQLAdapter(db *sql.DB) *Handle {
	return &Handle{db: db}
}

// NewSQLXAdapter wraps a sqlx handle.
func NewSQLXAdapter(db *sqlx.DB) *Handle {
	return &Handle{db: db}
}

// Query runs the statement and wraps the rows for the projection store.
func (h *Handle) Query(ctx context.Context, query string) (DBRows, error) {
	rows, err := h.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &projectionRows{inner: rows}, nil
}

// Exec runs the statement and wraps the result for the projection store.
func (h *Handle) Exec(ctx context.Context, query string) (DBResult, error) {
	result, err := h.db.ExecContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &execResult{inner: result}, nil
}

var _ DBAdapter = (*Handle)(nil)

// projectionRows adapts sql.Rows to the DBRows interface.
type projectionRows struct {
	inner *sql.Rows
}

func (r *projectionRows) Next() bool {
	return r.inner.Next()
}

func (r *projectionRows) Scan(dest ...any) error {
	return r.inner.Scan(dest...)
}

func (r *projectionRows) Close() error {
	return r.inner.Close()
}

// execResult adapts sql.Result to the DBResult interface.
type execResult struct {
	inner sql.Result
}

func (r *execResult) RowsAffected() (int64, error) {
	return r.inner.RowsAffected()
}
