// Package adapters bridges database handles to the SQLite projection store.
//
// The store accepts either a database/sql or a sqlx connection; both share
// the same underlying query surface, so one Handle adapter serves both
// behind the DBAdapter interface.
package adapters
