package store

import "errors"

var (
	// ErrEmptyKey is returned when an operation is called with an empty key.
	ErrEmptyKey = errors.New("storage key is empty")

	// ErrUnsupportedDSN is returned when the storage DSN names an unknown
	// backend.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")

	// ErrNilDB is returned by NewKVRepository when no connection is given.
	ErrNilDB = errors.New("database connection is nil")
)

// Low-level database operation errors, wrapped together with the driver
// error.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
)
