package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no row matches the requested user ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when an update would give a user an
	// email address that another account already holds.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUnsupportedDSN is returned when the configured DSN selects no known
	// database driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrStaleCacheFill is returned by [UserCache.SetUser] when the entry was
	// invalidated after the record being stored was read.
	ErrStaleCacheFill = errors.New("cache entry invalidated during fill")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan user rows")
)
