package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTaskNotFound is returned when a query or delete targets a task id
	// that does not exist in the local database.
	ErrTaskNotFound = errors.New("task was not found")

	// ErrSessionNotSaved is returned when an INSERT of a focus session
	// completes without error but the number of affected rows is zero,
	// indicating that no data was actually persisted.
	ErrSessionNotSaved = errors.New("focus session was not saved")
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
)
