package store

import "errors"

// Sentinel errors returned by storage implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStorage is the umbrella error for any read or write failure of the
	// persistence medium.
	ErrStorage = errors.New("storage failure")

	// ErrKeyNotFound is returned by Get when nothing is stored under a key.
	// It is not a failure and is never wrapped in ErrStorage.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCorruptedValue is returned when a stored value cannot be decoded or
	// has an impossible shape (for example, a salt of the wrong length).
	ErrCorruptedValue = errors.New("stored value is corrupted")
)

// Low-level database operation errors, wrapped together with ErrStorage.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT/UPSERT fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
