package store

import "errors"

// Sentinel errors returned by the store layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KeyValueStore.Get] when no value is
	// stored under the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrAccountNotFound is returned when no account matches a lookup, and by
	// Update when the strict session sync policy is enabled.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSessionNotFound is returned when the session slot is empty.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNoArticleSelected is returned when no article has been selected yet.
	ErrNoArticleSelected = errors.New("no article selected")

	// ErrStoreNotMigrated is returned when the kv_store table does not exist.
	ErrStoreNotMigrated = errors.New("key-value store is not migrated")

	// ErrStoreUnavailable is returned when the database connection is lost.
	ErrStoreUnavailable = errors.New("key-value store is unavailable")

	// ErrCorruptedValue is returned when a stored value cannot be decoded.
	ErrCorruptedValue = errors.New("stored value is corrupted")
)

// Low-level database operation errors. These are wrapped by the SQL
// key-value store when a statement fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrUnknownDialect is returned when a DSN selects no supported driver.
	ErrUnknownDialect = errors.New("unknown sql dialect")
)
