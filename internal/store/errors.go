package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSiteNotFound is returned when a query or update targets a site that
	// does not exist in the database.
	ErrSiteNotFound = errors.New("site was not found")

	// ErrSoilDataNotSaved is returned when an upsert of a soil document
	// completes without error but the number of affected rows is zero,
	// indicating that nothing was actually persisted.
	ErrSoilDataNotSaved = errors.New("soil data was not saved")

	// ErrStorageUnavailable is returned when the database reports a
	// transient fault (connection loss, deadlock, serialization rollback).
	// The failed operation may succeed if attempted again.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingDocument is returned when a client-side document cannot be
	// marshalled to JSON before being written to the key-value store.
	ErrEncodingDocument = errors.New("failed to encode document")

	// ErrDecodingDocument is returned when the JSON document stored under a
	// root key cannot be unmarshalled into the expected shape.
	ErrDecodingDocument = errors.New("failed to decode document")
)
