package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmptyUserID is returned when a repository method is called without
	// a user identifier. Snapshots are always scoped to exactly one user.
	ErrEmptyUserID = errors.New("empty user id")

	// ErrEncodingSnapshot is returned when a collection snapshot cannot be
	// serialized before writing it to the partition.
	ErrEncodingSnapshot = errors.New("error encoding snapshot")

	// ErrDecodingSnapshot is returned when a stored snapshot cannot be
	// deserialized, typically after a schema change or file corruption.
	ErrDecodingSnapshot = errors.New("error decoding snapshot")

	// ErrExecutingQuery is returned when executing a read query against the
	// local database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) against the local database fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
