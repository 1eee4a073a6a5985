package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Empty queries and
// filters that match nothing are ordinary empty results, never errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown entity type.
	ErrUnsupportedType = errors.New("unsupported entity type")

	// ErrSourceUnavailable indicates the record source could not supply
	// a snapshot. This is a collaborator fault and propagates unchanged.
	ErrSourceUnavailable = errors.New("record source unavailable")

	// ErrSessionClosed indicates the search session has been closed and
	// accepts no further queries.
	ErrSessionClosed = errors.New("search session closed")
)
