package storage

import "errors"

// Common client storage errors
var (
	// ErrMalformedOverlay indicates that the overlay slot holds content that is not
	// a JSON array of edits. Readers recover by treating the slot as empty.
	ErrMalformedOverlay = errors.New("malformed overlay content")

	// ErrInvalidEdit indicates an edit whose key or status is outside the grid
	ErrInvalidEdit = errors.New("invalid edit")

	// ErrFetchInfoNotFound indicates that no remote fetch has been recorded yet
	ErrFetchInfoNotFound = errors.New("fetch info not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
