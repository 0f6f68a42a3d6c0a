package storage

import "errors"

// Common storage errors
var (
	// ErrRecordNotFound indicates that no row exists for the cell key
	ErrRecordNotFound = errors.New("record not found")
)
