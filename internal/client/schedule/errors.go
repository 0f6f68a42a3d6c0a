package schedule

import "errors"

var (
	// ErrRemoteWriteFailed indicates that a write-back to the server failed.
	// The edit stays in the local overlay and is not retried automatically.
	ErrRemoteWriteFailed = errors.New("remote write failed")

	// ErrNoRemoteWriter indicates that no update endpoint is configured
	ErrNoRemoteWriter = errors.New("remote writer is not configured")
)
