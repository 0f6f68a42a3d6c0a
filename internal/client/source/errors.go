package source

import (
	"errors"
	"fmt"
)

// ErrRemoteUnavailable indicates that a strategy could not produce a well-formed
// record array: transport failure, non-2xx status, a body that is not a JSON
// array, or any element that fails validation. The chain recovers from it.
var ErrRemoteUnavailable = errors.New("remote source unavailable")

func unavailable(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrRemoteUnavailable, name, err)
}
