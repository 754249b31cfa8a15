package utils

import (
	"errors"
	"fmt"
)

var (
	// ErrPermanent marks a failure that must not be retried. Remote stores
	// wrap non-retryable responses with it via Permanent.
	ErrPermanent = errors.New("permanent failure")

	// ErrDebouncedPanic is reported to a Debouncer's error handler when the
	// debounced operation panics.
	ErrDebouncedPanic = errors.New("debounced operation panicked")
)

// Permanent wraps err so that Retrier.Do stops retrying at once.
// It returns nil for a nil err.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrPermanent, err)
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrPermanent)
}
