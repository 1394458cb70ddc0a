package client

import (
	"errors"
	"time"
)

// Retry defaults used by the aggregator and lesson fetchers.
const (
	RetryAttempts = 3
	RetryDelay    = time.Second
)

// permanentError marks an error the retry loop must surface immediately.
type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent wraps an error so WithRetry stops retrying and returns it as-is.
// Callers use it to short-circuit on 403/404 where retrying cannot help.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// WithRetry invokes operation up to maxAttempts times, sleeping a fixed
// delay between attempts, and returns the last error on exhaustion. The base
// wrapper does not classify errors; wrap one in Permanent to bail out early.
func WithRetry(operation func() error, maxAttempts int, delay time.Duration) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		var pe *permanentError
		if errors.As(err, &pe) {
			return pe.err
		}

		lastErr = err
		if attempt < maxAttempts {
			time.Sleep(delay)
		}
	}
	return lastErr
}
