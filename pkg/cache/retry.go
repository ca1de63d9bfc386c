package cache

import (
	"context"
	"errors"
	"time"
)

const retryAttempts = 3

// retryBaseWait is the first inter-attempt delay; tests shrink it.
var retryBaseWait = time.Second

// RetryableError marks a failure as transient. Only the AUR client wraps
// errors this way (5xx responses, transport failures); everything else
// fails on the first attempt.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable wraps err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err is marked transient anywhere in its chain.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff runs fn up to three times, doubling the wait between
// attempts starting from one second. Non-transient errors and context
// cancellation stop the retries immediately.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	wait := retryBaseWait

	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
		if attempt == retryAttempts {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
			wait *= 2
		}
	}
}
