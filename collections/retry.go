package collections

import (
	"errors"
	"fmt"
)

// DefaultRetryAttempts is the attempt bound used when Retry is given a
// non-positive count.
const DefaultRetryAttempts = 3

// Retry calls fn until it succeeds, fails with an error other than
// [ErrConcurrentModification], or has been called attempts times.
//
// It is meant for enumerations racing a writer: take a fresh enumerator on
// every attempt, and give up after a fixed bound instead of spinning.
//
//	err := collections.Retry(5, func() error {
//	    return q.Each(func(v int, _ int) bool { sum += v; return true })
//	})
//
// When every attempt hits a concurrent modification the returned error wraps
// both [ErrRetriesExhausted] and the last failure.
func Retry(attempts int, fn func() error) error {
	if attempts <= 0 {
		attempts = DefaultRetryAttempts
	}
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil || !errors.Is(err, ErrConcurrentModification) {
			return err
		}
	}
	return fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempts, err)
}
