package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the containers in this module.
//
// Use [errors.Is] for comparisons; the returned errors usually wrap one of
// these with the offending index or count:
//
//	if err := q.Skip(10); errors.Is(err, collections.ErrIndexOutOfRange) {
//	    // fewer than 10 items queued
//	}
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty (Dequeue, Peek).
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrIndexOutOfRange is returned when an index is outside [0, Count()-1],
	// or when a count exceeds the number of available elements.
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrCapacityExceeded is returned when a fixed-capacity container is full
	// and growth is disabled.
	ErrCapacityExceeded = errors.New("collections: capacity exceeded")

	// ErrInvalidCapacity is returned for a negative capacity.
	ErrInvalidCapacity = errors.New("collections: capacity must not be negative")

	// ErrConcurrentModification is returned by an enumerator when its
	// container was structurally modified after the enumerator was created.
	ErrConcurrentModification = errors.New("collections: collection was modified during enumeration")

	// ErrDisposed is returned when a closed enumerator is used.
	ErrDisposed = errors.New("collections: enumerator has been closed")

	// ErrInvalidCast is returned by the weakly-typed entry points when a value
	// is not assignable to the element type.
	ErrInvalidCast = errors.New("collections: value is not assignable to the element type")

	// ErrReadOnly is returned when a mutation is attempted on a container that
	// has been frozen.
	ErrReadOnly = errors.New("collections: collection is read-only")

	// ErrUnknownType is returned by factories when no constructor is
	// registered for the requested element type.
	ErrUnknownType = errors.New("collections: no constructor registered for type")

	// ErrDuplicateKey is returned when a key is already present in a
	// container that requires unique keys.
	ErrDuplicateKey = errors.New("collections: duplicate key")

	// ErrDuplicateValue is returned when a value is already present in a
	// container that requires unique values.
	ErrDuplicateValue = errors.New("collections: duplicate value")

	// ErrRetriesExhausted is returned by [Retry] when every attempt failed
	// with [ErrConcurrentModification].
	ErrRetriesExhausted = errors.New("collections: retries exhausted")
)

// OutOfRange returns an error wrapping [ErrIndexOutOfRange] that names the
// offending index and the valid upper bound.
func OutOfRange(index, count int) error {
	return fmt.Errorf("%w: index %d not in [0, %d)", ErrIndexOutOfRange, index, count)
}

// CheckIndex returns nil when 0 <= index < count and an [OutOfRange] error
// otherwise.
func CheckIndex(index, count int) error {
	if index < 0 || index >= count {
		return OutOfRange(index, count)
	}
	return nil
}
