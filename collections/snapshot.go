package collections

import (
	"fmt"
	"iter"
)

// Snapshot is an immutable, ordered view of a collection's contents at one
// point in time.
//
// A Snapshot never changes after it has been handed out: producers build a
// fresh slice for every new snapshot and never write into a slice once it is
// wrapped. Readers may keep a Snapshot for as long as they like, share it
// across goroutines and iterate it without locks while the collection it came
// from keeps changing.
//
// The zero value is an empty snapshot and costs no allocation.
type Snapshot[T any] struct {
	items []T
}

// NewSnapshot returns a Snapshot holding a copy of items.
func NewSnapshot[T any](items []T) Snapshot[T] {
	if len(items) == 0 {
		return Snapshot[T]{}
	}
	dst := make([]T, len(items))
	copy(dst, items)
	return Snapshot[T]{items: dst}
}

// Wrap returns a Snapshot that takes ownership of items without copying.
//
// The caller must not modify items after the call. It exists for producers
// that have just built a private slice and want to publish it as is.
func Wrap[T any](items []T) Snapshot[T] {
	if len(items) == 0 {
		return Snapshot[T]{}
	}
	return Snapshot[T]{items: items}
}

// Len returns the number of items.
func (s Snapshot[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the snapshot holds no items.
func (s Snapshot[T]) IsEmpty() bool { return len(s.items) == 0 }

// Get returns the item at index together with a presence flag.
func (s Snapshot[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[index], true
}

// At returns the item at index or an error wrapping [ErrIndexOutOfRange].
func (s Snapshot[T]) At(index int) (T, error) {
	if err := CheckIndex(index, len(s.items)); err != nil {
		var zero T
		return zero, err
	}
	return s.items[index], nil
}

// Slice returns a copy of the items. The copy belongs to the caller.
func (s Snapshot[T]) Slice() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// All returns an iterator over index/item pairs.
func (s Snapshot[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range s.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Values returns an iterator over the items.
func (s Snapshot[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Each calls fn(item, index) for every item.
func (s Snapshot[T]) Each(fn func(T, int)) {
	for i, item := range s.items {
		fn(item, i)
	}
}

// IndexOf returns the index of the first item equal to value, or -1.
func (s Snapshot[T]) IndexOf(value T, eq Equaler[T]) int {
	for i, item := range s.items {
		if eq(item, value) {
			return i
		}
	}
	return -1
}

// Contains reports whether an item equal to value is present.
func (s Snapshot[T]) Contains(value T, eq Equaler[T]) bool {
	return s.IndexOf(value, eq) >= 0
}

// CopyTo copies every item into dst starting at dst[index].
// Returns an error wrapping [ErrIndexOutOfRange] when dst is too short;
// nothing is copied in that case.
func (s Snapshot[T]) CopyTo(dst []T, index int) error {
	if index < 0 || index > len(dst) || len(dst)-index < len(s.items) {
		return fmt.Errorf("%w: %d items do not fit at index %d of a %d-element slice",
			ErrIndexOutOfRange, len(s.items), index, len(dst))
	}
	copy(dst[index:], s.items)
	return nil
}

// Same reports whether s and other share the same backing array, i.e. one is
// the very snapshot the other was obtained as. Two empty snapshots are the
// same.
func (s Snapshot[T]) Same(other Snapshot[T]) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	return len(s.items) == 0 || &s.items[0] == &other.items[0]
}

// Snapshot returns s, so a Snapshot can be passed wherever a [Source] is
// expected.
func (s Snapshot[T]) Snapshot() Snapshot[T] { return s }

// Source is implemented by containers that can export their contents as an
// immutable [Snapshot].
type Source[T any] interface {
	Snapshot() Snapshot[T]
}
