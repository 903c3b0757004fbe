package ringqueue

import (
	"fmt"
	"iter"
	"log/slog"
	"sync"

	"github.com/hasbyte1/go-collections/collections"
)

// Queue is a circular buffer of T with optional growth.
//
// Logical item i lives at buf[(head+i) % len(buf)]. Every structural change
// (enqueue, dequeue, skip, removal, clear, reallocation) bumps an internal
// version that [Enumerator] uses to detect modification during iteration.
//
// # Thread safety
//
// NOT safe for concurrent use; no method takes a lock. Callers sharing a
// Queue between goroutines must synchronize, for example with the Locker
// returned by [Queue.SyncRoot].
type Queue[T any] struct {
	buf     []T
	head    int
	count   int
	version uint64

	growth     bool
	clearSlots bool
	logger     *slog.Logger

	syncRoot sync.Mutex
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an empty Queue with [DefaultOptions].
func New[T any]() *Queue[T] {
	q, _ := NewWithOptions[T](DefaultOptions())
	return q
}

// NewWithOptions creates an empty Queue configured by opts.
// Returns an error wrapping [collections.ErrInvalidCapacity] for a negative
// capacity.
func NewWithOptions[T any](opts Options) (*Queue[T], error) {
	if opts.Capacity < 0 {
		return nil, fmt.Errorf("%w: %d", collections.ErrInvalidCapacity, opts.Capacity)
	}
	if opts.Capacity == 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Queue[T]{
		buf:        make([]T, opts.Capacity),
		growth:     opts.Growth,
		clearSlots: opts.ClearSlots,
		logger:     opts.Logger,
	}, nil
}

// From creates a Queue holding a copy of items, oldest first. The capacity is
// the larger of opts.Capacity and len(items).
func From[T any](items []T, opts Options) (*Queue[T], error) {
	if opts.Capacity >= 0 && opts.Capacity < len(items) {
		opts.Capacity = len(items)
	}
	q, err := NewWithOptions[T](opts)
	if err != nil {
		return nil, err
	}
	q.count = copy(q.buf, items)
	return q, nil
}

// SyncRoot returns a Locker reserved for callers that share the queue
// between goroutines. The queue itself never acquires it.
func (q *Queue[T]) SyncRoot() sync.Locker { return &q.syncRoot }

// ─────────────────────────────────────────────────────────────────────────────
// Size & capacity
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.count }

// Count is an alias for [Queue.Len].
func (q *Queue[T]) Count() int { return q.count }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.count == 0 }

// Cap returns the buffer size.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// SetCap reallocates the buffer to exactly n slots.
//
// Items keep their logical order and the head moves to slot 0.
//
// Lossy shrink: when n < Len() the oldest Len()-n items are silently
// dropped, which makes SetCap usable as an eviction step. Callers that must
// not lose data should check Len() first.
func (q *Queue[T]) SetCap(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", collections.ErrInvalidCapacity, n)
	}
	if n != len(q.buf) {
		q.resize(n)
	}
	return nil
}

// TrimExcess shrinks the buffer to Len() slots.
func (q *Queue[T]) TrimExcess() {
	if q.count < len(q.buf) {
		q.resize(q.count)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Enqueue
// ─────────────────────────────────────────────────────────────────────────────

// Enqueue appends item at the tail.
//
// A full queue grows when growth is enabled; otherwise Enqueue returns an
// error wrapping [collections.ErrCapacityExceeded] and the queue is left
// unchanged.
func (q *Queue[T]) Enqueue(item T) error {
	if err := q.ensureRoom(1); err != nil {
		return err
	}
	q.buf[q.physical(q.count)] = item
	q.count++
	q.version++
	return nil
}

// EnqueueFront inserts item at the head, so it becomes the next item
// dequeued. It follows the same growth rule as [Queue.Enqueue].
func (q *Queue[T]) EnqueueFront(item T) error {
	if err := q.ensureRoom(1); err != nil {
		return err
	}
	q.head--
	if q.head < 0 {
		q.head += len(q.buf)
	}
	q.buf[q.head] = item
	q.count++
	q.version++
	return nil
}

// EnqueueSlice appends the items of src at the tail and returns how many were
// written.
//
// Unlike [Queue.Enqueue] it never fails: when growth is disabled and src does
// not fit, only the first Cap()-Len() items are written.
func (q *Queue[T]) EnqueueSlice(src []T) int {
	n := q.fit(len(src))
	if n == 0 {
		return 0
	}
	tail := q.physical(q.count)
	first := copy(q.buf[tail:], src[:n])
	copy(q.buf, src[first:n])
	q.count += n
	q.version++
	return n
}

// EnqueueSeq appends at most n items produced by seq and returns how many
// were written. Room for n items is reserved up front; without growth, n is
// cut to the free room as in [Queue.EnqueueSlice].
func (q *Queue[T]) EnqueueSeq(seq iter.Seq[T], n int) int {
	n = q.fit(n)
	if n == 0 {
		return 0
	}
	written := 0
	for item := range seq {
		q.buf[q.physical(q.count)] = item
		q.count++
		written++
		if written == n {
			break
		}
	}
	if written > 0 {
		q.version++
	}
	return written
}

// ensureRoom makes room for n more items or reports ErrCapacityExceeded.
func (q *Queue[T]) ensureRoom(n int) error {
	if q.count+n <= len(q.buf) {
		return nil
	}
	if !q.growth {
		return fmt.Errorf("%w: %d of %d slots used", collections.ErrCapacityExceeded, q.count, len(q.buf))
	}
	q.grow(q.count + n)
	return nil
}

// fit returns how many of n items can be written, growing when allowed.
func (q *Queue[T]) fit(n int) int {
	if n <= 0 {
		return 0
	}
	if room := len(q.buf) - q.count; n > room {
		if !q.growth {
			return room
		}
		q.grow(q.count + n)
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Dequeue
// ─────────────────────────────────────────────────────────────────────────────

// Dequeue removes and returns the item at the head.
// Returns [collections.ErrEmptyCollection] when the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, collections.ErrEmptyCollection
	}
	item := q.buf[q.head]
	q.advance(1)
	return item, nil
}

// DequeueBack removes and returns the item at the tail.
// Returns [collections.ErrEmptyCollection] when the queue is empty.
func (q *Queue[T]) DequeueBack() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, collections.ErrEmptyCollection
	}
	last := q.physical(q.count - 1)
	item := q.buf[last]
	if q.clearSlots {
		q.buf[last] = zero
	}
	q.count--
	q.version++
	return item, nil
}

// DequeueInto moves up to len(dst) items from the head into dst and returns
// how many were moved. Asking for more than Len() is not an error.
func (q *Queue[T]) DequeueInto(dst []T) int {
	n := min(len(dst), q.count)
	if n == 0 {
		return 0
	}
	q.copyRange(dst, 0, n)
	q.advance(n)
	return n
}

// Skip discards n items from the head without copying them.
// Returns an error wrapping [collections.ErrIndexOutOfRange] when n is
// negative or larger than Len().
func (q *Queue[T]) Skip(n int) error {
	if n < 0 || n > q.count {
		return fmt.Errorf("%w: cannot skip %d of %d items", collections.ErrIndexOutOfRange, n, q.count)
	}
	if n > 0 {
		q.advance(n)
	}
	return nil
}

// Peek returns the item at the head without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, collections.ErrEmptyCollection
	}
	return q.buf[q.head], nil
}

// PeekBack returns the item at the tail without removing it.
func (q *Queue[T]) PeekBack() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, collections.ErrEmptyCollection
	}
	return q.buf[q.physical(q.count-1)], nil
}

// RemoveAt removes the item at logical index.
//
// Removing index 0 is an O(1) head advance. Any other index shifts every
// later item down by one slot, which is O(Len()); do not use it on a hot
// path.
func (q *Queue[T]) RemoveAt(index int) error {
	if err := collections.CheckIndex(index, q.count); err != nil {
		return err
	}
	if index == 0 {
		q.advance(1)
		return nil
	}
	for i := index; i < q.count-1; i++ {
		q.buf[q.physical(i)] = q.buf[q.physical(i+1)]
	}
	if q.clearSlots {
		var zero T
		q.buf[q.physical(q.count-1)] = zero
	}
	q.count--
	q.version++
	return nil
}

// Clear removes every item. The capacity is kept.
func (q *Queue[T]) Clear() {
	if q.clearSlots {
		q.clearRange(0, q.count)
	}
	q.head = 0
	q.count = 0
	q.version++
}

// ─────────────────────────────────────────────────────────────────────────────
// Random access
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the item at logical index (0 is the head).
func (q *Queue[T]) Get(index int) (T, error) {
	if err := collections.CheckIndex(index, q.count); err != nil {
		var zero T
		return zero, err
	}
	return q.buf[q.physical(index)], nil
}

// Set replaces the item at logical index. Replacing an item is not a
// structural change and does not invalidate enumerators.
func (q *Queue[T]) Set(index int, item T) error {
	if err := collections.CheckIndex(index, q.count); err != nil {
		return err
	}
	q.buf[q.physical(index)] = item
	return nil
}

// ToSlice returns a copy of the items, oldest first.
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, q.count)
	q.copyRange(out, 0, q.count)
	return out
}

// Snapshot returns the items, oldest first, as an immutable snapshot.
func (q *Queue[T]) Snapshot() collections.Snapshot[T] {
	if q.count == 0 {
		return collections.Snapshot[T]{}
	}
	return collections.Wrap(q.ToSlice())
}

// InternalArray exposes n items starting at logical offset.
//
// When the range is contiguous in the buffer the returned slice aliases the
// buffer and direct is true: it sees later writes to those slots and must
// not be kept across mutations. When the range wraps past the end of the
// buffer a fresh copy is returned and direct is false.
func (q *Queue[T]) InternalArray(offset, n int) (items []T, direct bool, err error) {
	if offset < 0 || n < 0 || offset > q.count-n {
		return nil, false, fmt.Errorf("%w: range [%d, %d) not in [0, %d)",
			collections.ErrIndexOutOfRange, offset, offset+n, q.count)
	}
	if n == 0 {
		return []T{}, false, nil
	}
	start := q.physical(offset)
	if start+n <= len(q.buf) {
		return q.buf[start : start+n : start+n], true, nil
	}
	out := make([]T, n)
	q.copyRange(out, offset, n)
	return out, false, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Internals
// ─────────────────────────────────────────────────────────────────────────────

// physical maps logical index i (0 <= i < len(buf)) to a buffer slot.
func (q *Queue[T]) physical(i int) int {
	p := q.head + i
	if p >= len(q.buf) {
		p -= len(q.buf)
	}
	return p
}

// advance drops n items from the head.
func (q *Queue[T]) advance(n int) {
	if q.clearSlots {
		q.clearRange(0, n)
	}
	q.head = (q.head + n) % len(q.buf)
	q.count -= n
	q.version++
}

// copyRange copies n logical items starting at from into dst.
func (q *Queue[T]) copyRange(dst []T, from, n int) {
	if n == 0 {
		return
	}
	start := q.physical(from)
	first := copy(dst[:n], q.buf[start:min(start+n, len(q.buf))])
	copy(dst[first:n], q.buf[:n-first])
}

// clearRange zeroes n logical slots starting at from.
func (q *Queue[T]) clearRange(from, n int) {
	if n == 0 {
		return
	}
	start := q.physical(from)
	end := min(start+n, len(q.buf))
	clear(q.buf[start:end])
	clear(q.buf[:n-(end-start)])
}

func (q *Queue[T]) grow(needed int) {
	n := max(2*len(q.buf), needed)
	q.logger.Debug("ringqueue: growing buffer", "from", len(q.buf), "to", n, "items", q.count)
	q.resize(n)
}

// resize moves the newest min(count, n) items into a fresh buffer of n slots.
func (q *Queue[T]) resize(n int) {
	keep := min(q.count, n)
	buf := make([]T, n)
	q.copyRange(buf, q.count-keep, keep)
	if dropped := q.count - keep; dropped > 0 {
		q.logger.Debug("ringqueue: shrink dropped oldest items", "dropped", dropped, "capacity", n)
	}
	q.buf = buf
	q.head = 0
	q.count = keep
	q.version++
}

var _ collections.Enumerable[int] = (*Queue[int])(nil)
