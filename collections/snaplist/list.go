package snaplist

import (
	"cmp"
	"iter"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/hasbyte1/go-collections/collections"
)

// List is a goroutine-safe, copy-on-write list.
//
// Mutations take an exclusive lock, change the backing slice and discard the
// published snapshot. Reads go through [List.Snapshot]: while a snapshot is
// published it is returned with a single atomic load; otherwise the next
// reader rebuilds it under the lock. Readers never see a half-applied
// mutation and iteration never fails because of concurrent writers.
//
// A sorted list (see [NewSorted]) sorts each rebuilt snapshot with its
// comparer. The backing slice keeps insertion order, so index-based
// mutations ([List.Insert], [List.Set], [List.RemoveAt], [List.Get]) address
// insertion order while snapshot reads ([List.IndexOf], iteration) address
// sorted order.
//
// The zero value is an empty, unsorted list that compares items with
// reflect.DeepEqual; it is what a JSON or YAML decoder allocates.
type List[T any] struct {
	mu    sync.Mutex
	items []T
	snap  atomic.Pointer[collections.Snapshot[T]]

	equal collections.Equaler[T]
	order collections.Comparer[T] // nil unless sorted
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List of comparable items using == for membership tests.
func New[T comparable](items ...T) *List[T] {
	return NewFunc(collections.Equal[T](), items...)
}

// NewFunc creates a List whose membership tests use eq.
func NewFunc[T any](eq collections.Equaler[T], items ...T) *List[T] {
	l := &List[T]{equal: eq}
	if len(items) > 0 {
		l.items = slices.Clone(items)
	}
	return l
}

// NewSorted creates a List whose snapshots are sorted in natural order.
func NewSorted[T cmp.Ordered](items ...T) *List[T] {
	return NewSortedFunc(collections.Natural[T](), collections.Equal[T](), items...)
}

// NewSortedFunc creates a List whose snapshots are sorted by order.
// Equality for membership tests is eq; pass nil to derive it from order.
func NewSortedFunc[T any](order collections.Comparer[T], eq collections.Equaler[T], items ...T) *List[T] {
	if eq == nil {
		eq = collections.EqualFunc(order)
	}
	l := NewFunc(eq, items...)
	l.order = order
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Snapshot
// ─────────────────────────────────────────────────────────────────────────────

// Snapshot returns the current contents as an immutable snapshot.
//
// Repeated calls without an intervening mutation return the same snapshot
// without locking or allocating. A snapshot obtained before a mutation keeps
// its old contents forever.
func (l *List[T]) Snapshot() collections.Snapshot[T] {
	if s := l.snap.Load(); s != nil {
		return *s
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// Another reader may have rebuilt it while we waited for the lock.
	if s := l.snap.Load(); s != nil {
		return *s
	}
	return l.publishLocked()
}

func (l *List[T]) publishLocked() collections.Snapshot[T] {
	var s collections.Snapshot[T]
	if len(l.items) > 0 {
		out := slices.Clone(l.items)
		if l.order != nil {
			slices.SortStableFunc(out, l.order)
		}
		s = collections.Wrap(out)
	}
	l.snap.Store(&s)
	return s
}

// invalidateLocked must be called with mu held after every mutation.
func (l *List[T]) invalidateLocked() {
	l.snap.Store(nil)
}

func (l *List[T]) eq() collections.Equaler[T] {
	if l.equal == nil {
		return func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	return l.equal
}

// IsSorted reports whether snapshots of l are sorted.
func (l *List[T]) IsSorted() bool { return l.order != nil }

// ─────────────────────────────────────────────────────────────────────────────
// Mutations
// ─────────────────────────────────────────────────────────────────────────────

// Add appends items to the end of the list.
func (l *List[T]) Add(items ...T) {
	if len(items) == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, items...)
	l.invalidateLocked()
}

// Insert inserts item at index, shifting later items up.
// index may equal Count() to append.
func (l *List[T]) Insert(index int, item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index > len(l.items) {
		return collections.OutOfRange(index, len(l.items)+1)
	}
	l.items = slices.Insert(l.items, index, item)
	l.invalidateLocked()
	return nil
}

// Set replaces the item at index.
func (l *List[T]) Set(index int, item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := collections.CheckIndex(index, len(l.items)); err != nil {
		return err
	}
	l.items[index] = item
	l.invalidateLocked()
	return nil
}

// RemoveAt removes the item at index.
func (l *List[T]) RemoveAt(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := collections.CheckIndex(index, len(l.items)); err != nil {
		return err
	}
	l.items = slices.Delete(l.items, index, index+1)
	l.invalidateLocked()
	return nil
}

// Remove removes the first item equal to item and reports whether one was
// found.
func (l *List[T]) Remove(item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	eq := l.eq()
	i := slices.IndexFunc(l.items, func(v T) bool { return eq(v, item) })
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	l.invalidateLocked()
	return true
}

// Clear removes every item.
func (l *List[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
	l.invalidateLocked()
}

// Reverse reverses the insertion order of the items.
func (l *List[T]) Reverse() {
	l.mu.Lock()
	defer l.mu.Unlock()
	slices.Reverse(l.items)
	l.invalidateLocked()
}

// Replace swaps the whole contents for a copy of items in one step.
func (l *List[T]) Replace(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = slices.Clone(items)
	l.invalidateLocked()
}

// ─────────────────────────────────────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the item at index in insertion order.
func (l *List[T]) Get(index int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := collections.CheckIndex(index, len(l.items)); err != nil {
		var zero T
		return zero, err
	}
	return l.items[index], nil
}

// Count returns the number of items.
func (l *List[T]) Count() int { return l.Snapshot().Len() }

// IsEmpty reports whether the list holds no items.
func (l *List[T]) IsEmpty() bool { return l.Count() == 0 }

// Contains reports whether an item equal to item is present.
func (l *List[T]) Contains(item T) bool {
	return l.Snapshot().Contains(item, l.eq())
}

// IndexOf returns the snapshot index of the first item equal to item, or -1.
func (l *List[T]) IndexOf(item T) int {
	return l.Snapshot().IndexOf(item, l.eq())
}

// CopyTo copies the current contents into dst starting at dst[index].
func (l *List[T]) CopyTo(dst []T, index int) error {
	return l.Snapshot().CopyTo(dst, index)
}

// Slice returns a copy of the current contents owned by the caller.
func (l *List[T]) Slice() []T { return l.Snapshot().Slice() }

// All returns an iterator over the snapshot taken when iteration starts.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		l.Snapshot().All()(yield)
	}
}

// Values returns an iterator over the snapshot taken when iteration starts.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.Snapshot().Values()(yield)
	}
}

// Each calls fn(item, index) for every item of the current snapshot.
// fn may mutate l; the iteration is unaffected.
func (l *List[T]) Each(fn func(T, int)) {
	l.Snapshot().Each(fn)
}

var _ collections.Enumerable[int] = (*List[int])(nil)
