package pairlist

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/hasbyte1/go-collections/collections"
)

// List holds keys and values in two parallel slices. Position i pairs
// keys[i] with values[i]; every operation moves both together.
//
// List is safe for concurrent use. The zero value is an empty List whose
// keys are never reordered: Sort keeps the insertion order and
// BinarySearch treats every key as equal. Use [New] or [NewFunc] for a
// keyed order.
type List[K, V any] struct {
	mu     sync.RWMutex
	keys   []K
	values []V
	order  collections.Comparer[K]
	frozen bool
}

// New returns an empty List ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *List[K, V] {
	return NewFunc[K, V](collections.Natural[K]())
}

// NewFunc returns an empty List ordered by order. A nil order behaves like
// the zero value.
func NewFunc[K, V any](order collections.Comparer[K]) *List[K, V] {
	return &List[K, V]{order: order}
}

// compare returns the key order, treating all keys as equal when none is set.
func (l *List[K, V]) compare() collections.Comparer[K] {
	if l.order == nil {
		return func(K, K) int { return 0 }
	}
	return l.order
}

// Add appends the pair (k, v).
func (l *List[K, V]) Add(k K, v V) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.frozen {
		return collections.ErrReadOnly
	}
	l.keys = append(l.keys, k)
	l.values = append(l.values, v)
	return nil
}

// Get returns the pair at index.
func (l *List[K, V]) Get(index int) (K, V, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if err := collections.CheckIndex(index, len(l.keys)); err != nil {
		var (
			k K
			v V
		)
		return k, v, err
	}
	return l.keys[index], l.values[index], nil
}

// Set replaces the pair at index.
func (l *List[K, V]) Set(index int, k K, v V) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.frozen {
		return collections.ErrReadOnly
	}
	if err := collections.CheckIndex(index, len(l.keys)); err != nil {
		return err
	}
	l.keys[index], l.values[index] = k, v
	return nil
}

// RemoveAt deletes the pair at index, shifting later pairs down.
func (l *List[K, V]) RemoveAt(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.frozen {
		return collections.ErrReadOnly
	}
	if err := collections.CheckIndex(index, len(l.keys)); err != nil {
		return err
	}
	l.keys = slices.Delete(l.keys, index, index+1)
	l.values = slices.Delete(l.values, index, index+1)
	return nil
}

// Sort orders the pairs by key. Pairs with equal keys keep their relative
// order.
func (l *List[K, V]) Sort() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.frozen {
		return collections.ErrReadOnly
	}
	perm := make([]int, len(l.keys))
	for i := range perm {
		perm[i] = i
	}
	order := l.compare()
	slices.SortStableFunc(perm, func(a, b int) int { return order(l.keys[a], l.keys[b]) })

	keys := make([]K, len(l.keys))
	values := make([]V, len(l.values))
	for to, from := range perm {
		keys[to] = l.keys[from]
		values[to] = l.values[from]
	}
	l.keys, l.values = keys, values
	return nil
}

// IsSorted reports whether the keys are in order.
func (l *List[K, V]) IsSorted() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.IsSortedFunc(l.keys, l.compare())
}

// BinarySearch looks for k in a List sorted by key. It returns the index of
// a matching pair, or ^i where i is the position at which k would be
// inserted.
func (l *List[K, V]) BinarySearch(k K) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i, found := slices.BinarySearchFunc(l.keys, k, l.compare())
	if !found {
		return ^i
	}
	return i
}

// Count returns the number of pairs.
func (l *List[K, V]) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.keys)
}

// Snapshot returns the pairs in list order.
func (l *List[K, V]) Snapshot() collections.Snapshot[collections.Pair[K, V]] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]collections.Pair[K, V], len(l.keys))
	for i := range l.keys {
		out[i] = collections.MakePair(l.keys[i], l.values[i])
	}
	return collections.Wrap(out)
}

// Keys returns a snapshot of the keys in list order.
func (l *List[K, V]) Keys() collections.Snapshot[K] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return collections.NewSnapshot(l.keys)
}

// Values returns a snapshot of the values in list order.
func (l *List[K, V]) Values() collections.Snapshot[V] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return collections.NewSnapshot(l.values)
}

// Freeze makes the List read-only; mutations then fail with
// [collections.ErrReadOnly].
func (l *List[K, V]) Freeze() {
	l.mu.Lock()
	l.frozen = true
	l.mu.Unlock()
}

// IsReadOnly reports whether Freeze has been called.
func (l *List[K, V]) IsReadOnly() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.frozen
}

// String formats the list as [(k, v) (k, v) ...].
func (l *List[K, V]) String() string {
	return fmt.Sprint(l.Snapshot().Slice())
}

var _ collections.Enumerable[collections.Pair[int, int]] = (*List[int, int])(nil)
