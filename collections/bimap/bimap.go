package bimap

import (
	"encoding/json"
	"fmt"
	"iter"
	"sync"

	"github.com/hasbyte1/go-collections/collections"
)

// Map is a one-to-one mapping between keys and values.
//
// Every key maps to exactly one value and every value to exactly one key, so
// lookups work in both directions in O(1). The zero value is an empty,
// writable Map. Map is safe for concurrent use.
type Map[K, V comparable] struct {
	mu      sync.RWMutex
	forward map[K]V
	inverse map[V]K
	frozen  bool
}

// New returns an empty Map.
func New[K, V comparable]() *Map[K, V] {
	return &Map[K, V]{forward: map[K]V{}, inverse: map[V]K{}}
}

// FromMap builds a Map from m. It fails with [collections.ErrDuplicateValue]
// when two keys of m share a value.
func FromMap[K, V comparable](m map[K]V) (*Map[K, V], error) {
	b := New[K, V]()
	for k, v := range m {
		if err := b.Add(k, v); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Add inserts the pair k ↔ v. It fails if k or v is already present.
func (b *Map[K, V]) Add(k K, v V) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.writableLocked(); err != nil {
		return err
	}
	if _, ok := b.forward[k]; ok {
		return fmt.Errorf("%w: %v", collections.ErrDuplicateKey, k)
	}
	if _, ok := b.inverse[v]; ok {
		return fmt.Errorf("%w: %v", collections.ErrDuplicateValue, v)
	}
	b.forward[k] = v
	b.inverse[v] = k
	return nil
}

// Set maps k to v, dropping any pair that previously held k or v.
func (b *Map[K, V]) Set(k K, v V) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.writableLocked(); err != nil {
		return err
	}
	if old, ok := b.forward[k]; ok {
		delete(b.inverse, old)
	}
	if old, ok := b.inverse[v]; ok {
		delete(b.forward, old)
	}
	b.forward[k] = v
	b.inverse[v] = k
	return nil
}

// Value returns the value mapped to k.
func (b *Map[K, V]) Value(k K) (V, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.forward[k]
	return v, ok
}

// Key returns the key mapped to v.
func (b *Map[K, V]) Key(v V) (K, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	k, ok := b.inverse[v]
	return k, ok
}

// ContainsKey reports whether k is present.
func (b *Map[K, V]) ContainsKey(k K) bool {
	_, ok := b.Value(k)
	return ok
}

// ContainsValue reports whether v is present.
func (b *Map[K, V]) ContainsValue(v V) bool {
	_, ok := b.Key(v)
	return ok
}

// RemoveKey deletes the pair holding k and reports whether it existed.
func (b *Map[K, V]) RemoveKey(k K) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.writableLocked(); err != nil {
		return false, err
	}
	v, ok := b.forward[k]
	if ok {
		delete(b.forward, k)
		delete(b.inverse, v)
	}
	return ok, nil
}

// RemoveValue deletes the pair holding v and reports whether it existed.
func (b *Map[K, V]) RemoveValue(v V) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.writableLocked(); err != nil {
		return false, err
	}
	k, ok := b.inverse[v]
	if ok {
		delete(b.forward, k)
		delete(b.inverse, v)
	}
	return ok, nil
}

// Clear removes every pair.
func (b *Map[K, V]) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.writableLocked(); err != nil {
		return err
	}
	clear(b.forward)
	clear(b.inverse)
	return nil
}

// Len returns the number of pairs.
func (b *Map[K, V]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.forward)
}

// Keys returns the keys in unspecified order.
func (b *Map[K, V]) Keys() []K {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]K, 0, len(b.forward))
	for k := range b.forward {
		out = append(out, k)
	}
	return out
}

// Values returns the values in unspecified order.
func (b *Map[K, V]) Values() []V {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]V, 0, len(b.inverse))
	for v := range b.inverse {
		out = append(out, v)
	}
	return out
}

// Pairs returns a snapshot of the pairs in unspecified order.
func (b *Map[K, V]) Pairs() collections.Snapshot[collections.Pair[K, V]] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]collections.Pair[K, V], 0, len(b.forward))
	for k, v := range b.forward {
		out = append(out, collections.MakePair(k, v))
	}
	return collections.Wrap(out)
}

// All iterates over a copy of the pairs taken when iteration starts.
func (b *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range b.Pairs().Values() {
			if !yield(p.First, p.Second) {
				return
			}
		}
	}
}

// Inverse returns a new, writable Map with keys and values swapped.
func (b *Map[K, V]) Inverse() *Map[V, K] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	inv := &Map[V, K]{
		forward: make(map[V]K, len(b.inverse)),
		inverse: make(map[K]V, len(b.forward)),
	}
	for k, v := range b.forward {
		inv.forward[v] = k
		inv.inverse[k] = v
	}
	return inv
}

// Freeze makes the Map read-only. Later mutations fail with
// [collections.ErrReadOnly]. Freezing is permanent.
func (b *Map[K, V]) Freeze() {
	b.mu.Lock()
	b.frozen = true
	b.mu.Unlock()
}

// IsReadOnly reports whether Freeze has been called.
func (b *Map[K, V]) IsReadOnly() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.frozen
}

// MarshalJSON encodes the Map as a JSON object of key → value.
func (b *Map[K, V]) MarshalJSON() ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return json.Marshal(b.forward)
}

// UnmarshalJSON replaces the contents with a JSON object. Duplicate values
// are rejected and leave the Map unchanged.
func (b *Map[K, V]) UnmarshalJSON(data []byte) error {
	var m map[K]V
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("bimap: decode json: %w", err)
	}
	inverse := make(map[V]K, len(m))
	for k, v := range m {
		if _, ok := inverse[v]; ok {
			return fmt.Errorf("bimap: decode json: %w: %v", collections.ErrDuplicateValue, v)
		}
		inverse[v] = k
	}
	if m == nil {
		m = map[K]V{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.frozen {
		return collections.ErrReadOnly
	}
	b.forward, b.inverse = m, inverse
	return nil
}

// writableLocked fails on a frozen Map and initializes a zero-value one.
func (b *Map[K, V]) writableLocked() error {
	if b.frozen {
		return collections.ErrReadOnly
	}
	if b.forward == nil {
		b.forward = map[K]V{}
		b.inverse = map[V]K{}
	}
	return nil
}
