package multimap

import (
	"encoding/json"
	"fmt"
	"iter"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-collections/collections"
)

// Map associates each key with an ordered list of values.
//
// Per-key lists are replaced on every change, never appended to in place, so
// a snapshot returned by Get stays valid while writers keep going. The zero
// value is an empty Map. Map is safe for concurrent use.
type Map[K comparable, V any] struct {
	mu    sync.RWMutex
	m     map[K][]V
	count int
}

// New returns an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: map[K][]V{}}
}

// Add appends values to the list for k. Adding no values is a no-op.
func (mm *Map[K, V]) Add(k K, values ...V) {
	if len(values) == 0 {
		return
	}
	mm.mu.Lock()
	defer mm.mu.Unlock()
	if mm.m == nil {
		mm.m = map[K][]V{}
	}
	old := mm.m[k]
	next := make([]V, len(old), len(old)+len(values))
	copy(next, old)
	mm.m[k] = append(next, values...)
	mm.count += len(values)
}

// Get returns the values for k, in insertion order.
func (mm *Map[K, V]) Get(k K) collections.Snapshot[V] {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return collections.Wrap(mm.m[k])
}

// Remove deletes the first value under k that eq matches against v and
// reports whether one was found. A key whose last value goes is dropped.
func (mm *Map[K, V]) Remove(k K, v V, eq collections.Equaler[V]) bool {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	old := mm.m[k]
	i := collections.Wrap(old).IndexOf(v, eq)
	if i < 0 {
		return false
	}
	if len(old) == 1 {
		delete(mm.m, k)
	} else {
		next := make([]V, 0, len(old)-1)
		next = append(next, old[:i]...)
		mm.m[k] = append(next, old[i+1:]...)
	}
	mm.count--
	return true
}

// RemoveKey drops k and returns how many values it held.
func (mm *Map[K, V]) RemoveKey(k K) int {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	n := len(mm.m[k])
	delete(mm.m, k)
	mm.count -= n
	return n
}

// ContainsKey reports whether k has at least one value.
func (mm *Map[K, V]) ContainsKey(k K) bool {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	_, ok := mm.m[k]
	return ok
}

// Len returns the number of keys.
func (mm *Map[K, V]) Len() int {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return len(mm.m)
}

// Count returns the number of values across all keys.
func (mm *Map[K, V]) Count() int {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.count
}

// Keys returns the keys in unspecified order.
func (mm *Map[K, V]) Keys() []K {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	out := make([]K, 0, len(mm.m))
	for k := range mm.m {
		out = append(out, k)
	}
	return out
}

// All iterates over the keys present when iteration starts, with their
// values at that moment. The loop body may mutate the Map.
func (mm *Map[K, V]) All() iter.Seq2[K, collections.Snapshot[V]] {
	return func(yield func(K, collections.Snapshot[V]) bool) {
		for _, e := range mm.entries() {
			if !yield(e.First, e.Second) {
				return
			}
		}
	}
}

// Each calls fn for every key until fn returns false. See [Map.All].
func (mm *Map[K, V]) Each(fn func(k K, values collections.Snapshot[V]) bool) {
	for k, vs := range mm.All() {
		if !fn(k, vs) {
			return
		}
	}
}

// Clear removes every key.
func (mm *Map[K, V]) Clear() {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	clear(mm.m)
	mm.count = 0
}

func (mm *Map[K, V]) entries() []collections.Pair[K, collections.Snapshot[V]] {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	out := make([]collections.Pair[K, collections.Snapshot[V]], 0, len(mm.m))
	for k, vs := range mm.m {
		out = append(out, collections.MakePair(k, collections.Wrap(vs)))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Encoding
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON encodes the Map as an object of key → array of values.
func (mm *Map[K, V]) MarshalJSON() ([]byte, error) {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	if mm.m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(mm.m)
}

// UnmarshalJSON replaces the contents with a JSON object of arrays.
func (mm *Map[K, V]) UnmarshalJSON(data []byte) error {
	var m map[K][]V
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("multimap: decode json: %w", err)
	}
	mm.replace(m)
	return nil
}

// MarshalYAML encodes the Map as a mapping of key → sequence of values.
func (mm *Map[K, V]) MarshalYAML() (any, error) {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	out := make(map[K][]V, len(mm.m))
	for k, vs := range mm.m {
		out[k] = vs
	}
	return out, nil
}

// UnmarshalYAML replaces the contents with a YAML mapping of sequences.
func (mm *Map[K, V]) UnmarshalYAML(node *yaml.Node) error {
	var m map[K][]V
	if err := node.Decode(&m); err != nil {
		return fmt.Errorf("multimap: decode yaml: %w", err)
	}
	mm.replace(m)
	return nil
}

// replace installs m, dropping keys with no values.
func (mm *Map[K, V]) replace(m map[K][]V) {
	count := 0
	for k, vs := range m {
		if len(vs) == 0 {
			delete(m, k)
			continue
		}
		count += len(vs)
	}
	if m == nil {
		m = map[K][]V{}
	}
	mm.mu.Lock()
	mm.m, mm.count = m, count
	mm.mu.Unlock()
}
