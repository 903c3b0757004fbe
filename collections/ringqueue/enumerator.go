package ringqueue

import (
	"fmt"

	"github.com/hasbyte1/go-collections/collections"
)

// Enumerator walks a [Queue] from head to tail.
//
// It records the queue's version when created. If the queue is structurally
// modified afterwards, Next, Current and Reset return
// [collections.ErrConcurrentModification]; after Close they return
// [collections.ErrDisposed].
type Enumerator[T any] struct {
	q       *Queue[T]
	version uint64
	index   int
	current T
	closed  bool
}

// Iterator returns an Enumerator positioned before the head.
func (q *Queue[T]) Iterator() *Enumerator[T] {
	return &Enumerator[T]{q: q, version: q.version, index: -1}
}

func (e *Enumerator[T]) check() error {
	if e.closed {
		return collections.ErrDisposed
	}
	if e.version != e.q.version {
		return fmt.Errorf("%w: queue changed during enumeration", collections.ErrConcurrentModification)
	}
	return nil
}

// Next advances to the next item and reports whether there was one.
func (e *Enumerator[T]) Next() (bool, error) {
	if err := e.check(); err != nil {
		return false, err
	}
	if e.index+1 >= e.q.count {
		e.index = e.q.count
		var zero T
		e.current = zero
		return false, nil
	}
	e.index++
	e.current = e.q.buf[e.q.physical(e.index)]
	return true, nil
}

// Current returns the item at the enumerator's position. It fails before
// the first Next and after Next has returned false.
func (e *Enumerator[T]) Current() (T, error) {
	if err := e.check(); err != nil {
		var zero T
		return zero, err
	}
	if e.index < 0 || e.index >= e.q.count {
		var zero T
		return zero, fmt.Errorf("%w: enumerator not positioned on an item", collections.ErrIndexOutOfRange)
	}
	return e.current, nil
}

// Reset moves the enumerator back before the head.
func (e *Enumerator[T]) Reset() error {
	if err := e.check(); err != nil {
		return err
	}
	e.index = -1
	var zero T
	e.current = zero
	return nil
}

// Close releases the enumerator. Closing twice is a no-op.
func (e *Enumerator[T]) Close() error {
	e.closed = true
	var zero T
	e.current = zero
	return nil
}

// Each calls fn for every item, head first, until fn returns false.
// Returns [collections.ErrConcurrentModification] if fn changes the queue
// structurally.
func (q *Queue[T]) Each(fn func(item T, index int) bool) error {
	e := q.Iterator()
	defer e.Close()
	for i := 0; ; i++ {
		ok, err := e.Next()
		if err != nil || !ok {
			return err
		}
		if !fn(e.current, i) {
			return nil
		}
	}
}
