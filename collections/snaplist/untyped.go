package snaplist

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-collections/collections"
)

// Untyped is the weakly-typed view of a [List], for callers that only learn
// the element type at run time (see [NewOf]).
//
// Values passed in are checked against the element type; a value that is not
// assignable yields an error wrapping [collections.ErrInvalidCast]. A nil
// value is accepted when the element type is a pointer, interface, map,
// slice, func or chan.
type Untyped interface {
	// ElemType returns the element type of the underlying list.
	ElemType() reflect.Type

	AddValue(v any) error
	InsertValue(index int, v any) error
	SetValue(index int, v any) error
	GetValue(index int) (any, error)
	RemoveValue(v any) (bool, error)
	ContainsValue(v any) bool
	IndexOfValue(v any) int

	// AnyValues returns the current snapshot boxed as []any.
	AnyValues() []any

	Count() int
	Clear()
}

var _ Untyped = (*List[int])(nil)

// ElemType returns the reflect.Type of T.
func (l *List[T]) ElemType() reflect.Type { return reflect.TypeFor[T]() }

// AddValue appends v after converting it to T.
func (l *List[T]) AddValue(v any) error {
	item, err := cast[T](v)
	if err != nil {
		return err
	}
	l.Add(item)
	return nil
}

// InsertValue inserts v at index after converting it to T.
func (l *List[T]) InsertValue(index int, v any) error {
	item, err := cast[T](v)
	if err != nil {
		return err
	}
	return l.Insert(index, item)
}

// SetValue replaces the item at index with v converted to T.
func (l *List[T]) SetValue(index int, v any) error {
	item, err := cast[T](v)
	if err != nil {
		return err
	}
	return l.Set(index, item)
}

// GetValue returns the item at index boxed as any.
func (l *List[T]) GetValue(index int) (any, error) {
	item, err := l.Get(index)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveValue removes the first item equal to v.
func (l *List[T]) RemoveValue(v any) (bool, error) {
	item, err := cast[T](v)
	if err != nil {
		return false, err
	}
	return l.Remove(item), nil
}

// ContainsValue reports whether v is a T and an equal item is present.
func (l *List[T]) ContainsValue(v any) bool {
	item, err := cast[T](v)
	if err != nil {
		return false
	}
	return l.Contains(item)
}

// IndexOfValue returns the snapshot index of v, or -1 when v is absent or
// not a T.
func (l *List[T]) IndexOfValue(v any) int {
	item, err := cast[T](v)
	if err != nil {
		return -1
	}
	return l.IndexOf(item)
}

// AnyValues returns the current snapshot boxed as []any.
func (l *List[T]) AnyValues() []any {
	s := l.Snapshot()
	out := make([]any, 0, s.Len())
	for item := range s.Values() {
		out = append(out, item)
	}
	return out
}

func cast[T any](v any) (T, error) {
	if item, ok := v.(T); ok {
		return item, nil
	}
	var zero T
	t := reflect.TypeFor[T]()
	if v == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return zero, nil
		}
		return zero, fmt.Errorf("%w: nil to %s", collections.ErrInvalidCast, t)
	}
	return zero, fmt.Errorf("%w: %T to %s", collections.ErrInvalidCast, v, t)
}
