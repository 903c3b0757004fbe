package collections

import (
	"cmp"
	"reflect"
)

// Comparer reports the relative order of a and b: negative when a < b, zero
// when they are equal and positive when a > b.
//
// Containers take a Comparer explicitly instead of consulting a hidden
// package-level default; use [Natural] for ordered types.
type Comparer[T any] func(a, b T) int

// Equaler reports whether a and b are equal.
type Equaler[T any] func(a, b T) bool

// Equatable is implemented by types that define their own equality.
type Equatable[T any] interface {
	Equal(other T) bool
}

// Natural returns the ascending natural order for an ordered type.
func Natural[T cmp.Ordered]() Comparer[T] {
	return cmp.Compare[T]
}

// Reverse returns a Comparer that inverts c.
func Reverse[T any](c Comparer[T]) Comparer[T] {
	return func(a, b T) int { return c(b, a) }
}

// By orders values of T by the key extracted with key, compared with c.
//
//	byAge := collections.By(func(p Person) int { return p.Age }, collections.Natural[int]())
func By[T, K any](key func(T) K, c Comparer[K]) Comparer[T] {
	return func(a, b T) int { return c(key(a), key(b)) }
}

// Equal returns the built-in == equality for comparable types.
//
// For interface types the dynamic values are compared: == when they are
// comparable, reflect.DeepEqual otherwise (slices, maps, funcs), so the
// Equaler never panics.
func Equal[T comparable]() Equaler[T] {
	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		return equalDynamic[T]
	}
	return func(a, b T) bool { return a == b }
}

func equalDynamic[T any](a, b T) bool {
	av, bv := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
	if !av.IsValid() || !bv.IsValid() {
		return av.IsValid() == bv.IsValid()
	}
	if av.Type() != bv.Type() {
		return false
	}
	if av.Comparable() {
		return any(a) == any(b)
	}
	return reflect.DeepEqual(any(a), any(b))
}

// EqualFunc derives an Equaler from a Comparer: values are equal when c
// reports zero.
func EqualFunc[T any](c Comparer[T]) Equaler[T] {
	return func(a, b T) bool { return c(a, b) == 0 }
}

// EqualMethod returns an Equaler that calls a.Equal(b).
//
// Two nil values (nil pointers, interfaces, maps, slices, funcs or chans) are
// equal; a nil and a non-nil value are not. Equal is never called with a nil
// receiver.
func EqualMethod[T Equatable[T]]() Equaler[T] {
	return func(a, b T) bool {
		an, bn := isNil(a), isNil(b)
		if an || bn {
			return an && bn
		}
		return a.Equal(b)
	}
}

func isNil[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
