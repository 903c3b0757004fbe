package collections

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type of pair list snapshots and of bimap and multimap
// entry listings.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns Pair{First: a, Second: b}.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Unpack returns the two halves of p.
func (p Pair[A, B]) Unpack() (A, B) { return p.First, p.Second }

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// ComparePairs orders pairs by First using first and breaks ties by Second
// using second. A nil second comparer treats ties as equal.
func ComparePairs[A, B any](first Comparer[A], second Comparer[B]) Comparer[Pair[A, B]] {
	return func(x, y Pair[A, B]) int {
		if c := first(x.First, y.First); c != 0 || second == nil {
			return c
		}
		return second(x.Second, y.Second)
	}
}
