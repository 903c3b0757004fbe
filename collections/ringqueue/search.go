package ringqueue

import "github.com/hasbyte1/go-collections/collections"

// BinarySearch looks for value in a queue whose items are sorted
// (head to tail) by cmp.
//
// It returns the logical index of a matching item, or the bitwise complement
// ^i of the index at which value would be inserted to keep the order. The
// result is unspecified when the queue is not sorted.
func (q *Queue[T]) BinarySearch(value T, cmp collections.Comparer[T]) int {
	return q.search(func(item T) int { return cmp(item, value) })
}

// BinarySearchFunc is [Queue.BinarySearch] over a key projected from each
// item, for queues sorted by that key.
func BinarySearchFunc[T, K any](q *Queue[T], key K, keyOf func(T) K, cmp collections.Comparer[K]) int {
	return q.search(func(item T) int { return cmp(keyOf(item), key) })
}

// search runs a binary search where probe reports how an item compares to
// the target.
func (q *Queue[T]) search(probe func(T) int) int {
	lo, hi := 0, q.count-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := probe(q.buf[q.physical(mid)]); {
		case c == 0:
			return mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return ^lo
}
