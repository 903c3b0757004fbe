package collections

// This file contains package-level generic queries over any [Source].
//
// Each query takes one snapshot of its input, so the result is consistent
// even while the source keeps changing, and returns a new Snapshot:
//
//	active := collections.Filter(sessions, func(s Session, _ int) bool { return s.Active })
//	ids := collections.Map(active, func(s Session, _ int) string { return s.ID })

// Map applies fn to every item and returns the results.
//
//	names := collections.Map(users, func(u User, _ int) string { return u.Name })
func Map[T, U any](src Source[T], fn func(T, int) U) Snapshot[U] {
	items := src.Snapshot().items
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return Wrap(out)
}

// Filter returns the items for which fn reports true, in order.
func Filter[T any](src Source[T], fn func(T, int) bool) Snapshot[T] {
	items := src.Snapshot().items
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return Wrap(out)
}

// FlatMap applies fn to every item and concatenates the slices it returns.
//
//	words := collections.FlatMap(lines, func(s string, _ int) []string { return strings.Fields(s) })
func FlatMap[T, U any](src Source[T], fn func(T, int) []U) Snapshot[U] {
	items := src.Snapshot().items
	out := make([]U, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i)...)
	}
	return Wrap(out)
}

// Reduce folds the items into a single value, starting from initial.
//
//	sum := collections.Reduce(q, func(acc, n, _ int) int { return acc + n }, 0)
func Reduce[T, U any](src Source[T], fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range src.Snapshot().items {
		result = fn(result, item, i)
	}
	return result
}

// GroupBy groups items by the key extracted by fn. Items keep their order
// within a group.
func GroupBy[T any, K comparable](src Source[T], fn func(T) K) map[K]Snapshot[T] {
	groups := make(map[K][]T)
	for _, item := range src.Snapshot().items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	out := make(map[K]Snapshot[T], len(groups))
	for k, items := range groups {
		out[k] = Wrap(items)
	}
	return out
}

// KeyBy builds a map keyed by the value extracted by fn.
// When several items share a key, the last one wins.
func KeyBy[T any, K comparable](src Source[T], fn func(T) K) map[K]T {
	items := src.Snapshot().items
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[fn(item)] = item
	}
	return out
}

// Zip pairs the items of a and b by position, stopping at the shorter one.
func Zip[A, B any](a Source[A], b Source[B]) Snapshot[Pair[A, B]] {
	as, bs := a.Snapshot().items, b.Snapshot().items
	n := min(len(as), len(bs))
	out := make([]Pair[A, B], n)
	for i := range n {
		out[i] = MakePair(as[i], bs[i])
	}
	return Wrap(out)
}

// Collapse concatenates a source of slices into one snapshot.
func Collapse[T any](src Source[[]T]) Snapshot[T] {
	chunks := src.Snapshot().items
	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range chunks {
		out = append(out, chunk...)
	}
	return Wrap(out)
}
