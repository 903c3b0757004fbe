package collections

// Enumerable is the read surface shared by the containers in this module.
//
// Accept Enumerable in your own functions so that callers can pass a
// snaplist, a ring queue or a pair list interchangeably. Iteration always
// goes through [Snapshot], so a consumer never observes a container in the
// middle of a mutation.
type Enumerable[T any] interface {
	Source[T]

	// Count returns the number of items at the time of the call.
	Count() int
}

// ToSlice returns a copy of the current contents of e.
func ToSlice[T any](e Source[T]) []T {
	return e.Snapshot().Slice()
}

// Count returns the number of items in e that satisfy fn.
func Count[T any](e Source[T], fn func(T) bool) int {
	n := 0
	for item := range e.Snapshot().Values() {
		if fn(item) {
			n++
		}
	}
	return n
}
