// Package collections holds the pieces shared by the containers in this
// module: the immutable [Snapshot] type, comparers, sentinel errors and
// generic queries over any [Source].
//
// # Containers
//
// The containers live in sub-packages:
//
//   - snaplist: a copy-on-write list whose readers take a lock-free snapshot.
//   - ringqueue: a circular-buffer FIFO with optional growth.
//   - bimap: a thread-safe one-to-one map.
//   - multimap: a thread-safe map from a key to many values.
//   - pairlist: parallel key/value lists sortable by key.
//
// # Snapshots
//
// Every container exports its contents as a [Snapshot]. A snapshot is never
// written to after it is handed out, so it can be iterated and shared across
// goroutines without locks while the container keeps changing:
//
//	snap := list.Snapshot()
//	for i, v := range snap.All() {
//	    fmt.Println(i, v)
//	}
//
// # Queries
//
// Go generics do not allow methods to introduce new type parameters, so
// transformations are package-level functions taking a [Source]:
//
//	evens := collections.Filter(q, func(n, _ int) bool { return n%2 == 0 })
//	labels := collections.Map(evens, func(n, _ int) string { return strconv.Itoa(n) })
//
// Package-level queries: [Map], [Filter], [FlatMap], [Reduce], [GroupBy],
// [KeyBy], [Zip], [Collapse].
//
// # Comparers
//
// Containers take ordering and equality as values ([Comparer], [Equaler])
// instead of consulting a process-wide default. [Natural], [Equal] and
// [EqualMethod] cover the common cases.
//
// # Errors
//
// Failures are reported with the sentinel errors in this package, usually
// wrapped with the offending index or count; match them with errors.Is.
package collections
