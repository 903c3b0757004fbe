// Package snaplist provides a goroutine-safe, copy-on-write list.
//
// # Overview
//
// A [List] keeps its items in a private slice guarded by a mutex. Readers
// never touch that slice: they get an immutable [collections.Snapshot] that
// is built on first read after a mutation and then shared by every reader
// until the next mutation.
//
//	l := snaplist.New(1, 2)
//	l.Insert(0, 0)
//	s := l.Snapshot()    // [0 1 2]
//	l.Add(3)
//	s.Slice()            // still [0 1 2]
//	l.Snapshot().Slice() // [0 1 2 3]
//
// # Cost model
//
// Reading a published snapshot is one atomic load with no lock and no
// allocation. The first read after a mutation copies the list under the
// lock. The list therefore suits read-mostly data: subscriber lists, routing
// tables, configuration fragments.
//
// # Sorted lists
//
// [NewSorted] and [NewSortedFunc] build lists whose snapshots are sorted.
// Only the snapshot is sorted; the list itself keeps insertion order.
//
// # Run-time element types
//
// When the element type is only known at run time, build the list through
// the factory and use the [Untyped] interface:
//
//	l, err := snaplist.NewOf(reflect.TypeFor[string]())
//	if err != nil { ... }
//	err = l.AddValue("a")  // ok
//	err = l.AddValue(42)   // collections.ErrInvalidCast
//
// Register further element types with [Register] or [RegisterFunc].
//
// # Encoding
//
// A List marshals to and from JSON arrays and YAML sequences, so it can be
// embedded in configuration structs loaded with gopkg.in/yaml.v3.
package snaplist
