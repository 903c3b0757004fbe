// Package ringqueue provides Queue, a FIFO circular buffer with optional
// growth, double-ended access and version-checked enumeration.
//
// # Overview
//
//	q := ringqueue.New[string]()
//	_ = q.Enqueue("a")
//	_ = q.Enqueue("b")
//	v, _ := q.Dequeue() // "a"
//
// Items are indexed logically: index 0 is the head (oldest item) whatever
// slot it occupies in the buffer.
//
// # Capacity
//
// The buffer starts at Options.Capacity slots ([DefaultCapacity] when
// zero). With growth enabled a full queue reallocates to max(2*Cap(),
// needed). With growth disabled Enqueue fails with
// collections.ErrCapacityExceeded, while the batch forms EnqueueSlice and
// EnqueueSeq write as many items as fit.
//
// SetCap below Len() drops the oldest items.
//
// # Enumeration
//
// [Queue.Iterator] and [Queue.Each] fail with
// collections.ErrConcurrentModification once the queue is structurally
// modified. A caller may retry the whole pass with collections.Retry.
//
// # Thread safety
//
// Queue is not synchronized. [Queue.SyncRoot] returns a Locker callers can
// share, but no Queue method acquires it.
package ringqueue
