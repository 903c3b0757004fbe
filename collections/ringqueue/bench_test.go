package ringqueue_test

import (
	"testing"

	"github.com/hasbyte1/go-collections/collections/ringqueue"
)

// makeQueue creates a Queue[int] holding 1..n.
func makeQueue(n int) *ringqueue.Queue[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	q, _ := ringqueue.From(items, ringqueue.DefaultOptions())
	return q
}

func BenchmarkEnqueueDequeue(b *testing.B) {
	q := makeQueue(1_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.Enqueue(i)
		_, _ = q.Dequeue()
	}
}

func BenchmarkDequeueInto(b *testing.B) {
	src := makeQueue(1_000).ToSlice()
	dst := make([]int, 64)
	q := makeQueue(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if q.Len() < len(dst) {
			q.EnqueueSlice(src)
		}
		q.DequeueInto(dst)
	}
}

func BenchmarkEach(b *testing.B) {
	q := makeQueue(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		_ = q.Each(func(v, _ int) bool { sum += v; return true })
	}
}
