package collections_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-collections/collections"
	"github.com/hasbyte1/go-collections/collections/ringqueue"
)

func ExampleSnapshot() {
	snap := collections.NewSnapshot([]string{"a", "b", "c"})
	for i, v := range snap.All() {
		fmt.Println(i, v)
	}
	// Output:
	// 0 a
	// 1 b
	// 2 c
}

func ExampleFilter() {
	q, _ := ringqueue.From([]int{1, 2, 3, 4, 5, 6}, ringqueue.DefaultOptions())
	evens := collections.Filter(q, func(n, _ int) bool { return n%2 == 0 })
	labels := collections.Map(evens, func(n, _ int) string { return "#" + strconv.Itoa(n) })
	fmt.Println(labels.Slice())
	// Output: [#2 #4 #6]
}

func ExampleReduce() {
	sum := collections.Reduce(collections.NewSnapshot([]int{1, 2, 3, 4}),
		func(acc, n, _ int) int { return acc + n }, 0)
	fmt.Println(sum)
	// Output: 10
}

func ExampleBy() {
	type user struct {
		name string
		age  int
	}
	byAge := collections.By(func(u user) int { return u.age }, collections.Natural[int]())
	fmt.Println(byAge(user{"ann", 30}, user{"bob", 25}) > 0)
	// Output: true
}

func ExampleRetry() {
	calls := 0
	err := collections.Retry(3, func() error {
		calls++
		if calls < 2 {
			return collections.ErrConcurrentModification
		}
		return nil
	})
	fmt.Println(calls, err)

	err = collections.Retry(2, func() error { return collections.ErrConcurrentModification })
	fmt.Println(errors.Is(err, collections.ErrRetriesExhausted))
	// Output:
	// 2 <nil>
	// true
}
