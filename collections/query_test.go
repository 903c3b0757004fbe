package collections_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collections/collections"
	"github.com/hasbyte1/go-collections/collections/snaplist"
)

func ints(ns ...int) collections.Snapshot[int] { return collections.NewSnapshot(ns) }

func TestMap(t *testing.T) {
	got := collections.Map(ints(1, 2, 3), func(n, i int) string {
		return strconv.Itoa(n*2) + "@" + strconv.Itoa(i)
	})
	assert.Equal(t, []string{"2@0", "4@1", "6@2"}, got.Slice())
	assert.True(t, collections.Map(ints(), func(n, _ int) int { return n }).IsEmpty())
}

func TestFilter(t *testing.T) {
	got := collections.Filter(ints(1, 2, 3, 4, 5), func(n, _ int) bool { return n%2 == 1 })
	assert.Equal(t, []int{1, 3, 5}, got.Slice())
}

func TestFlatMap(t *testing.T) {
	lines := collections.NewSnapshot([]string{"hello world", "foo bar"})
	got := collections.FlatMap(lines, func(s string, _ int) []string { return strings.Fields(s) })
	assert.Equal(t, []string{"hello", "world", "foo", "bar"}, got.Slice())
}

func TestReduce(t *testing.T) {
	s := collections.Reduce(ints(1, 2, 3), func(acc string, n, _ int) string {
		if acc == "" {
			return strconv.Itoa(n)
		}
		return acc + "," + strconv.Itoa(n)
	}, "")
	assert.Equal(t, "1,2,3", s)
}

func TestGroupByKeyBy(t *testing.T) {
	groups := collections.GroupBy(ints(1, 2, 3, 4, 5), func(n int) bool { return n%2 == 0 })
	require.Len(t, groups, 2)
	assert.Equal(t, []int{2, 4}, groups[true].Slice())
	assert.Equal(t, []int{1, 3, 5}, groups[false].Slice())

	byMod := collections.KeyBy(ints(1, 2, 3, 4), func(n int) int { return n % 2 })
	assert.Equal(t, map[int]int{0: 4, 1: 3}, byMod, "last item wins")
}

func TestZip(t *testing.T) {
	got := collections.Zip(collections.NewSnapshot([]string{"a", "b", "c"}), ints(1, 2))
	assert.Equal(t, []collections.Pair[string, int]{{First: "a", Second: 1}, {First: "b", Second: 2}}, got.Slice())
}

func TestCollapse(t *testing.T) {
	got := collections.Collapse(collections.NewSnapshot([][]int{{1, 2}, {}, {3}}))
	assert.Equal(t, []int{1, 2, 3}, got.Slice())
}

// TestQueries_TakeOneSnapshot verifies queries over a live container work on
// the contents at call time.
func TestQueries_TakeOneSnapshot(t *testing.T) {
	l := snaplist.New(1, 2, 3)
	doubled := collections.Map(l, func(n, _ int) int {
		l.Add(n)
		return n * 2
	})
	assert.Equal(t, []int{2, 4, 6}, doubled.Slice())
	assert.Equal(t, 6, l.Count())
}
