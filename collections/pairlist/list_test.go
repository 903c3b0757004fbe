package pairlist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collections/collections"
	"github.com/hasbyte1/go-collections/collections/pairlist"
)

func build(t *testing.T, keys []string, values []int) *pairlist.List[string, int] {
	t.Helper()
	l := pairlist.New[string, int]()
	for i := range keys {
		require.NoError(t, l.Add(keys[i], values[i]))
	}
	return l
}

func TestAddGetSet(t *testing.T) {
	l := build(t, []string{"b", "a"}, []int{2, 1})
	assert.Equal(t, 2, l.Count())

	k, v, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "a", k)
	assert.Equal(t, 1, v)

	require.NoError(t, l.Set(0, "c", 3))
	assert.Equal(t, []string{"c", "a"}, l.Keys().Slice())
	assert.Equal(t, []int{3, 1}, l.Values().Slice())

	_, _, err = l.Get(2)
	assert.ErrorIs(t, err, collections.ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Set(-1, "x", 0), collections.ErrIndexOutOfRange)
}

func TestRemoveAt(t *testing.T) {
	l := build(t, []string{"a", "b", "c"}, []int{1, 2, 3})
	require.NoError(t, l.RemoveAt(1))
	assert.Equal(t, "[(a, 1) (c, 3)]", l.String())
	assert.ErrorIs(t, l.RemoveAt(2), collections.ErrIndexOutOfRange)
}

// TestSort_PermutesTogether verifies that sorting moves values with their
// keys and keeps equal keys in insertion order.
func TestSort_PermutesTogether(t *testing.T) {
	l := build(t, []string{"c", "a", "b", "a"}, []int{30, 10, 20, 11})
	assert.False(t, l.IsSorted())

	require.NoError(t, l.Sort())
	assert.True(t, l.IsSorted())
	assert.Equal(t, []string{"a", "a", "b", "c"}, l.Keys().Slice())
	assert.Equal(t, []int{10, 11, 20, 30}, l.Values().Slice())
}

func TestNewFunc_CustomOrder(t *testing.T) {
	l := pairlist.NewFunc[string, bool](collections.Reverse(collections.By(strings.ToLower, collections.Natural[string]())))
	require.NoError(t, l.Add("b", true))
	require.NoError(t, l.Add("C", false))
	require.NoError(t, l.Add("a", true))
	require.NoError(t, l.Sort())
	assert.Equal(t, []string{"C", "b", "a"}, l.Keys().Slice())
}

func TestBinarySearch(t *testing.T) {
	l := build(t, []string{"g", "c", "e", "a"}, []int{4, 2, 3, 1})
	require.NoError(t, l.Sort())

	assert.Equal(t, 2, l.BinarySearch("e"))
	assert.Equal(t, ^2, l.BinarySearch("d"))
	assert.Equal(t, ^0, l.BinarySearch("0"))
	assert.Equal(t, ^4, l.BinarySearch("z"))
	assert.Equal(t, ^0, pairlist.New[int, int]().BinarySearch(1))
}

func TestSnapshot(t *testing.T) {
	l := build(t, []string{"a", "b"}, []int{1, 2})
	snap := l.Snapshot()
	require.NoError(t, l.Add("c", 3))

	assert.Equal(t, 2, snap.Len())
	p, ok := snap.Get(1)
	assert.True(t, ok)
	assert.Equal(t, collections.MakePair("b", 2), p)
	assert.Equal(t, 3, collections.ToSlice[collections.Pair[string, int]](l)[2].Second)
}

func TestFreeze(t *testing.T) {
	l := build(t, []string{"b", "a"}, []int{2, 1})
	l.Freeze()
	assert.True(t, l.IsReadOnly())

	assert.ErrorIs(t, l.Add("c", 3), collections.ErrReadOnly)
	assert.ErrorIs(t, l.Set(0, "c", 3), collections.ErrReadOnly)
	assert.ErrorIs(t, l.RemoveAt(0), collections.ErrReadOnly)
	assert.ErrorIs(t, l.Sort(), collections.ErrReadOnly)

	k, _, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "b", k)
}

func TestZeroValueAndNilOrder(t *testing.T) {
	var zero pairlist.List[string, int]
	lists := map[string]*pairlist.List[string, int]{
		"zero":    &zero,
		"nilFunc": pairlist.NewFunc[string, int](nil),
	}
	for name, l := range lists {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, l.Add("b", 2))
			require.NoError(t, l.Add("a", 1))

			assert.True(t, l.IsSorted())
			require.NoError(t, l.Sort())
			assert.Equal(t, []string{"b", "a"}, l.Keys().Slice(), "insertion order kept")
			assert.GreaterOrEqual(t, l.BinarySearch("a"), 0)
		})
	}
}
