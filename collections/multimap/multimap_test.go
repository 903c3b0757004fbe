package multimap_test

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-collections/collections"
	"github.com/hasbyte1/go-collections/collections/multimap"
)

func TestAddGet(t *testing.T) {
	mm := multimap.New[string, int]()
	mm.Add("a", 1, 2)
	mm.Add("a", 3)
	mm.Add("b", 9)
	mm.Add("c")

	assert.Equal(t, []int{1, 2, 3}, mm.Get("a").Slice())
	assert.True(t, mm.Get("missing").IsEmpty())
	assert.False(t, mm.ContainsKey("c"), "adding no values is a no-op")
	assert.Equal(t, 2, mm.Len())
	assert.Equal(t, 4, mm.Count())
}

// TestGet_SnapshotStable verifies a Get result is not affected by later
// writes to the same key.
func TestGet_SnapshotStable(t *testing.T) {
	mm := multimap.New[string, int]()
	mm.Add("a", 1, 2)
	snap := mm.Get("a")

	mm.Add("a", 3)
	mm.Remove("a", 1, collections.Equal[int]())
	mm.RemoveKey("a")

	assert.Equal(t, []int{1, 2}, snap.Slice())
}

func TestRemove(t *testing.T) {
	mm := multimap.New[string, string]()
	mm.Add("k", "x", "y", "x")

	assert.True(t, mm.Remove("k", "x", collections.Equal[string]()))
	assert.Equal(t, []string{"y", "x"}, mm.Get("k").Slice(), "first match only")
	assert.False(t, mm.Remove("k", "z", collections.Equal[string]()))

	fold := func(a, b string) bool { return strings.EqualFold(a, b) }
	assert.True(t, mm.Remove("k", "Y", fold))
	assert.True(t, mm.Remove("k", "X", fold))
	assert.False(t, mm.ContainsKey("k"), "empty key is dropped")
	assert.Zero(t, mm.Count())
}

func TestRemoveKeyClear(t *testing.T) {
	mm := multimap.New[int, int]()
	mm.Add(1, 1, 1)
	mm.Add(2, 2)
	assert.Equal(t, 2, mm.RemoveKey(1))
	assert.Zero(t, mm.RemoveKey(1))
	assert.Equal(t, 1, mm.Count())

	mm.Clear()
	assert.Zero(t, mm.Len())
	assert.Zero(t, mm.Count())
}

func TestEach_MayMutate(t *testing.T) {
	mm := multimap.New[string, int]()
	mm.Add("a", 1)
	mm.Add("b", 2, 3)

	total := 0
	mm.Each(func(k string, vs collections.Snapshot[int]) bool {
		total += vs.Len()
		mm.RemoveKey(k)
		return true
	})
	assert.Equal(t, 3, total)
	assert.Zero(t, mm.Len())

	keys := 0
	mm.Add("x", 1)
	mm.Add("y", 1)
	mm.Each(func(string, collections.Snapshot[int]) bool {
		keys++
		return false
	})
	assert.Equal(t, 1, keys)
}

func TestZeroValue(t *testing.T) {
	var mm multimap.Map[string, int]
	assert.True(t, mm.Get("a").IsEmpty())
	mm.Add("a", 1)
	assert.Equal(t, []string{"a"}, mm.Keys())

	data, err := json.Marshal(&multimap.Map[string, int]{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestJSON(t *testing.T) {
	mm := multimap.New[string, int]()
	mm.Add("a", 1, 2)
	data, err := json.Marshal(mm)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":[1,2]}`, string(data))

	back := multimap.New[string, int]()
	require.NoError(t, json.Unmarshal([]byte(`{"x":[1],"y":[],"z":[2,3]}`), back))
	keys := back.Keys()
	slices.Sort(keys)
	assert.Equal(t, []string{"x", "z"}, keys)
	assert.Equal(t, 3, back.Count())

	assert.Error(t, json.Unmarshal([]byte(`[1]`), back))
}

type routing struct {
	Routes *multimap.Map[string, string] `yaml:"routes"`
}

func TestYAML(t *testing.T) {
	doc := `
routes:
  GET: [/users, /orders]
  POST:
    - /orders
`
	var cfg routing
	require.NoError(t, yaml.Unmarshal([]byte(doc), &cfg))
	assert.Equal(t, []string{"/users", "/orders"}, cfg.Routes.Get("GET").Slice())
	assert.Equal(t, 3, cfg.Routes.Count())

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	var back map[string]map[string][]string
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, []string{"/orders"}, back["routes"]["POST"])

	err = yaml.Unmarshal([]byte("routes: [a, b]\n"), &cfg)
	assert.ErrorContains(t, err, "multimap: decode yaml")
}

func TestConcurrentReadersWriters(t *testing.T) {
	mm := multimap.New[int, int]()
	var g errgroup.Group
	for w := range 4 {
		g.Go(func() error {
			for i := range 500 {
				mm.Add(i%10, w)
			}
			return nil
		})
	}
	for range 4 {
		g.Go(func() error {
			for i := range 500 {
				snap := mm.Get(i % 10)
				n := snap.Len()
				for range snap.Values() {
					n--
				}
				if n != 0 {
					t.Errorf("snapshot length changed while iterating")
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 2000, mm.Count())
	assert.Equal(t, 10, mm.Len())
}
