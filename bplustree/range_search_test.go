package bplus

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeSearchInclusiveBounds(t *testing.T) {
	t.Parallel()

	tr, err := New[int](4)
	require.NoError(t, err)

	for id, age := range []int{28, 35, 28, 42, 31, 25} {
		tr.Insert(age, id)
	}

	// 25, 28, 31, 35, 42 with 28 -> [0, 2]
	assert.Equal(t, []int{0, 2, 4, 1}, tr.RangeSearch(28, 35))
	assert.Equal(t, []int{5, 0, 2, 4, 1, 3}, tr.RangeSearch(25, 42))
	assert.Equal(t, []int{4}, tr.RangeSearch(29, 34))
	assert.Empty(t, tr.RangeSearch(43, 100))
	assert.Empty(t, tr.RangeSearch(0, 24))
}

func TestRangeSearchMinGreaterThanMax(t *testing.T) {
	t.Parallel()

	tr, err := New[int](4)
	require.NoError(t, err)
	tr.Insert(10, 0)

	assert.Empty(t, tr.RangeSearch(20, 10))
}

func TestRangeSearchSingleKeyRange(t *testing.T) {
	t.Parallel()

	tr, err := New[int](3)
	require.NoError(t, err)
	tr.Insert(5, 0)
	tr.Insert(10, 1)
	tr.Insert(15, 2)

	assert.Equal(t, []int{1}, tr.RangeSearch(10, 10))
}

// TestRangeSearchAcrossLeaves forces a deep order-3 tree so scans must follow
// the leaf chain through many leaves.
func TestRangeSearchAcrossLeaves(t *testing.T) {
	t.Parallel()

	tr, err := New[int](3)
	require.NoError(t, err)

	for key := 1; key <= 50; key++ {
		tr.Insert(key, key*100)
	}
	require.Greater(t, tr.Height(), 2)

	want := make([]int, 0, 21)
	for key := 15; key <= 35; key++ {
		want = append(want, key*100)
	}
	assert.Equal(t, want, tr.RangeSearch(15, 35))
}

func TestRangeSearchAgainstReference(t *testing.T) {
	t.Parallel()

	tr, err := New[int](4)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	reference := make(map[int][]int)
	for id := 0; id < 400; id++ {
		key := rng.Intn(120)
		tr.Insert(key, id)
		reference[key] = append(reference[key], id)
	}

	sortedKeys := make([]int, 0, len(reference))
	for key := range reference {
		sortedKeys = append(sortedKeys, key)
	}
	sort.Ints(sortedKeys)

	for trial := 0; trial < 50; trial++ {
		min := rng.Intn(130)
		max := min + rng.Intn(60)

		var want []int
		for _, key := range sortedKeys {
			if key >= min && key <= max {
				want = append(want, reference[key]...)
			}
		}
		assert.Equal(t, want, tr.RangeSearch(min, max), "range [%d, %d]", min, max)
	}
}

func TestSeekGEBeyondLargest(t *testing.T) {
	t.Parallel()

	tr, err := New[int](3)
	require.NoError(t, err)
	tr.Insert(5, 0)
	tr.Insert(10, 1)
	tr.Insert(15, 2)

	it := tr.SeekGE(100)
	assert.False(t, it.Valid())
	assert.False(t, it.Next())
}

func TestSeekGEWalksChain(t *testing.T) {
	t.Parallel()

	tr, err := New[int](3)
	require.NoError(t, err)
	for key := 1; key <= 20; key++ {
		tr.Insert(key, key)
	}

	var got []int
	for it := tr.SeekGE(8); it.Valid(); it.Next() {
		got = append(got, it.Key())
	}
	want := make([]int, 0, 13)
	for key := 8; key <= 20; key++ {
		want = append(want, key)
	}
	assert.Equal(t, want, got)
}
