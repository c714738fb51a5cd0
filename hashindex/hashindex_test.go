package hashindex

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertSearch(t *testing.T) {
	t.Parallel()

	ix := New[string]()
	ix.Insert("employee", 0)
	ix.Insert("manager", 1)
	ix.Insert("employee", 2)

	assert.Equal(t, []int{0, 2}, ix.Search("employee"))
	assert.Equal(t, []int{1}, ix.Search("manager"))
	assert.Empty(t, ix.Search("owner"))
	assert.Equal(t, 2, ix.KeyCount())
}

func TestDuplicateInsertIdempotent(t *testing.T) {
	t.Parallel()

	ix := New[int]()
	ix.Insert(28, 7)
	ix.Insert(28, 7)

	assert.Equal(t, []int{7}, ix.Search(28))
}

func TestGrowKeepsEntries(t *testing.T) {
	t.Parallel()

	ix := New[int]()
	for id := 0; id < 500; id++ {
		ix.Insert(id, id)
	}
	require.Equal(t, 500, ix.KeyCount())
	require.Greater(t, len(ix.buckets), initialBuckets, "table must have grown")

	for id := 0; id < 500; id++ {
		assert.Equal(t, []int{id}, ix.Search(id))
	}
}

func TestRangeSearchSortedByKey(t *testing.T) {
	t.Parallel()

	ix := New[int]()
	for id, age := range []int{42, 28, 35, 28, 31} {
		ix.Insert(age, id)
	}

	// 28 -> [1, 3], 31 -> [4], 35 -> [2]
	assert.Equal(t, []int{1, 3, 4, 2}, ix.RangeSearch(28, 35))
	assert.Empty(t, ix.RangeSearch(36, 28))
}

func TestStringKeys(t *testing.T) {
	t.Parallel()

	ix := New[string]()
	names := make([]string, 0, 64)
	for i := 0; i < 64; i++ {
		names = append(names, fmt.Sprintf("employee-%03d", i))
	}
	for id, name := range names {
		ix.Insert(name, id)
	}
	for id, name := range names {
		assert.Equal(t, []int{id}, ix.Search(name))
	}
}
