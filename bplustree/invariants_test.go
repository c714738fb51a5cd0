package bplus

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leftmostLeaf walks the leftmost spine down to the first leaf.
func leftmostLeaf(tr *BPlusTree[int]) *Node[int] {
	n := tr.node(tr.root)
	for n.nodeType == NodeInternal {
		n = tr.node(n.children[0])
	}
	return n
}

// chainKeys collects every key along the leaf chain in traversal order.
func chainKeys(tr *BPlusTree[int]) []int {
	var keys []int
	for n := leftmostLeaf(tr); ; n = tr.node(n.next) {
		keys = append(keys, n.keys...)
		if n.next == nilNode {
			return keys
		}
	}
}

// leafDepths records the depth of every leaf reachable from the root.
func leafDepths(tr *BPlusTree[int], id nodeID, depth int, out *[]int) {
	n := tr.node(id)
	if n.nodeType == NodeLeaf {
		*out = append(*out, depth)
		return
	}
	for _, child := range n.children {
		leafDepths(tr, child, depth+1, out)
	}
}

func buildRandomTree(t *testing.T, order, n int) (*BPlusTree[int], map[int][]int) {
	t.Helper()

	tr, err := New[int](order)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	inserted := make(map[int][]int)
	for id := 0; id < n; id++ {
		key := rng.Intn(n / 2) // force plenty of duplicate keys
		tr.Insert(key, id)
		inserted[key] = append(inserted[key], id)
	}
	return tr, inserted
}

func TestLeafChainStrictlyAscending(t *testing.T) {
	t.Parallel()

	for _, order := range []int{3, 4, 5, 8} {
		tr, inserted := buildRandomTree(t, order, 600)

		keys := chainKeys(tr)
		require.Len(t, keys, len(inserted), "order %d: chain must visit every distinct key once", order)
		for i := 1; i < len(keys); i++ {
			require.Less(t, keys[i-1], keys[i], "order %d: leaf chain out of order at %d", order, i)
		}
		assert.Equal(t, len(inserted), tr.KeyCount())
	}
}

func TestAllLeavesSameDepth(t *testing.T) {
	t.Parallel()

	for _, order := range []int{3, 4, 7} {
		tr, _ := buildRandomTree(t, order, 500)

		var depths []int
		leafDepths(tr, tr.root, 1, &depths)
		require.NotEmpty(t, depths)
		for _, d := range depths {
			assert.Equal(t, depths[0], d, "order %d: leaves at unequal depth", order)
		}
		assert.Equal(t, depths[0], tr.Height())
	}
}

func TestNodeShapeInvariants(t *testing.T) {
	t.Parallel()

	tr, _ := buildRandomTree(t, 4, 400)

	queue := []nodeID{tr.root}
	for len(queue) > 0 {
		n := tr.node(queue[0])
		queue = queue[1:]

		if n.nodeType == NodeInternal {
			require.Equal(t, len(n.keys)+1, len(n.children),
				"internal node %d: children/keys mismatch", n.id)
			require.NotEmpty(t, n.keys, "internal node %d has no routing keys", n.id)
			queue = append(queue, n.children...)
		} else {
			require.Equal(t, len(n.keys), len(n.ids),
				"leaf node %d: ids/keys mismatch", n.id)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tr, inserted := buildRandomTree(t, 3, 500)

	for key, ids := range inserted {
		assert.Equal(t, ids, tr.Search(key), "key %d lost ids", key)
	}
}
