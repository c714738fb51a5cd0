package bplus

import "cmp"

// Iterator provides a forward-only range scan over the leaves.
type Iterator[K cmp.Ordered] struct {
	tree  *BPlusTree[K]
	leaf  *Node[K]
	index int
	valid bool
}

// SeekGE positions the iterator at the first key >= target. The iterator is
// invalid when no such key exists.
func (t *BPlusTree[K]) SeekGE(target K) *Iterator[K] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	it := &Iterator[K]{tree: t}

	leaf := t.findLeaf(t.root, target)
	i := lowerBound(leaf.keys, target)
	if i >= len(leaf.keys) {
		// Everything in this leaf is smaller; the next leaf's first key is
		// the answer if there is one.
		if leaf.next == nilNode {
			return it
		}
		next := t.node(leaf.next)
		if len(next.keys) == 0 {
			return it
		}
		it.leaf = next
		it.index = 0
		it.valid = true
		return it
	}

	it.leaf = leaf
	it.index = i
	it.valid = true
	return it
}

// Next advances the iterator, following the leaf chain. Returns false when
// exhausted.
func (it *Iterator[K]) Next() bool {
	if !it.valid {
		return false
	}
	it.index++
	if it.index < len(it.leaf.keys) {
		return true
	}

	if it.leaf.next == nilNode {
		it.leaf = nil
		it.valid = false
		return false
	}
	next := it.tree.node(it.leaf.next)
	if len(next.keys) == 0 {
		it.leaf = nil
		it.valid = false
		return false
	}
	it.leaf = next
	it.index = 0
	return true
}

// Valid reports whether the iterator points at a key.
func (it *Iterator[K]) Valid() bool {
	return it.valid
}

// Key returns the current key, or the zero K when invalid.
func (it *Iterator[K]) Key() K {
	if !it.valid {
		var zero K
		return zero
	}
	return it.leaf.keys[it.index]
}

// IDs returns the current key's record ids in insertion order.
func (it *Iterator[K]) IDs() []int {
	if !it.valid {
		return nil
	}
	return it.leaf.ids[it.index]
}
