package bplus

import "slices"

// Search returns the record ids stored under key, in insertion order. The
// result is empty when the key is absent and is a copy the caller may keep.
func (t *BPlusTree[K]) Search(key K) []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	leaf := t.findLeaf(t.root, key)
	if i := binarySearch(leaf.keys, key); i != -1 {
		return slices.Clone(leaf.ids[i])
	}
	return nil
}
