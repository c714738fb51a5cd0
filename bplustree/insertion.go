package bplus

import "slices"

// Insert adds id to the posting list for key, creating the key if needed.
// Re-inserting an existing (key, id) pair is a no-op, so replays over the
// same records are safe.
func (t *BPlusTree[K]) Insert(key K, id int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	leaf := t.findLeaf(t.root, key)

	// Key exists — append id unless already present.
	if i := binarySearch(leaf.keys, key); i != -1 {
		if !slices.Contains(leaf.ids[i], id) {
			leaf.ids[i] = append(leaf.ids[i], id)
		}
		return
	}

	// Insert key and a fresh posting list in sorted position.
	pos := lowerBound(leaf.keys, key)
	leaf.keys = insert(leaf.keys, pos, key)
	leaf.ids = insert(leaf.ids, pos, []int{id})

	// Split if the insertion grew the leaf past order-1 keys.
	if len(leaf.keys) > t.order-1 {
		t.splitLeaf(leaf)
	}
}
