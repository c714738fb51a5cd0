package bplus

// insertIntoParent inserts sepKey and rightID into the parent of leftID.
// If the parent overflows, it splits and propagates upward.
func (t *BPlusTree[K]) insertIntoParent(parentID, leftID nodeID, sepKey K, rightID nodeID) {
	parent := t.node(parentID)

	// Find leftID in parent's children; sepKey goes at that index, rightID
	// immediately after leftID.
	idx := 0
	for idx < len(parent.children) && parent.children[idx] != leftID {
		idx++
	}

	parent.keys = insert(parent.keys, idx, sepKey)
	parent.children = insert(parent.children, idx+1, rightID)
	t.node(rightID).parent = parentID

	if len(parent.keys) > t.order-1 {
		t.splitInternal(parent)
	}
}
