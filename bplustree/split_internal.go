package bplus

// splitInternal splits an overflowing internal node and promotes the middle
// key. Unlike a leaf split the median is consumed: it moves to the parent and
// belongs to neither half afterwards.
func (t *BPlusTree[K]) splitInternal(node *Node[K]) {
	// mid is the index of the key to promote
	mid := len(node.keys) / 2
	promoteKey := node.keys[mid]

	right := t.newNode(NodeInternal)
	right.keys = append(right.keys, node.keys[mid+1:]...)
	right.children = append(right.children, node.children[mid+1:]...)
	right.parent = node.parent

	// Reparent the children moved to the right half.
	for _, childID := range right.children {
		t.node(childID).parent = right.id
	}

	// Shrink left.
	node.keys = node.keys[:mid]
	node.children = node.children[:mid+1]

	if node.id == t.root {
		t.createNewRoot(node.id, promoteKey, right.id)
		return
	}
	t.insertIntoParent(node.parent, node.id, promoteKey, right.id)
}
