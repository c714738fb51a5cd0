package bplus

// createNewRoot replaces the root with a new internal node holding promoteKey
// between leftID and rightID. This is the only way the tree grows in height,
// which keeps every leaf at the same depth.
func (t *BPlusTree[K]) createNewRoot(leftID nodeID, promoteKey K, rightID nodeID) {
	root := t.newNode(NodeInternal)
	root.keys = append(root.keys, promoteKey)
	root.children = append(root.children, leftID, rightID)

	t.node(leftID).parent = root.id
	t.node(rightID).parent = root.id
	t.root = root.id
}
