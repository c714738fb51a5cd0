package bplus

// findLeaf descends from id to the leaf covering key. A key equal to a
// routing key advances to the right child, so exact-match resolution is
// always decided at the leaf.
func (t *BPlusTree[K]) findLeaf(id nodeID, key K) *Node[K] {
	n := t.node(id)
	for n.nodeType == NodeInternal {
		i := upperBound(n.keys, key)
		n = t.node(n.children[i])
	}
	return n
}
