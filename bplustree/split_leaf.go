package bplus

// splitLeaf splits an overflowing leaf and splices the right sibling into the
// leaf chain. The promoted key is the right sibling's first key: a routing
// copy, the leaf keeps holding it.
func (t *BPlusTree[K]) splitLeaf(leaf *Node[K]) {
	mid := len(leaf.keys) / 2

	right := t.newNode(NodeLeaf)
	right.keys = append(right.keys, leaf.keys[mid:]...)
	right.ids = append(right.ids, leaf.ids[mid:]...)
	right.next = leaf.next // right inherits leaf's old next pointer
	right.parent = leaf.parent

	leaf.keys = leaf.keys[:mid]
	leaf.ids = leaf.ids[:mid]
	leaf.next = right.id

	sepKey := right.keys[0]

	if leaf.id == t.root {
		t.createNewRoot(leaf.id, sepKey, right.id)
		return
	}
	t.insertIntoParent(leaf.parent, leaf.id, sepKey, right.id)
}
