package bplus

// newNode allocates a node in the arena and returns it. The node's id is its
// arena index; parent and next start as nilNode.
func (t *BPlusTree[K]) newNode(nodeType NodeType) *Node[K] {
	n := &Node[K]{
		id:       nodeID(len(t.nodes)),
		nodeType: nodeType,
		keys:     make([]K, 0),
		next:     nilNode,
		parent:   nilNode,
	}
	if nodeType == NodeInternal {
		n.children = make([]nodeID, 0)
	} else {
		n.ids = make([][]int, 0)
	}
	t.nodes = append(t.nodes, n)
	return n
}

// node resolves a handle to its arena slot.
func (t *BPlusTree[K]) node(id nodeID) *Node[K] {
	return t.nodes[id]
}
