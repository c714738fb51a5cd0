package bplus

import "cmp"

// New creates an empty order-m B+ tree keyed by K. The root starts as a
// single empty leaf and the order is immutable for the tree's lifetime.
//
// Keys of one tree must share a total order; K being cmp.Ordered guarantees
// that at compile time, one instantiation per indexed column.
func New[K cmp.Ordered](order int) (*BPlusTree[K], error) {
	if order < MinOrder {
		return nil, ErrInvalidOrder
	}

	t := &BPlusTree[K]{
		order: order,
		root:  nilNode,
	}
	root := t.newNode(NodeLeaf)
	t.root = root.id
	return t, nil
}
