// Structure of B+ Tree
/*
Tree
 ├── Internal Node (keys + child handles)
 │      └── Child Internal Nodes ...
 │             └── Leaf Nodes (keys + record id lists + next handle)


- keys: sorted ascending order, no duplicates within a node
- internal nodes: children length == len(keys)+1
- leaf nodes: ids length == len(keys)
- leaf nodes linked with `next` for fast range scans
- all leaf nodes at same depth

Nodes live in an arena owned by the tree and refer to each other by nodeID
handles, so parent back-references and the leaf chain never form ownership
cycles.
*/
package bplus

import (
	"cmp"
	"sync"
)

type NodeType int

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

// MinOrder is the smallest usable order: an internal node must be able to
// hold one key and two children after a split.
const MinOrder = 3

// nodeID is an index into the tree's arena. nilNode marks an absent link
// (root's parent, last leaf's next).
type nodeID int

const nilNode nodeID = -1

type Node[K cmp.Ordered] struct {
	id       nodeID
	nodeType NodeType
	keys     []K      // keys in the node (sorted)
	children []nodeID // only for internal node
	ids      [][]int  // only for leaf node: record ids per key, insertion order
	next     nodeID   // only for leaf node
	parent   nodeID
}

type BPlusTree[K cmp.Ordered] struct {
	order int          // max children per internal node; leaves hold up to order-1 keys
	root  nodeID       // arena handle of the root node
	nodes []*Node[K]   // arena; a node's id is its index here
	mu    sync.RWMutex // single-writer discipline for Insert vs reads
}

// Order returns the tree's order m, fixed at construction.
func (t *BPlusTree[K]) Order() int {
	return t.order
}
