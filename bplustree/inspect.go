// Package bplus: tree inspection for debugging.
// Use DumpTo(w) to print a human-readable dump of a tree's structure.

package bplus

import (
	"fmt"
	"io"
)

// DumpTo writes a level-by-level dump of the tree to w: internal nodes with
// their routing keys and child handles, leaves with key → id postings and
// their next links.
func (t *BPlusTree[K]) DumpTo(w io.Writer) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	queue := []nodeID{t.root}
	level := 0
	for len(queue) > 0 {
		size := len(queue)
		fmt.Fprintf(w, "Level %d:\n", level)
		for i := 0; i < size; i++ {
			n := t.node(queue[i])
			if n.nodeType == NodeInternal {
				fmt.Fprintf(w, "  [node %d] INTERNAL keys=%v children=%v\n", n.id, n.keys, n.children)
				queue = append(queue, n.children...)
			} else {
				fmt.Fprintf(w, "  [node %d] LEAF next=%d\n", n.id, n.next)
				for j, key := range n.keys {
					fmt.Fprintf(w, "    %v -> %v\n", key, n.ids[j])
				}
			}
		}
		queue = queue[size:]
		level++
	}
}

// Height returns the number of levels from root to leaf. An empty tree has
// height 1 (the root leaf).
func (t *BPlusTree[K]) Height() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	h := 1
	n := t.node(t.root)
	for n.nodeType == NodeInternal {
		h++
		n = t.node(n.children[0])
	}
	return h
}

// KeyCount returns the number of distinct keys, counted along the leaf chain.
func (t *BPlusTree[K]) KeyCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := t.node(t.root)
	for n.nodeType == NodeInternal {
		n = t.node(n.children[0])
	}
	count := 0
	for {
		count += len(n.keys)
		if n.next == nilNode {
			return count
		}
		n = t.node(n.next)
	}
}
