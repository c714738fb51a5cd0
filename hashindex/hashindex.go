// Package hashindex is a separate-chaining hash table over the same contract
// as the B+ tree index: column value → insertion-ordered set of record ids.
//
// Point lookups are O(1) expected. There is no key ordering to exploit, so
// RangeSearch degrades to a full scan sorted by key; pick the B+ tree backend
// for columns that are queried by range.
package hashindex

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
)

const initialBuckets = 16

// loadFactor is entries per bucket before the table doubles.
const loadFactor = 2

type entry[K cmp.Ordered] struct {
	key K
	ids []int
}

type Index[K cmp.Ordered] struct {
	mu      sync.RWMutex
	buckets [][]entry[K]
	keys    int // distinct keys stored
}

func New[K cmp.Ordered]() *Index[K] {
	return &Index[K]{
		buckets: make([][]entry[K], initialBuckets),
	}
}

// bucketOf hashes the key's printed form; all supported key types (string,
// int, float64) print unambiguously.
func bucketOf[K cmp.Ordered](key K, buckets int) int {
	return int(xxhash.Sum64(fmt.Appendf(nil, "%v", key)) % uint64(buckets))
}

// Insert adds id to the posting list for key. Re-inserting an existing
// (key, id) pair is a no-op.
func (ix *Index[K]) Insert(key K, id int) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	b := bucketOf(key, len(ix.buckets))
	chain := ix.buckets[b]
	for i := range chain {
		if chain[i].key == key {
			if !slices.Contains(chain[i].ids, id) {
				chain[i].ids = append(chain[i].ids, id)
			}
			return
		}
	}

	if ix.keys >= len(ix.buckets)*loadFactor {
		ix.grow()
		b = bucketOf(key, len(ix.buckets))
	}
	ix.buckets[b] = append(ix.buckets[b], entry[K]{key: key, ids: []int{id}})
	ix.keys++
}

// grow doubles the bucket count and rehashes every chain.
func (ix *Index[K]) grow() {
	next := make([][]entry[K], len(ix.buckets)*2)
	for _, chain := range ix.buckets {
		for _, e := range chain {
			b := bucketOf(e.key, len(next))
			next[b] = append(next[b], e)
		}
	}
	ix.buckets = next
}

// Search returns the record ids stored under key, in insertion order.
func (ix *Index[K]) Search(key K) []int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	chain := ix.buckets[bucketOf(key, len(ix.buckets))]
	for i := range chain {
		if chain[i].key == key {
			return slices.Clone(chain[i].ids)
		}
	}
	return nil
}

// RangeSearch returns the ids of every key in [min, max] inclusive, ascending
// by key. Unlike the B+ tree this visits every bucket.
func (ix *Index[K]) RangeSearch(min, max K) []int {
	if min > max {
		return nil
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var matches []entry[K]
	for _, chain := range ix.buckets {
		for _, e := range chain {
			if e.key >= min && e.key <= max {
				matches = append(matches, e)
			}
		}
	}
	slices.SortFunc(matches, func(a, b entry[K]) int {
		return cmp.Compare(a.key, b.key)
	})

	var result []int
	for _, e := range matches {
		result = append(result, e.ids...)
	}
	return result
}

// KeyCount returns the number of distinct keys stored.
func (ix *Index[K]) KeyCount() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.keys
}
