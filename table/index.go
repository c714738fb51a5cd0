package table

import (
	"cmp"
	"fmt"

	bplus "rosterdb/bplustree"
	"rosterdb/hashindex"
)

// IndexKind selects the backend structure for a column index.
type IndexKind int

const (
	// IndexBPlusTree is the default: O(log n) point lookup plus sorted
	// range scans over the leaf chain.
	IndexBPlusTree IndexKind = iota
	// IndexHash trades range-scan efficiency for O(1) point lookup.
	IndexHash
)

func (k IndexKind) String() string {
	switch k {
	case IndexBPlusTree:
		return "bplustree"
	case IndexHash:
		return "hash"
	}
	return fmt.Sprintf("IndexKind(%d)", int(k))
}

// index is the contract every backend satisfies for one key type. Both
// bplus.BPlusTree[K] and hashindex.Index[K] implement it.
type index[K cmp.Ordered] interface {
	Insert(key K, id int)
	Search(key K) []int
	RangeSearch(min, max K) []int
	KeyCount() int
}

// columnIndex adapts a typed index to the record-facing operations the table
// performs without knowing the key type.
type columnIndex interface {
	add(e Employee)
	keyCount() int
	kind() IndexKind
}

type typedIndex[K cmp.Ordered] struct {
	idx       index[K]
	extract   func(Employee) K
	indexKind IndexKind
}

func (ti *typedIndex[K]) add(e Employee) {
	ti.idx.Insert(ti.extract(e), e.ID)
}

func (ti *typedIndex[K]) keyCount() int {
	return ti.idx.KeyCount()
}

func (ti *typedIndex[K]) kind() IndexKind {
	return ti.indexKind
}

func newTypedIndex[K cmp.Ordered](kind IndexKind, order int, extract func(Employee) K) (columnIndex, error) {
	var idx index[K]
	switch kind {
	case IndexBPlusTree:
		bt, err := bplus.New[K](order)
		if err != nil {
			return nil, err
		}
		idx = bt
	case IndexHash:
		idx = hashindex.New[K]()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	return &typedIndex[K]{idx: idx, extract: extract, indexKind: kind}, nil
}

// newColumnIndex binds a column to its typed accessor and backend. The switch
// is the closed enumeration: adding a column means adding a case here.
func newColumnIndex(col Column, kind IndexKind, order int) (columnIndex, error) {
	switch col {
	case ColumnName:
		return newTypedIndex(kind, order, func(e Employee) string { return e.Name })
	case ColumnAge:
		return newTypedIndex(kind, order, func(e Employee) int { return e.Age })
	case ColumnSalary:
		return newTypedIndex(kind, order, func(e Employee) float64 { return e.Salary })
	case ColumnRole:
		return newTypedIndex(kind, order, func(e Employee) string { return string(e.Role) })
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidColumn, string(col))
}
