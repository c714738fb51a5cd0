// Package table is an in-memory employee table with secondary-index lookup.
//
// Records are append-only and addressed by monotonically assigned integer
// ids. Any column can be indexed with a B+ tree (default) or a hash table;
// indexes hold ids only, never record copies. Lookups on unindexed columns
// fall back to a linear scan.
package table

import (
	"cmp"
	"fmt"
	"sync"

	"github.com/dgraph-io/ristretto/v2"
)

const (
	// DefaultBPlusOrder keeps nodes small enough that split paths are
	// exercised even by modest data sets.
	DefaultBPlusOrder = 4

	cacheNumCounters = 1e4
	cacheMaxCost     = 1 << 20
	cacheBufferItems = 64
)

// Options configures a Table. The zero value is usable.
type Options struct {
	// BPlusOrder is the order of B+ tree indexes created by this table.
	// Defaults to DefaultBPlusOrder; values below 3 are rejected.
	BPlusOrder int
	// Logger receives index-build and ingestion events. Defaults to
	// DiscardLogger.
	Logger Logger
}

type Table struct {
	mu        sync.RWMutex
	employees []Employee
	nextID    int
	indexes   map[Column]columnIndex
	order     int

	// cache memoizes point-lookup id lists keyed "column=value". Any write
	// invalidates it wholesale: ids are cheap to recompute and correctness
	// beats hit rate here.
	cache *ristretto.Cache[string, []int]
	log   Logger
}

// New creates an empty table.
func New(opts *Options) (*Table, error) {
	if opts == nil {
		opts = &Options{}
	}

	order := opts.BPlusOrder
	if order == 0 {
		order = DefaultBPlusOrder
	}
	if order < 3 {
		return nil, fmt.Errorf("table: b+ tree order %d too small", order)
	}

	log := opts.Logger
	if log == nil {
		log = DiscardLogger{}
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, []int]{
		NumCounters: cacheNumCounters,
		MaxCost:     cacheMaxCost,
		BufferItems: cacheBufferItems,
	})
	if err != nil {
		return nil, fmt.Errorf("table: create lookup cache: %w", err)
	}

	return &Table{
		indexes: make(map[Column]columnIndex),
		order:   order,
		cache:   cache,
		log:     log,
	}, nil
}

// Close releases the lookup cache. The table must not be used afterwards.
func (t *Table) Close() {
	t.cache.Close()
}

// Add appends a record, assigns its id, and feeds every existing index.
// Invalid roles are rejected before anything is touched.
func (t *Table) Add(name string, age int, salary float64, role Role) (int, error) {
	if !role.Valid() {
		return 0, fmt.Errorf("%w: %q (want %s, %s or %s)",
			ErrInvalidRole, string(role), RoleEmployee, RoleManager, RoleOwner)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	e := Employee{ID: t.nextID, Name: name, Age: age, Salary: salary, Role: role}
	t.employees = append(t.employees, e)
	t.nextID++

	for _, ci := range t.indexes {
		ci.add(e)
	}
	t.cache.Clear()

	return e.ID, nil
}

// CreateIndex builds an index over col, replaying all existing records into
// it; subsequent Adds maintain it incrementally. Re-indexing a column
// replaces the previous index.
func (t *Table) CreateIndex(col Column, kind IndexKind) error {
	if !col.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidColumn, string(col))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.indexes[col]; exists {
		t.log.Warn("rebuilding existing index", "column", string(col))
	}

	ci, err := newColumnIndex(col, kind, t.order)
	if err != nil {
		return err
	}
	for _, e := range t.employees {
		ci.add(e)
	}
	t.indexes[col] = ci
	t.cache.Clear()

	t.log.Info("index created",
		"column", string(col), "kind", kind.String(), "uniqueValues", ci.keyCount())
	return nil
}

// Indexed reports whether col currently has an index.
func (t *Table) Indexed(col Column) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.indexes[col]
	return ok
}

// Len returns the number of records.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.employees)
}

// All returns a copy of every record in insertion order.
func (t *Table) All() []Employee {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Employee, len(t.employees))
	copy(out, t.employees)
	return out
}

// FindByName returns employees whose name matches exactly.
func (t *Table) FindByName(name string) []Employee {
	return findBy(t, ColumnName, name, func(e Employee) string { return e.Name })
}

// FindByAge returns employees of exactly the given age.
func (t *Table) FindByAge(age int) []Employee {
	return findBy(t, ColumnAge, age, func(e Employee) int { return e.Age })
}

// FindBySalary returns employees with exactly the given salary.
func (t *Table) FindBySalary(salary float64) []Employee {
	return findBy(t, ColumnSalary, salary, func(e Employee) float64 { return e.Salary })
}

// FindByRole returns employees holding the given role.
func (t *Table) FindByRole(role Role) []Employee {
	return findBy(t, ColumnRole, string(role), func(e Employee) string { return string(e.Role) })
}

// FindByAgeRange returns employees aged within [min, max], ordered by age.
func (t *Table) FindByAgeRange(min, max int) ([]Employee, error) {
	return findByRange(t, ColumnAge, min, max, func(e Employee) int { return e.Age })
}

// FindBySalaryRange returns employees earning within [min, max], ordered by
// salary.
func (t *Table) FindBySalaryRange(min, max float64) ([]Employee, error) {
	return findByRange(t, ColumnSalary, min, max, func(e Employee) float64 { return e.Salary })
}

// findBy answers a point lookup on col: cache, then index, then linear scan.
func findBy[K cmp.Ordered](t *Table, col Column, key K, extract func(Employee) K) []Employee {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cacheKey := fmt.Sprintf("%s=%v", col, key)
	if ids, ok := t.cache.Get(cacheKey); ok {
		return t.rows(ids)
	}

	var ids []int
	if ci, ok := t.indexes[col]; ok {
		ids = ci.(*typedIndex[K]).idx.Search(key)
	} else {
		for _, e := range t.employees {
			if extract(e) == key {
				ids = append(ids, e.ID)
			}
		}
	}

	t.cache.Set(cacheKey, ids, 1)
	return t.rows(ids)
}

// findByRange answers an inclusive range lookup on col. With an index the
// result is ordered ascending by key; the linear fallback returns record
// order.
func findByRange[K cmp.Ordered](t *Table, col Column, min, max K, extract func(Employee) K) ([]Employee, error) {
	if min > max {
		return nil, fmt.Errorf("%w: %v > %v", ErrInvalidRange, min, max)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	var ids []int
	if ci, ok := t.indexes[col]; ok {
		ids = ci.(*typedIndex[K]).idx.RangeSearch(min, max)
	} else {
		for _, e := range t.employees {
			if v := extract(e); v >= min && v <= max {
				ids = append(ids, e.ID)
			}
		}
	}
	return t.rows(ids), nil
}

// rows resolves ids to record copies. Caller holds at least a read lock.
func (t *Table) rows(ids []int) []Employee {
	out := make([]Employee, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.employees[id])
	}
	return out
}

// IndexStat describes one column index for the stats view.
type IndexStat struct {
	Column       Column
	Kind         IndexKind
	UniqueValues int
}

// Stats returns one entry per existing index, in Columns() order.
func (t *Table) Stats() []IndexStat {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var stats []IndexStat
	for _, col := range Columns() {
		ci, ok := t.indexes[col]
		if !ok {
			continue
		}
		stats = append(stats, IndexStat{
			Column:       col,
			Kind:         ci.kind(),
			UniqueValues: ci.keyCount(),
		})
	}
	return stats
}
