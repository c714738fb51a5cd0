package bplus

// RangeSearch returns the ids of every key in [min, max], both bounds
// inclusive: ascending by key, each key's ids in insertion order. The scan
// starts at the leaf covering min and walks the leaf chain, stopping at the
// first key past max — everything after it is guaranteed larger.
//
// min > max yields an empty result; callers are expected to validate range
// ordering before calling.
func (t *BPlusTree[K]) RangeSearch(min, max K) []int {
	if min > max {
		return nil
	}

	var result []int
	for it := t.SeekGE(min); it.Valid(); it.Next() {
		if it.Key() > max {
			break
		}
		result = append(result, it.IDs()...)
	}
	return result
}
