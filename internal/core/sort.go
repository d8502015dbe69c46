package core

import "sort"

// SortNewestFirst returns a copy of the snapshot ordered for display:
// date descending. Date alone is not a total order, so ties break by
// CreatedAt descending and then by ID, keeping the ordering stable across
// renders.
func SortNewestFirst(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Date.Equal(b.Date.Time) {
			return a.Date.After(b.Date.Time)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return out
}
