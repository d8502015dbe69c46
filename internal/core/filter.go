package core

import "strings"

// Criteria narrows a ledger snapshot. Every field is optional: the zero
// value of a field means "no constraint". Numeric bounds use pointers so
// a zero bound is still expressible.
type Criteria struct {
	From     Date   // inclusive lower date bound; zero = absent
	To       Date   // inclusive upper date bound; zero = absent
	Category string // exact match; empty = absent
	MinCents *int64 // inclusive; nil = absent
	MaxCents *int64 // inclusive; nil = absent
	Search   string // case-insensitive substring; empty = absent
}

// IsZero reports whether no constraint is set.
func (c Criteria) IsZero() bool {
	return c.From.IsZero() && c.To.IsZero() && c.Category == "" &&
		c.MinCents == nil && c.MaxCents == nil && c.Search == ""
}

// Matches applies each present constraint as a conjunctive predicate.
// The evaluation order (date bounds, category, amount bounds, search) is
// fixed so short-circuiting stays deterministic.
func (c Criteria) Matches(r Record) bool {
	if !c.From.IsZero() && r.Date.Before(c.From.Time) {
		return false
	}
	if !c.To.IsZero() && r.Date.After(c.To.Time) {
		return false
	}
	if c.Category != "" && r.Category != c.Category {
		return false
	}
	if c.MinCents != nil && r.Amount.Cents < *c.MinCents {
		return false
	}
	if c.MaxCents != nil && r.Amount.Cents > *c.MaxCents {
		return false
	}
	if c.Search != "" {
		needle := strings.ToLower(strings.TrimSpace(c.Search))
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.Description), needle) &&
			!strings.Contains(strings.ToLower(r.Category), needle) &&
			!strings.Contains(r.Amount.Format(), needle) {
			return false
		}
	}
	return true
}

// Apply returns the subsequence of records matching the criteria, in the
// snapshot's order. Pure: the input slice is never mutated.
func Apply(snapshot []Record, c Criteria) []Record {
	out := make([]Record, 0, len(snapshot))
	for _, r := range snapshot {
		if c.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
