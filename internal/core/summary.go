package core

import "sort"

// CategoryAmount is an amount aggregated under one category label.
type CategoryAmount struct {
	Name    string
	Cents   int64
	Percent int // rounded share of the total
}

// Summary is the aggregate view of a record subsequence.
type Summary struct {
	TotalCents int64
	Count      int
	ByCategory []CategoryAmount
}

// Summarize computes total, count and per-category sums for the given
// subsequence. Categories are ordered by descending amount; ties break by
// ascending name so the output is deterministic.
//
// Percentages round half away from zero. When the total is zero the
// denominator is floored to one, so every category reports 0% instead of
// dividing by zero.
func Summarize(records []Record) Summary {
	s := Summary{Count: len(records)}
	byCat := make(map[string]int64)
	for _, r := range records {
		s.TotalCents += r.Amount.Cents
		byCat[r.Category] += r.Amount.Cents
	}

	s.ByCategory = make([]CategoryAmount, 0, len(byCat))
	for name, cents := range byCat {
		s.ByCategory = append(s.ByCategory, CategoryAmount{Name: name, Cents: cents})
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		a, b := s.ByCategory[i], s.ByCategory[j]
		if a.Cents != b.Cents {
			return a.Cents > b.Cents
		}
		return a.Name < b.Name
	})

	denom := s.TotalCents
	if denom == 0 {
		denom = 1
	}
	for i := range s.ByCategory {
		s.ByCategory[i].Percent = int((s.ByCategory[i].Cents*100 + denom/2) / denom)
	}
	return s
}
