package core

import "testing"

func TestSummarize(t *testing.T) {
	snap := sampleLedger()

	s := Summarize(snap)
	if s.TotalCents != 6000 || s.Count != 3 {
		t.Fatalf("unexpected totals: total=%d count=%d", s.TotalCents, s.Count)
	}
	if len(s.ByCategory) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(s.ByCategory))
	}
	if s.ByCategory[0].Name != "Food" || s.ByCategory[0].Cents != 4000 || s.ByCategory[0].Percent != 67 {
		t.Fatalf("unexpected top category: %+v", s.ByCategory[0])
	}
	if s.ByCategory[1].Name != "Transport" || s.ByCategory[1].Cents != 2000 || s.ByCategory[1].Percent != 33 {
		t.Fatalf("unexpected second category: %+v", s.ByCategory[1])
	}

	food := Summarize(Apply(snap, Criteria{Category: "Food"}))
	if food.TotalCents != 4000 || food.Count != 2 {
		t.Fatalf("category filter: total=%d count=%d", food.TotalCents, food.Count)
	}

	min := Summarize(Apply(snap, Criteria{MinCents: i64(2500)}))
	if min.TotalCents != 3000 || min.Count != 1 {
		t.Fatalf("min filter: total=%d count=%d", min.TotalCents, min.Count)
	}

	// Inclusive lower bound keeps the boundary record.
	atBound := Summarize(Apply(snap, Criteria{MinCents: i64(2000)}))
	if atBound.TotalCents != 5000 || atBound.Count != 2 {
		t.Fatalf("inclusive min filter: total=%d count=%d", atBound.TotalCents, atBound.Count)
	}
}

func TestSummarizeEmptyFilterEqualsFull(t *testing.T) {
	snap := sampleLedger()
	a := Summarize(snap)
	b := Summarize(Apply(snap, Criteria{}))
	if a.TotalCents != b.TotalCents || a.Count != b.Count || len(a.ByCategory) != len(b.ByCategory) {
		t.Fatalf("empty filter is not the identity: %+v vs %+v", a, b)
	}
}

func TestSummarizeCategorySumEqualsTotal(t *testing.T) {
	snap := sampleLedger()
	s := Summarize(snap)
	var sum int64
	for _, c := range s.ByCategory {
		sum += c.Cents
	}
	if sum != s.TotalCents {
		t.Fatalf("category sum %d != total %d", sum, s.TotalCents)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalCents != 0 || s.Count != 0 || len(s.ByCategory) != 0 {
		t.Fatalf("unexpected empty summary: %+v", s)
	}
}

func TestSummarizeZeroTotalPercentPolicy(t *testing.T) {
	// Records with zero amounts never pass validation, but the aggregation
	// engine must still keep the floored denominator: every category gets 0%.
	s := Summarize([]Record{
		{ID: "1", Date: NewDate(2024, 1, 1), Category: "Food", Amount: Money{Cents: 0}},
	})
	if s.TotalCents != 0 {
		t.Fatalf("expected zero total, got %d", s.TotalCents)
	}
	if len(s.ByCategory) != 1 || s.ByCategory[0].Percent != 0 {
		t.Fatalf("expected 0%% entry, got %+v", s.ByCategory)
	}
}

func TestSummarizeTieOrderDeterministic(t *testing.T) {
	records := []Record{
		{ID: "1", Date: NewDate(2024, 1, 1), Category: "B", Amount: Money{Cents: 100}},
		{ID: "2", Date: NewDate(2024, 1, 1), Category: "A", Amount: Money{Cents: 100}},
	}
	for i := 0; i < 10; i++ {
		s := Summarize(records)
		if s.ByCategory[0].Name != "A" || s.ByCategory[1].Name != "B" {
			t.Fatalf("tie order not deterministic: %+v", s.ByCategory)
		}
	}
}
