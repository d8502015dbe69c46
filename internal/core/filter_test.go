package core

import "testing"

func i64(v int64) *int64 { return &v }

func sampleLedger() []Record {
	return []Record{
		{ID: "1", Date: NewDate(2024, 1, 5), Category: "Food", Description: "groceries", Amount: Money{Cents: 1000}},
		{ID: "2", Date: NewDate(2024, 1, 10), Category: "Food", Description: "dinner out", Amount: Money{Cents: 3000}},
		{ID: "3", Date: NewDate(2024, 1, 1), Category: "Transport", Description: "train ticket", Amount: Money{Cents: 2000}},
	}
}

func TestApplyEmptyCriteriaIsIdentity(t *testing.T) {
	snap := sampleLedger()
	got := Apply(snap, Criteria{})
	if len(got) != len(snap) {
		t.Fatalf("expected %d records, got %d", len(snap), len(got))
	}
	for i := range snap {
		if got[i].ID != snap[i].ID {
			t.Fatalf("record %d reordered: %q != %q", i, got[i].ID, snap[i].ID)
		}
	}
}

func TestApplyCriteria(t *testing.T) {
	snap := sampleLedger()
	cases := []struct {
		name string
		c    Criteria
		ids  []string
	}{
		{"category exact", Criteria{Category: "Food"}, []string{"1", "2"}},
		{"category no partial match", Criteria{Category: "Foo"}, nil},
		{"date from inclusive", Criteria{From: NewDate(2024, 1, 5)}, []string{"1", "2"}},
		{"date to inclusive", Criteria{To: NewDate(2024, 1, 5)}, []string{"1", "3"}},
		{"date range", Criteria{From: NewDate(2024, 1, 2), To: NewDate(2024, 1, 9)}, []string{"1"}},
		{"min amount inclusive", Criteria{MinCents: i64(2000)}, []string{"2", "3"}},
		{"max amount inclusive", Criteria{MaxCents: i64(2000)}, []string{"1", "3"}},
		{"search description", Criteria{Search: "TRAIN"}, []string{"3"}},
		{"search category", Criteria{Search: "foo"}, []string{"1", "2"}},
		{"search amount text", Criteria{Search: "30.00"}, []string{"2"}},
		{"conjunction", Criteria{Category: "Food", MinCents: i64(2500)}, []string{"2"}},
		{"no match", Criteria{Search: "zzz"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(snap, tc.c)
			if len(got) != len(tc.ids) {
				t.Fatalf("expected %d records, got %d", len(tc.ids), len(got))
			}
			for i, id := range tc.ids {
				if got[i].ID != id {
					t.Fatalf("position %d: expected %q, got %q", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestCriteriaIsZero(t *testing.T) {
	if !(Criteria{}).IsZero() {
		t.Fatalf("zero criteria should report IsZero")
	}
	if (Criteria{Category: "Food"}).IsZero() {
		t.Fatalf("non-empty criteria should not report IsZero")
	}
	if (Criteria{MinCents: i64(0)}).IsZero() {
		t.Fatalf("a set zero bound is still a constraint")
	}
}
